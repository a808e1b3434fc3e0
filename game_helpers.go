package main

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sheikhrachel/go-ndlife/model"
	"github.com/sheikhrachel/go-ndlife/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *zap.Logger) (
	*model.Life,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	life := model.ConwaysGameOfLife()
	seedLife(life, config, logger)

	renderer := &model.TerminalRenderer{Width: config.Width, Height: config.Height}
	stats := utils.NewStats()

	return life, renderer, stats
}

// seedLife seeds the life from the configured pattern file, falling back to
// the built-in interesting patterns
func seedLife(life *model.Life, config utils.Config, logger *zap.Logger) {
	if config.PatternFile != "" {
		pattern, err := model.LoadPattern(config.PatternFile)
		if err == nil {
			pattern.Apply(life, nil)
			logger.Info("loaded seed pattern",
				zap.String("name", pattern.Name),
				zap.Int("cells", len(pattern.Cells)))
			return
		}
		logger.Warn("failed to load pattern file, using built-in patterns", zap.Error(err))
	}
	life.ResetWithInterestingPatterns(config)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, life *model.Life, logger *zap.Logger) {
	logger.Info("starting game of life",
		zap.Int("dimension", life.Dimension()),
		zap.Ints("birth_rules", life.BirthRules().Values()),
		zap.Ints("survival_rules", life.SurvivalRules().Values()),
		zap.Int("viewport_width", config.Width),
		zap.Int("viewport_height", config.Height),
		zap.Int("initial_population", life.Population()))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// lifeFingerprint returns an MD5 hash of the alive-cell set, independent of
// iteration order
func lifeFingerprint(life *model.Life) string {
	cells := make([]model.Coord, 0, life.Population())
	for c := range life.AliveCells() {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	h := md5.New()
	buf := make([]byte, 8)
	for _, c := range cells {
		for _, v := range c {
			binary.LittleEndian.PutUint64(buf, uint64(v))
			h.Write(buf)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// updateHistory appends the current fingerprint, keeping only the last 5
// states for cycle detection
func updateHistory(history []string, fingerprint string) []string {
	history = append(history, fingerprint)
	if len(history) > 5 {
		history = history[1:]
	}
	return history
}

// isStagnant checks if the life is stuck in a static state or a short cycle
func isStagnant(history []string, fingerprint string) bool {
	if len(history) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if history[len(history)-i] == fingerprint {
			return true
		}
	}
	return false
}

// updateGameState updates the game state and returns status information
func updateGameState(
	life *model.Life,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	population := life.Population()

	changed := 0
	for range life.ChangedCells() {
		changed++
	}

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, population, changed, frameDuration)

	status := "Active"
	if population == 0 {
		status = "Extinct"
	}

	return population, status, population == 0
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, population int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Changed: %d | Status: %s\n",
		generation, population, stats.ChangedCells, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(life *model.Life, config utils.Config, logger *zap.Logger, reason string) {
	logger.Info("restarting", zap.String("reason", reason))
	time.Sleep(1 * time.Second)

	life.ResetWithInterestingPatterns(config)
	logger.Info("new patterns loaded", zap.Int("population", life.Population()))
}

// runGame drives the main game loop until the context is cancelled or the
// generation limit is reached
func runGame(ctx context.Context, config utils.Config, logger *zap.Logger) error {
	life, renderer, stats := initializeGame(config, logger)
	displayGameInfo(config, life, logger)

	var (
		history        []string
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down gracefully",
				zap.Int("generations", generation),
				zap.Float64("gen_per_sec", stats.GenerationsPerSecond),
				zap.Float64("avg_population", stats.AveragePopulation),
				zap.Float64("runtime_sec", time.Since(stats.StartTime).Seconds()))
			return nil
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		population, status, extinct := updateGameState(life, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter from the state fingerprint
		fingerprint := lifeFingerprint(life)
		if isStagnant(history, fingerprint) {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (%d)", generation)
		} else if !extinct {
			stagnantCount = 0
		}
		history = updateHistory(history, fingerprint)

		// Display current status
		displayGameStatus(generation, population, status, stats, lastRestartGen)
		renderer.Display(life)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			logger.Info("reached maximum generations limit", zap.Int("limit", config.MaxGenerations))
			return nil
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(population, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			restartGame(life, config, logger, restartReason)
			lastRestartGen = generation
			stagnantCount = 0
			history = nil
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			life.InjectRandomLife(config.InjectionCount, config.Width, config.Height)
		}

		life.NextGeneration()
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate):
		}
	}
}
