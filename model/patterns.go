package model

import (
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-ndlife/utils"
)

// Pattern is a named set of seed cells loadable from a YAML file:
//
//	name: glider
//	cells:
//	  - [0, 0]
//	  - [1, 0]
type Pattern struct {
	Name  string    `yaml:"name"`
	Cells [][]int64 `yaml:"cells"`
}

// LoadPattern loads a seed pattern from a YAML file
func LoadPattern(filename string) (Pattern, error) {
	var pattern Pattern

	data, err := os.ReadFile(filename)
	if err != nil {
		return pattern, errors.Wrapf(err, "[LoadPattern] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &pattern); err != nil {
		return pattern, errors.Wrapf(err, "[LoadPattern] failed to unmarshal data from file: %+v", filename)
	}

	return pattern, nil
}

// Apply stamps the pattern onto the life, translated by offset. Offset
// components beyond the pattern's own dimensionality are ignored.
func (p Pattern) Apply(l *Life, offset Coord) {
	for _, cell := range p.Cells {
		c := make(Coord, len(cell))
		for i, v := range cell {
			c[i] = v
			if i < len(offset) {
				c[i] += offset[i]
			}
		}
		l.SetCell(c, true)
	}
}

// Glider returns the canonical diagonal spaceship.
func Glider() Pattern {
	return Pattern{
		Name:  "glider",
		Cells: [][]int64{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}},
	}
}

// Blinker returns the period-2 oscillator.
func Blinker() Pattern {
	return Pattern{
		Name:  "blinker",
		Cells: [][]int64{{0, 0}, {0, 1}, {0, 2}},
	}
}

// Block returns the 2x2 still life.
func Block() Pattern {
	return Pattern{
		Name:  "block",
		Cells: [][]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
}

// AddGlider adds a glider pattern at the specified position
func (l *Life) AddGlider(x, y int64) {
	Glider().Apply(l, C(x, y))
}

// AddOscillator adds a blinker oscillator pattern
func (l *Life) AddOscillator(x, y int64) {
	Blinker().Apply(l, C(x, y))
}

// Randomize fills a width x height viewport centred on the origin with
// random living cells
func (l *Life) Randomize(width, height int, density float64) {
	minX := -int64(width / 2)
	minY := -int64(height / 2)
	for y := range height {
		for x := range width {
			if rand.Float64() < density {
				l.SetCell(C(minX+int64(x), minY+int64(y)), true)
			}
		}
	}
}

// InjectRandomLife adds some random cells within the viewport to break stagnation
func (l *Life) InjectRandomLife(count, width, height int) {
	for range count {
		x := int64(rand.Intn(width)) - int64(width/2)
		y := int64(rand.Intn(height)) - int64(height/2)
		l.SetCell(C(x, y), true)
	}
}

// ResetWithInterestingPatterns clears the alive cells and seeds the
// viewport with gliders, oscillators, and random life
func (l *Life) ResetWithInterestingPatterns(config utils.Config) {
	l.Clear()

	w, h := int64(config.Width), int64(config.Height)
	if config.Width >= 10 && config.Height >= 10 {
		// Gliders travel right-down, so start them in the upper-left
		l.AddGlider(-w/2+5, -h/2+5)
		if config.Width >= 20 && config.Height >= 15 {
			l.AddGlider(w/2-8, -h/2+5)
		}

		l.AddOscillator(-w/4, -h/4)
		if config.Width >= 30 {
			l.AddOscillator(w/4, h/4)
		}
	}

	l.Randomize(config.Width, config.Height, config.RandomDensity)
}
