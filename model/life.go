package model

import (
	"iter"

	"github.com/sheikhrachel/go-ndlife/rules"
)

// Life is an infinite N-dimensional game of life with sparse storage: only
// alive cells are held, so memory scales with population rather than with
// any notion of grid size.
//
// A Life is not safe for concurrent mutation; callers sharing one instance
// across goroutines must provide their own mutual exclusion.
type Life struct {
	dim      int
	age      uint64
	birth    rules.Set
	survival rules.Set

	// alive and prev double-buffer the population: NextGeneration swaps
	// them and rebuilds alive from prev, so neither is reallocated.
	alive *CellSet
	prev  *CellSet

	// deadNeighbours tallies, per dead cell adjacent to the previous
	// generation, how many alive neighbours it had. Scratch storage,
	// cleared at the start of every generation.
	deadNeighbours map[string]deadTally

	keyBuf []byte
}

type deadTally struct {
	cell  Coord
	count int
}

// NewLife creates a life of the given dimension with no alive cells.
// Fails if dim is not positive, if the birth rules contain 0, or if any
// rule exceeds rules.MaxNeighbours(dim).
func NewLife(dim int, birth, survival rules.Set) (*Life, error) {
	return NewLifeWithCells(dim, birth, survival, nil)
}

// NewLifeWithCells creates a life seeded with the given alive cells.
// Rule validation is identical to NewLife; the seed cells themselves are
// not validated.
func NewLifeWithCells(dim int, birth, survival rules.Set, cells []Coord) (*Life, error) {
	if err := rules.Validate(dim, birth, survival); err != nil {
		return nil, err
	}
	l := &Life{
		dim:            dim,
		birth:          birth.Clone(),
		survival:       survival.Clone(),
		alive:          NewCellSet(),
		prev:           NewCellSet(),
		deadNeighbours: make(map[string]deadTally),
	}
	l.alive.Replace(cells)
	return l, nil
}

// ConwaysGameOfLife returns a 2-dimensional life with the canonical rules:
// birth on exactly 3 neighbours, survival on 2 or 3.
func ConwaysGameOfLife() *Life {
	birth, survival := rules.Conway()
	l, err := NewLife(2, birth, survival)
	if err != nil {
		panic("model: canonical conway rules failed validation: " + err.Error())
	}
	return l
}

// Dimension returns the dimension fixed at construction.
func (l *Life) Dimension() int {
	return l.dim
}

// Age returns the number of generations advanced so far.
func (l *Life) Age() uint64 {
	return l.age
}

// MaxNeighbours returns the highest possible alive-neighbour count for
// this life's dimension.
func (l *Life) MaxNeighbours() int {
	return rules.MaxNeighbours(l.dim)
}

// BirthRules returns a copy of the current birth rules.
func (l *Life) BirthRules() rules.Set {
	return l.birth.Clone()
}

// SetBirthRules replaces the birth rules. Fails without changing state if
// the new set contains 0 or a value above MaxNeighbours.
func (l *Life) SetBirthRules(birth rules.Set) error {
	if err := rules.ValidateBirth(l.dim, birth); err != nil {
		return err
	}
	l.birth = birth.Clone()
	return nil
}

// SurvivalRules returns a copy of the current survival rules.
func (l *Life) SurvivalRules() rules.Set {
	return l.survival.Clone()
}

// SetSurvivalRules replaces the survival rules. Fails without changing
// state if any value exceeds MaxNeighbours. A survival rule of 0 is legal.
func (l *Life) SetSurvivalRules(survival rules.Set) error {
	if err := rules.ValidateSurvival(l.dim, survival); err != nil {
		return err
	}
	l.survival = survival.Clone()
	return nil
}

// Population returns the number of alive cells.
func (l *Life) Population() int {
	return l.alive.Len()
}

// AliveCells returns an iterator over the alive cells, in no particular
// order. The iterator is valid until the next mutation of the life.
func (l *Life) AliveCells() iter.Seq[Coord] {
	return l.alive.All()
}

// SetAliveCells replaces the entire alive-cell set. No validation is
// applied; any coordinate combination is acceptable.
func (l *Life) SetAliveCells(cells []Coord) {
	l.alive.Replace(cells)
}

// GetCell reports whether the cell at the given coordinate is alive.
func (l *Life) GetCell(c Coord) bool {
	return l.alive.Contains(c)
}

// SetCell marks a cell alive or dead and reports whether its state
// actually changed.
func (l *Life) SetCell(c Coord, alive bool) bool {
	return l.alive.Set(c, alive)
}

// ToggleCell flips a cell between alive and dead.
func (l *Life) ToggleCell(c Coord) {
	l.alive.Toggle(c)
}

// Clear removes all alive cells without touching age or rules.
func (l *Life) Clear() {
	l.alive.Clear()
}

// NextGeneration advances the life by one generation.
//
// Every cell of the next generation is either a previously-alive cell whose
// alive-neighbour count is in the survival rules, or a dead neighbour of a
// previously-alive cell whose tally is in the birth rules. Dead cells with
// no alive neighbour can never be born (birth on 0 is rejected at
// validation), so scanning only the neighbourhoods of alive cells is
// complete. Runs in O(population * 3^dim) and blocks until done.
func (l *Life) NextGeneration() {
	l.age++
	l.alive, l.prev = l.prev, l.alive
	l.alive.Clear()
	clear(l.deadNeighbours)

	neighbour := make(Coord, l.dim)
	for k, cell := range l.prev.cells {
		// Cells of the wrong dimension can enter through the unvalidated
		// mutators; they have no neighbourhood here and simply die off.
		if len(cell) != l.dim {
			continue
		}
		aliveNeighbours := 0
		offsets := newNeighborOffsets(l.dim)
		for delta, ok := offsets.next(); ok; delta, ok = offsets.next() {
			for i := range neighbour {
				neighbour[i] = cell[i] + delta[i]
			}
			l.keyBuf = neighbour.appendKey(l.keyBuf[:0])
			if _, alive := l.prev.cells[string(l.keyBuf)]; alive {
				aliveNeighbours++
			} else {
				nk := string(l.keyBuf)
				tally := l.deadNeighbours[nk]
				if tally.cell == nil {
					tally.cell = neighbour.Clone()
				}
				tally.count++
				l.deadNeighbours[nk] = tally
			}
		}
		if l.survival.Contains(aliveNeighbours) {
			l.alive.cells[k] = cell
		}
	}

	for k, tally := range l.deadNeighbours {
		if l.birth.Contains(tally.count) {
			l.alive.cells[k] = tally.cell
		}
	}
}

// ChangedCells returns the cells whose state changed in the most recent
// generation, in either direction: the symmetric difference between the
// previous and current alive sets. The sequence is recomputed on each call
// and is stale after the next NextGeneration or direct mutation.
func (l *Life) ChangedCells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for k, cell := range l.prev.cells {
			if _, ok := l.alive.cells[k]; !ok {
				if !yield(cell) {
					return
				}
			}
		}
		for k, cell := range l.alive.cells {
			if _, ok := l.prev.cells[k]; !ok {
				if !yield(cell) {
					return
				}
			}
		}
	}
}
