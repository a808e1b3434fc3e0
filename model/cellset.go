package model

import "iter"

// CellSet is a sparse set of alive-cell coordinates. Only alive cells are
// stored; every coordinate absent from the set is a dead cell, so the set
// represents a finite population on an unbounded grid.
type CellSet struct {
	cells map[string]Coord
}

// NewCellSet creates an empty cell set.
func NewCellSet() *CellSet {
	return &CellSet{cells: make(map[string]Coord)}
}

// Contains reports whether the cell at the given coordinate is alive.
func (s *CellSet) Contains(c Coord) bool {
	_, ok := s.cells[c.key()]
	return ok
}

// Set marks the cell alive or dead and reports whether its membership
// actually changed. Setting an alive cell alive (or a dead cell dead) is a
// no-op and returns false.
func (s *CellSet) Set(c Coord, alive bool) bool {
	k := c.key()
	_, ok := s.cells[k]
	if ok == alive {
		return false
	}
	if alive {
		s.cells[k] = c.Clone()
	} else {
		delete(s.cells, k)
	}
	return true
}

// Toggle flips the cell between alive and dead.
func (s *CellSet) Toggle(c Coord) {
	k := c.key()
	if _, ok := s.cells[k]; ok {
		delete(s.cells, k)
	} else {
		s.cells[k] = c.Clone()
	}
}

// Replace discards the current contents and stores the given cells.
func (s *CellSet) Replace(cells []Coord) {
	s.cells = make(map[string]Coord, len(cells))
	for _, c := range cells {
		s.cells[c.key()] = c.Clone()
	}
}

// Len returns the number of alive cells.
func (s *CellSet) Len() int {
	return len(s.cells)
}

// Clear removes all cells, keeping the backing storage for reuse.
func (s *CellSet) Clear() {
	clear(s.cells)
}

// All returns an iterator over the alive cells, in no particular order.
func (s *CellSet) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, c := range s.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold exactly the same coordinates.
func (s *CellSet) Equal(other *CellSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for k := range s.cells {
		if _, ok := other.cells[k]; !ok {
			return false
		}
	}
	return true
}
