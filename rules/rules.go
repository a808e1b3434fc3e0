package rules

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrZeroDimension is returned when a life is constructed with dimension 0.
	ErrZeroDimension = errors.New("life in a zero-dimensional space is not possible")

	// ErrZeroNeighbourBirthRule is returned when a birth rule set contains 0.
	// A dead cell with zero alive neighbours is every cell on the infinite
	// grid, so such a rule would birth infinitely many cells each generation.
	ErrZeroNeighbourBirthRule = errors.New("a birth rule of zero neighbours is invalid (an infinite number of cells would be born)")
)

// TooHighRuleError reports a rule value that exceeds the maximum possible
// neighbour count for the configured dimension.
type TooHighRuleError struct {
	Rule int
	Max  int
}

func (e *TooHighRuleError) Error() string {
	return fmt.Sprintf("a rule specifies more neighbours (%d) than the dimensionality of the grid allows (max %d)", e.Rule, e.Max)
}

// Set is a set of neighbour counts that trigger a transition: birth rules
// flip a dead cell alive, survival rules keep an alive cell alive.
type Set map[int]struct{}

// NewSet creates a rule set from the given neighbour counts, deduplicating.
func NewSet(values ...int) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether the set includes the given neighbour count.
func (s Set) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Values returns the neighbour counts in ascending order.
func (s Set) Values() []int {
	values := make([]int, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Equal reports whether both sets contain exactly the same counts.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

// MaxNeighbours returns the highest possible number of alive neighbours a
// cell can have in the given dimension: 3^dim - 1, the size of the Moore
// neighbourhood minus the cell itself. Saturates at math.MaxInt once the
// true value no longer fits an int.
func MaxNeighbours(dim int) int {
	cells := 1
	for i := 0; i < dim; i++ {
		if cells > math.MaxInt/3 {
			return math.MaxInt
		}
		cells *= 3
	}
	return cells - 1
}

// Validate checks birth and survival rule sets against the dimensional
// constraints: the dimension must be positive, birth rules must not
// contain 0, and no rule may exceed MaxNeighbours(dim). Birth rules are
// scanned before survival rules.
func Validate(dim int, birth, survival Set) error {
	if dim < 1 {
		return ErrZeroDimension
	}
	if err := ValidateBirth(dim, birth); err != nil {
		return err
	}
	return ValidateSurvival(dim, survival)
}

// ValidateBirth checks a birth rule set on its own: it must not contain 0
// and no rule may exceed MaxNeighbours(dim).
func ValidateBirth(dim int, birth Set) error {
	if birth.Contains(0) {
		return ErrZeroNeighbourBirthRule
	}
	return checkMax(MaxNeighbours(dim), birth)
}

// ValidateSurvival checks a survival rule set on its own: no rule may
// exceed MaxNeighbours(dim). A survival rule of 0 is legal, unlike a birth
// rule of 0: a lone cell dying of isolation is meaningful.
func ValidateSurvival(dim int, survival Set) error {
	return checkMax(MaxNeighbours(dim), survival)
}

func checkMax(max int, s Set) error {
	for rule := range s {
		if rule > max {
			return &TooHighRuleError{Rule: rule, Max: max}
		}
	}
	return nil
}
