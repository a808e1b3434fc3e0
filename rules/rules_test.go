package rules

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// Maximum neighbour counts for low dimensions: 3^n - 1
func TestMaxNeighbours(t *testing.T) {
	tests := []struct {
		dim  int
		want int
	}{
		{1, 2},
		{2, 8},
		{3, 26},
		{4, 80},
	}
	for _, tt := range tests {
		if got := MaxNeighbours(tt.dim); got != tt.want {
			t.Errorf("MaxNeighbours(%d) = %d, want %d", tt.dim, got, tt.want)
		}
	}
}

// Once 3^dim no longer fits an int, the maximum saturates instead of overflowing
func TestMaxNeighboursSaturates(t *testing.T) {
	if got := MaxNeighbours(64); got != math.MaxInt {
		t.Errorf("MaxNeighbours(64) = %d, want math.MaxInt", got)
	}
}

func TestValidateZeroDimension(t *testing.T) {
	if err := Validate(0, NewSet(3), NewSet(2, 3)); !errors.Is(err, ErrZeroDimension) {
		t.Errorf("Validate(0, ...) = %v, want ErrZeroDimension", err)
	}

	// The dimension check runs before any rule inspection
	if err := Validate(0, NewSet(0), NewSet(99)); !errors.Is(err, ErrZeroDimension) {
		t.Errorf("Validate(0, invalid rules) = %v, want ErrZeroDimension", err)
	}
}

func TestValidateZeroBirthRule(t *testing.T) {
	if err := Validate(2, NewSet(0), NewSet(2, 3)); !errors.Is(err, ErrZeroNeighbourBirthRule) {
		t.Errorf("Validate with birth 0 = %v, want ErrZeroNeighbourBirthRule", err)
	}

	// Regardless of other rule values present
	if err := Validate(2, NewSet(3, 0, 5), NewSet(2)); !errors.Is(err, ErrZeroNeighbourBirthRule) {
		t.Errorf("Validate with birth {3,0,5} = %v, want ErrZeroNeighbourBirthRule", err)
	}

	// Birth rules are checked before survival rules
	if err := Validate(2, NewSet(0), NewSet(9)); !errors.Is(err, ErrZeroNeighbourBirthRule) {
		t.Errorf("Validate(2, {0}, {9}) = %v, want ErrZeroNeighbourBirthRule", err)
	}
}

func TestValidateTooHighRule(t *testing.T) {
	tests := []struct {
		name     string
		dim      int
		birth    Set
		survival Set
		wantRule int
		wantMax  int
	}{
		{"birth above 2d max", 2, NewSet(9), NewSet(2, 3), 9, 8},
		{"survival above 2d max", 2, NewSet(3), NewSet(9), 9, 8},
		{"birth above 1d max", 1, NewSet(3), NewSet(), 3, 2},
		{"survival above 3d max", 3, NewSet(3), NewSet(27), 27, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.dim, tt.birth, tt.survival)
			var tooHigh *TooHighRuleError
			if !errors.As(err, &tooHigh) {
				t.Fatalf("Validate = %v, want TooHighRuleError", err)
			}
			if tooHigh.Rule != tt.wantRule || tooHigh.Max != tt.wantMax {
				t.Errorf("got TooHighRuleError{%d, %d}, want {%d, %d}",
					tooHigh.Rule, tooHigh.Max, tt.wantRule, tt.wantMax)
			}
		})
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(2, NewSet(3), NewSet(2, 3)); err != nil {
		t.Errorf("Validate(2, {3}, {2,3}) = %v, want nil", err)
	}
	if err := Validate(1, NewSet(), NewSet()); err != nil {
		t.Errorf("Validate(1, {}, {}) = %v, want nil", err)
	}
	// Rule values exactly at the maximum are legal
	if err := Validate(2, NewSet(8), NewSet(8)); err != nil {
		t.Errorf("Validate(2, {8}, {8}) = %v, want nil", err)
	}
}

// Survival rules may legally contain 0; birth rules may not
func TestZeroRuleAsymmetry(t *testing.T) {
	if err := ValidateSurvival(2, NewSet(0)); err != nil {
		t.Errorf("ValidateSurvival with 0 = %v, want nil", err)
	}
	if err := ValidateBirth(2, NewSet(0)); !errors.Is(err, ErrZeroNeighbourBirthRule) {
		t.Errorf("ValidateBirth with 0 = %v, want ErrZeroNeighbourBirthRule", err)
	}
}

func TestSetBasics(t *testing.T) {
	s := NewSet(3, 2, 3, 2)
	if len(s) != 2 {
		t.Errorf("NewSet(3, 2, 3, 2) has %d entries, want 2", len(s))
	}
	if !s.Contains(2) || !s.Contains(3) || s.Contains(4) {
		t.Error("Contains gave wrong membership")
	}
	if got := s.Values(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Values() = %v, want [2 3]", got)
	}
	if !s.Equal(NewSet(2, 3)) {
		t.Error("Equal sets reported unequal")
	}
	if s.Equal(NewSet(2)) || s.Equal(NewSet(2, 4)) {
		t.Error("unequal sets reported equal")
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet(2, 3)
	c := s.Clone()
	c[4] = struct{}{}
	if s.Contains(4) {
		t.Error("mutating the clone changed the original")
	}
}

func TestConway(t *testing.T) {
	birth, survival := Conway()
	if !birth.Equal(NewSet(3)) {
		t.Errorf("Conway birth rules = %v, want [3]", birth.Values())
	}
	if !survival.Equal(NewSet(2, 3)) {
		t.Errorf("Conway survival rules = %v, want [2 3]", survival.Values())
	}
}
