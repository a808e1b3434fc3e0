package rules

/*
Conway returns the canonical Game of Life rule sets.

Conway's Game of Life rules: birth on exactly 3 neighbours, survival on 2 or 3.
*/
func Conway() (birth, survival Set) {
	return NewSet(3), NewSet(2, 3)
}
