package model

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Coord identifies a cell position on the infinite grid: one signed
// component per dimension. Equality and hashing are structural. A Coord is
// never resized or mutated once created; components wrap on overflow
// (int64 two's complement), which takes ~9.2e18 generations of travel in
// one direction to reach.
type Coord []int64

// C is a shorthand constructor for coordinate literals.
func C(components ...int64) Coord {
	return Coord(components)
}

// Clone returns an independent copy of the coordinate.
func (c Coord) Clone() Coord {
	clone := make(Coord, len(c))
	copy(clone, c)
	return clone
}

// Equal reports whether both coordinates have identical components.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i, v := range c {
		if other[i] != v {
			return false
		}
	}
	return true
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(')')
	return b.String()
}

// appendKey packs the components onto dst as fixed-width bytes. Equal
// coordinates pack to equal keys, so the result is usable as a structural
// hash key for map storage.
func (c Coord) appendKey(dst []byte) []byte {
	for _, v := range c {
		dst = binary.LittleEndian.AppendUint64(dst, uint64(v))
	}
	return dst
}

func (c Coord) key() string {
	return string(c.appendKey(make([]byte, 0, 8*len(c))))
}
