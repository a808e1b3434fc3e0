package model

// neighborOffsets enumerates the Moore neighbourhood offsets for one cell:
// every vector in {-1, 0, 1}^dim except the all-zero vector, 3^dim - 1 in
// total. It works as a mixed-radix odometer over the digit vector, starting
// at all -1 and carrying into the next digit on overflow.
//
// The engine constructs a fresh enumerator per living cell; the digit state
// must never be shared between cells.
type neighborOffsets struct {
	digits  []int64
	started bool
	done    bool
}

func newNeighborOffsets(dim int) *neighborOffsets {
	digits := make([]int64, dim)
	for i := range digits {
		digits[i] = -1
	}
	return &neighborOffsets{digits: digits, done: dim == 0}
}

// next advances the odometer and returns the next offset vector, or false
// once all combinations are exhausted. The returned slice is reused between
// calls; callers must not retain it.
func (it *neighborOffsets) next() ([]int64, bool) {
	for !it.done {
		if !it.started {
			it.started = true
		} else {
			i := 0
			for i < len(it.digits) && it.digits[i] == 1 {
				it.digits[i] = -1
				i++
			}
			if i == len(it.digits) {
				it.done = true
				return nil, false
			}
			it.digits[i]++
		}
		if !it.allZero() {
			return it.digits, true
		}
	}
	return nil, false
}

func (it *neighborOffsets) allZero() bool {
	for _, d := range it.digits {
		if d != 0 {
			return false
		}
	}
	return true
}
