package fixed

import "math"

// Tau is the Q representation of 2π. Angles are stored in radians; Wrap keeps
// them inside [0, Tau).
var Tau = FromFloat(2 * math.Pi)

// tableSize is the number of entries in the sine table covering one full turn.
// 4096 entries give ~0.09 degree granularity, below what one screen column
// subtends at the target resolution.
const tableSize = 4096

var sinTable [tableSize]Q

func init() {
	for i := range sinTable {
		sinTable[i] = FromFloat(math.Sin(2 * math.Pi * float64(i) / tableSize))
	}
}

// Wrap reduces an angle to the canonical [0, Tau) range.
func Wrap(a Q) Q {
	for a < 0 {
		a += Tau
	}
	for a >= Tau {
		a -= Tau
	}
	return a
}

// Sin looks up the sine of angle a (radians) in the precomputed table.
func Sin(a Q) Q {
	idx := int((int64(Wrap(a)) * tableSize) / int64(Tau))
	if idx >= tableSize {
		idx = tableSize - 1
	}
	return sinTable[idx]
}

// Cos looks up the cosine of angle a (radians).
func Cos(a Q) Q {
	return Sin(a + Tau/4)
}
