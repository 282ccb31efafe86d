// Package rational converts floating-point numeric property values into
// exact minimal-denominator rationals.
//
// Numeric values in character property tables are published as decimals
// ("0.16666...") but are really small rationals ("1/6"). Reading them back
// through a float64 loses the denominator; this package recovers it by
// running a continued-fraction expansion over the exact binary ratio of the
// float64 and stopping at the first convergent that reproduces the input
// bit-for-bit.
package rational

import (
	"fmt"
	"math"

	"github.com/scrypster/unilook/pkg/types"
)

// FromFloat returns the unique rational p/q in lowest terms with minimal q
// such that float64(p)/float64(q) reproduces x exactly.
//
// x must be finite; FromFloat panics on NaN or infinity. It also panics if
// the expansion exhausts the exact ratio without finding an exact
// convergent, which cannot happen for any float64 and indicates a defect.
func FromFloat(x float64) types.Rational {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("rational: non-finite input %v", x))
	}
	if x == 0 {
		return types.Rational{Num: 0, Den: 1}
	}

	neg := x < 0
	abs := math.Abs(x)

	// Decompose abs into an exact integer ratio n/d. Frexp gives
	// abs = frac * 2^exp with frac in [0.5, 1), so frac * 2^53 is an
	// integer mantissa.
	frac, exp := math.Frexp(abs)
	n := int64(frac * (1 << 53))
	e := exp - 53
	for n%2 == 0 && e < 0 {
		n >>= 1
		e++
	}
	var d int64 = 1
	if e > 0 {
		n <<= e
	} else {
		d = int64(1) << uint(-e)
	}

	// Continued-fraction expansion: walk the convergents of n/d until one
	// of them converts back to abs exactly. The Euclidean remainder
	// strictly decreases, so the loop terminates; the exact ratio itself
	// is the final convergent, so an exact match is guaranteed.
	var p0, q0 int64 = 0, 1
	var p1, q1 int64 = 1, 0
	for d != 0 {
		a := n / d
		p0, p1 = p1, p0+a*p1
		q0, q1 = q1, q0+a*q1
		n, d = d, n-a*d
		if float64(p1)/float64(q1) == abs {
			if neg {
				p1 = -p1
			}
			return types.Rational{Num: p1, Den: q1}
		}
	}
	panic(fmt.Sprintf("rational: no exact convergent for %v (n=%d)", x, n))
}
