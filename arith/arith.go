// Package arith wraps native float64 arithmetic with cooperative
// exception-flag accounting: each operation delegates to the hardware
// operator, classifies the outcome, and raises the matching flags on a
// caller-supplied store.
//
// Classification is done from operands and result bit patterns alone, so
// it is exact for invalid, division-by-zero and overflow. Underflow is
// reported when the result lands in the subnormal range, or for products
// and quotients flushed all the way to zero. Inexact is raised only where
// it is implied (overflow and flush-to-zero are always inexact); complete
// inexact detection needs the hardware status word, see the fpu package.
package arith

import (
	"math"

	"github.com/coenttb/go-ieee754/exceptions"
)

// Add returns x + y, raising flags on s.
func Add(s *exceptions.Store, x, y float64) float64 {
	r := x + y
	classify(s, r, x, y)
	return r
}

// Sub returns x - y, raising flags on s.
func Sub(s *exceptions.Store, x, y float64) float64 {
	r := x - y
	classify(s, r, x, y)
	return r
}

// Mul returns x * y, raising flags on s.
func Mul(s *exceptions.Store, x, y float64) float64 {
	r := x * y
	// a zero product of two nonzero operands can only come from the
	// rounding flushing a tiny result to zero, which is always inexact
	if r == 0 && x != 0 && y != 0 {
		s.Raise(exceptions.Underflow)
		s.Raise(exceptions.Inexact)
		return r
	}
	classify(s, r, x, y)
	return r
}

// Div returns x / y, raising flags on s. A finite nonzero x over a zero
// y raises divisionByZero; 0/0 and inf/inf raise invalid.
func Div(s *exceptions.Store, x, y float64) float64 {
	r := x / y
	if y == 0 && !math.IsNaN(x) {
		if x == 0 {
			s.Raise(exceptions.Invalid)
		} else if !math.IsInf(x, 0) {
			s.Raise(exceptions.DivisionByZero)
		}
		return r
	}
	// a nonzero x over a finite y quotients to zero only by flushing
	if r == 0 && x != 0 && !math.IsInf(y, 0) {
		s.Raise(exceptions.Underflow)
		s.Raise(exceptions.Inexact)
		return r
	}
	classify(s, r, x, y)
	return r
}

// Sqrt returns the square root of x, raising invalid for any x below -0.
func Sqrt(s *exceptions.Store, x float64) float64 {
	r := math.Sqrt(x)
	if x < 0 {
		s.Raise(exceptions.Invalid)
	}
	return r
}

// FMA returns x*y + z with a single rounding, raising flags on s.
func FMA(s *exceptions.Store, x, y, z float64) float64 {
	r := math.FMA(x, y, z)
	if math.IsNaN(r) && !math.IsNaN(x) && !math.IsNaN(y) && !math.IsNaN(z) {
		s.Raise(exceptions.Invalid)
		return r
	}
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) && !math.IsInf(z, 0) {
		s.Raise(exceptions.Overflow)
		s.Raise(exceptions.Inexact)
		return r
	}
	if isSubnormal(r) {
		s.Raise(exceptions.Underflow)
	}
	return r
}

// classify raises flags for a two-operand result: a NaN from non-NaN
// operands is invalid (inf-inf, 0*inf), an infinity from finite operands
// is an overflow, and a subnormal result is an underflow.
func classify(s *exceptions.Store, r float64, operands ...float64) {
	if math.IsNaN(r) {
		for _, op := range operands {
			if math.IsNaN(op) {
				return
			}
		}
		s.Raise(exceptions.Invalid)
		return
	}
	if math.IsInf(r, 0) {
		for _, op := range operands {
			if math.IsInf(op, 0) {
				return
			}
		}
		s.Raise(exceptions.Overflow)
		s.Raise(exceptions.Inexact)
		return
	}
	if isSubnormal(r) {
		s.Raise(exceptions.Underflow)
	}
}

func isSubnormal(r float64) bool {
	return r != 0 && math.Abs(r) < math.SmallestNonzeroFloat64*0x1p52
}
