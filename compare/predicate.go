// Package compare implements the IEEE 754-2019 comparison predicates:
// the six quiet relations, their signaling variants, and the section 5.10
// total-order relation over every bit pattern of a format.
package compare

import (
	"github.com/coenttb/go-ieee754/exceptions"
	"github.com/coenttb/go-ieee754/float16"
	"golang.org/x/exp/constraints"
)

// Predicate names one of the six relational tests.
type Predicate uint8

const (
	Equal Predicate = iota
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
)

func (p Predicate) String() string {
	switch p {
	case Equal:
		return "equal"
	case NotEqual:
		return "notEqual"
	case Less:
		return "less"
	case LessEqual:
		return "lessEqual"
	case Greater:
		return "greater"
	case GreaterEqual:
		return "greaterEqual"
	}
	return "unknown"
}

// Quiet evaluates p over a and b without raising any exception. When
// either operand is NaN every predicate is false except NotEqual, which
// is true. +0 and -0 compare equal. These are exactly the semantics of
// Go's native comparison operators, which the hardware implements per
// IEEE 754; Quiet only adds the dispatch.
func Quiet[T constraints.Float](p Predicate, a, b T) bool {
	switch p {
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	case Less:
		return a < b
	case LessEqual:
		return a <= b
	case Greater:
		return a > b
	case GreaterEqual:
		return a >= b
	}
	return false
}

// Quiet16 evaluates p over two binary16 values. Widening to float32 is
// exact, so the outcome matches a native binary16 comparison.
func Quiet16(p Predicate, a, b float16.Float16) bool {
	return Quiet(p, a.Float32(), b.Float32())
}

// Signaling evaluates p like Quiet but additionally raises the invalid
// flag on store when either operand is NaN, per IEEE 754-2019 5.6.1.
func Signaling[T constraints.Float](p Predicate, a, b T, store *exceptions.Store) bool {
	if isNaN(a) || isNaN(b) {
		store.Raise(exceptions.Invalid)
		return p == NotEqual
	}
	return Quiet(p, a, b)
}

// Signaling16 is Signaling over binary16 values.
func Signaling16(p Predicate, a, b float16.Float16, store *exceptions.Store) bool {
	if a.IsNaN() || b.IsNaN() {
		store.Raise(exceptions.Invalid)
		return p == NotEqual
	}
	return Quiet16(p, a, b)
}

func isNaN[T constraints.Float](v T) bool {
	return v != v
}
