// Package exceptions tracks the five IEEE 754-2019 exception conditions
// as sticky flags in a shared, concurrency-safe store.
package exceptions

// Flag identifies one of the five exception conditions of IEEE 754-2019
// section 7. The numbering follows the reference order.
type Flag uint8

const (
	Invalid Flag = iota
	DivisionByZero
	Overflow
	Underflow
	Inexact
)

const flagCount = 5

func (f Flag) String() string {
	switch f {
	case Invalid:
		return "invalid"
	case DivisionByZero:
		return "divisionByZero"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case Inexact:
		return "inexact"
	}
	return "unknown"
}

// Flags returns all five flags in their canonical order.
func Flags() []Flag {
	return []Flag{Invalid, DivisionByZero, Overflow, Underflow, Inexact}
}

// Set is a point-in-time snapshot of the five flags.
type Set struct {
	Invalid        bool
	DivisionByZero bool
	Overflow       bool
	Underflow      bool
	Inexact        bool
}

func (s Set) Test(f Flag) bool {
	switch f {
	case Invalid:
		return s.Invalid
	case DivisionByZero:
		return s.DivisionByZero
	case Overflow:
		return s.Overflow
	case Underflow:
		return s.Underflow
	case Inexact:
		return s.Inexact
	}
	return false
}

func (s Set) Any() bool {
	return s.Invalid || s.DivisionByZero || s.Overflow || s.Underflow || s.Inexact
}
