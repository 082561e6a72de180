// Package fpu defines the boundary to floating-point environment control:
// rounding-direction attributes and the hardware exception status word.
//
// The platform FPU is modelled as a pluggable Control. Software is an
// in-process implementation for platforms (and tests) without accessible
// native control; a cgo-backed implementation can satisfy the same
// interface where fenv access exists.
package fpu

import (
	"sync"

	"github.com/coenttb/go-ieee754/exceptions"
	xerrors "golang.org/x/xerrors"
)

// RoundingMode is an IEEE 754-2019 section 4.3 rounding-direction
// attribute. The numbering follows the reference order.
type RoundingMode uint8

const (
	// ToNearestEven is roundTiesToEven, the default.
	ToNearestEven RoundingMode = iota
	// TowardNegative is roundTowardNegative.
	TowardNegative
	// TowardPositive is roundTowardPositive.
	TowardPositive
	// TowardZero is roundTowardZero.
	TowardZero
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "toNearestEven"
	case TowardNegative:
		return "towardNegative"
	case TowardPositive:
		return "towardPositive"
	case TowardZero:
		return "towardZero"
	}
	return "unknown"
}

// Control exposes the floating-point environment: the rounding mode and
// the exception status word. Every call reports failure explicitly; the
// platform may reject a mode it cannot represent.
type Control interface {
	RoundingMode() (RoundingMode, error)
	SetRoundingMode(RoundingMode) error

	exceptions.HardwareFlags
}

// Software is a Control backed by in-process state instead of the FPU.
// Its rounding mode is advisory: it does not change how native Go
// arithmetic rounds, it only stores the attribute for cooperating code
// to consult.
type Software struct {
	mu    sync.Mutex
	mode  RoundingMode
	flags exceptions.Set
}

var _ Control = (*Software)(nil)

func NewSoftware() *Software {
	return &Software{}
}

func (s *Software) RoundingMode() (RoundingMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, nil
}

func (s *Software) SetRoundingMode(m RoundingMode) error {
	if m > TowardZero {
		return xerrors.Errorf("unknown rounding mode: %d", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	return nil
}

func (s *Software) RaiseFlag(f exceptions.Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch f {
	case exceptions.Invalid:
		s.flags.Invalid = true
	case exceptions.DivisionByZero:
		s.flags.DivisionByZero = true
	case exceptions.Overflow:
		s.flags.Overflow = true
	case exceptions.Underflow:
		s.flags.Underflow = true
	case exceptions.Inexact:
		s.flags.Inexact = true
	default:
		return xerrors.Errorf("unknown exception flag: %d", f)
	}
	return nil
}

func (s *Software) ClearFlag(f exceptions.Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch f {
	case exceptions.Invalid:
		s.flags.Invalid = false
	case exceptions.DivisionByZero:
		s.flags.DivisionByZero = false
	case exceptions.Overflow:
		s.flags.Overflow = false
	case exceptions.Underflow:
		s.flags.Underflow = false
	case exceptions.Inexact:
		s.flags.Inexact = false
	default:
		return xerrors.Errorf("unknown exception flag: %d", f)
	}
	return nil
}

func (s *Software) ClearFlags() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = exceptions.Set{}
	return nil
}

func (s *Software) TestFlags() (exceptions.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags, nil
}
