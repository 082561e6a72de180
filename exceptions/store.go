package exceptions

import (
	"log"
	"sync"
)

// HardwareFlags is the boundary to a platform FPU status word. A Store
// configured with one mirrors raise and clear operations into it and ORs
// its state into tests.
type HardwareFlags interface {
	RaiseFlag(Flag) error
	ClearFlag(Flag) error
	ClearFlags() error
	TestFlags() (Set, error)
}

// Store holds the five exception flags behind a single mutex. Flags are
// sticky: only Clear and ClearAll reset them, reads never do. All methods
// are safe for concurrent use and never fail.
//
// The store itself never raises a flag; callers wrapping arithmetic are
// responsible for detecting the condition and calling Raise.
//
// When a HardwareFlags mirror is attached, the mirror's state is
// understood to be thread-local on most platforms while the store is
// shared across goroutines, so the two can disagree after concurrent
// mutation from different threads. The store is authoritative; the
// mirror is best-effort.
type Store struct {
	mu    sync.Mutex
	flags [flagCount]bool
	hw    HardwareFlags
}

func NewStore() *Store {
	return &Store{}
}

// NewStoreWithHardware returns a store that mirrors mutations into hw.
func NewStoreWithHardware(hw HardwareFlags) *Store {
	return &Store{hw: hw}
}

// Shared is the process-wide store used by callers that do not inject
// their own, mirroring the reference implementation's single global
// exception state. Tests should construct isolated stores instead.
var Shared = NewStore()

// Raise sets f. Raising an already-raised flag, or a Flag value that
// names no condition, is a no-op: store operations never fail.
func (s *Store) Raise(f Flag) {
	if f >= flagCount {
		return
	}
	s.mu.Lock()
	s.flags[f] = true
	s.mu.Unlock()

	// the mirror call stays outside the critical section
	if s.hw != nil {
		if err := s.hw.RaiseFlag(f); err != nil {
			log.Printf("exceptions: hardware mirror rejected raise of %v: %v", f, err)
		}
	}
}

// Clear resets f. Clearing an already-clear flag, or a Flag value that
// names no condition, is a no-op.
func (s *Store) Clear(f Flag) {
	if f >= flagCount {
		return
	}
	s.mu.Lock()
	s.flags[f] = false
	s.mu.Unlock()

	if s.hw != nil {
		if err := s.hw.ClearFlag(f); err != nil {
			log.Printf("exceptions: hardware mirror rejected clear of %v: %v", f, err)
		}
	}
}

// ClearAll resets all five flags.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.flags = [flagCount]bool{}
	s.mu.Unlock()

	if s.hw != nil {
		if err := s.hw.ClearFlags(); err != nil {
			log.Printf("exceptions: hardware mirror rejected clear-all: %v", err)
		}
	}
}

// Test reports whether f is raised in the store or, when a mirror is
// attached, in the hardware status word. A Flag value that names no
// condition is never raised.
func (s *Store) Test(f Flag) bool {
	if f >= flagCount {
		return false
	}
	s.mu.Lock()
	v := s.flags[f]
	s.mu.Unlock()

	if v || s.hw == nil {
		return v
	}
	hwSet, err := s.hw.TestFlags()
	if err != nil {
		return v
	}
	return hwSet.Test(f)
}

// TestAny reports whether any of the five flags is raised.
func (s *Store) TestAny() bool {
	return s.Snapshot().Any()
}

// Raised returns the currently raised flags in canonical order.
func (s *Store) Raised() []Flag {
	snap := s.Snapshot()
	raised := make([]Flag, 0, flagCount)
	for _, f := range Flags() {
		if snap.Test(f) {
			raised = append(raised, f)
		}
	}
	return raised
}

// Snapshot returns the flags as a Set, ORed with the hardware mirror when
// one is attached.
func (s *Store) Snapshot() Set {
	s.mu.Lock()
	snap := Set{
		Invalid:        s.flags[Invalid],
		DivisionByZero: s.flags[DivisionByZero],
		Overflow:       s.flags[Overflow],
		Underflow:      s.flags[Underflow],
		Inexact:        s.flags[Inexact],
	}
	s.mu.Unlock()

	if s.hw == nil {
		return snap
	}
	hwSet, err := s.hw.TestFlags()
	if err != nil {
		return snap
	}
	return Set{
		Invalid:        snap.Invalid || hwSet.Invalid,
		DivisionByZero: snap.DivisionByZero || hwSet.DivisionByZero,
		Overflow:       snap.Overflow || hwSet.Overflow,
		Underflow:      snap.Underflow || hwSet.Underflow,
		Inexact:        snap.Inexact || hwSet.Inexact,
	}
}
