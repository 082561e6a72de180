package fpu

import (
	"github.com/coenttb/go-ieee754/exceptions"
	"github.com/hashicorp/go-multierror"
	xerrors "golang.org/x/xerrors"
)

// WithRoundingMode runs body with ctl's rounding mode set to mode and
// restores the prior mode on every exit path, including a panicking body.
// A restore failure never masks the body's error: both are returned,
// joined.
func WithRoundingMode(ctl Control, mode RoundingMode, body func() error) (err error) {
	prev, err := ctl.RoundingMode()
	if err != nil {
		return xerrors.Errorf("reading rounding mode: %w", err)
	}
	if err := ctl.SetRoundingMode(mode); err != nil {
		return xerrors.Errorf("setting rounding mode %v: %w", mode, err)
	}

	defer func() {
		if rerr := ctl.SetRoundingMode(prev); rerr != nil {
			err = multierror.Append(err, xerrors.Errorf("restoring rounding mode %v: %w", prev, rerr)).ErrorOrNil()
		}
	}()
	return body()
}

// WithClearedFlags runs body with ctl's exception flags cleared. On exit
// the flags raised before entry are raised again, so the environment
// after the call is the union of the prior flags and whatever body
// raised, matching C99 feupdateenv. Restore failures are joined to the
// body's error rather than masking it.
func WithClearedFlags(ctl Control, body func() error) (err error) {
	prev, err := ctl.TestFlags()
	if err != nil {
		return xerrors.Errorf("reading exception flags: %w", err)
	}
	if err := ctl.ClearFlags(); err != nil {
		return xerrors.Errorf("clearing exception flags: %w", err)
	}

	defer func() {
		var rerr error
		for _, f := range exceptions.Flags() {
			if !prev.Test(f) {
				continue
			}
			if e := ctl.RaiseFlag(f); e != nil {
				rerr = multierror.Append(rerr, xerrors.Errorf("restoring %v flag: %w", f, e))
			}
		}
		if rerr != nil {
			err = multierror.Append(err, rerr).ErrorOrNil()
		}
	}()
	return body()
}
