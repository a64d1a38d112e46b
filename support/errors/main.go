// Package errors re-exports github.com/pkg/errors so that every package in
// this module wraps errors the same way, with the same stack-trace capture
// at the point of Wrap. Callers should depend on this package, not on
// github.com/pkg/errors directly, so the wrapping behavior can be changed in
// one place.
package errors

import "github.com/pkg/errors"

var (
	New    = errors.New
	Errorf = errors.Errorf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Cause  = errors.Cause
	Is     = errors.Is
	As     = errors.As
)

// WithField mirrors Wrap but is used at call sites that want to name which
// field or parameter was the cause, giving a consistent "field X: msg"
// prefix across the SDK's validation errors.
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "field %q", field)
}
