package sim

import "github.com/pkg/errors"

// BuildError is fatal to a Simulation's construction: an unknown card
// name, a missing tier, board overflow, or a malformed template.
// Callers abort the build; no SimulationResult is produced.
type BuildError struct {
	msg string
}

func (e *BuildError) Error() string { return e.msg }

func newBuildError(format string, args ...any) error {
	return errors.Wrap(&BuildError{msg: errors.Errorf(format, args...).Error()}, "build")
}

// IsBuildError reports whether err is (or wraps) a BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}

// RuntimeWarning marks a non-fatal condition encountered during a run: a
// Raw effect, an unknown source id at apply time, or an unimplemented
// (FromPlayer) derived-value path. Raw effects and events with an unknown
// source are dropped; a FromPlayer amount resolves to 0. The run continues
// in every case. A Raw target condition evaluates to false without
// raising a warning.
type RuntimeWarning struct {
	msg string
}

func (w *RuntimeWarning) Error() string { return w.msg }

func newRuntimeWarning(format string, args ...any) *RuntimeWarning {
	return &RuntimeWarning{msg: errors.Errorf(format, args...).Error()}
}

// RuntimeError marks a misuse that a well-formed template should never
// trigger, such as asking to derive a Constant as though it carried
// targets. Like warnings, it never aborts the run.
type RuntimeError struct {
	msg string
}

func (e *RuntimeError) Error() string { return e.msg }

func newRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{msg: errors.Errorf(format, args...).Error()}
}
