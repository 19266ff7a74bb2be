// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fallible

import "fmt"

// Outcome represents either the success or the failure of a computation.
// The zero value is a failure carrying the zero value of F.
type Outcome[S, F any] struct {
	ok      bool
	success S
	failure F
}

// Success returns a successful Outcome wrapping v.
func Success[S, F any](v S) Outcome[S, F] {
	return Outcome[S, F]{ok: true, success: v}
}

// Failure returns a failed Outcome wrapping v.
func Failure[S, F any](v F) Outcome[S, F] {
	return Outcome[S, F]{failure: v}
}

// IsSuccess reports whether o is a success.
func (o Outcome[S, F]) IsSuccess() bool {
	return o.ok
}

// IsFailure reports whether o is a failure.
func (o Outcome[S, F]) IsFailure() bool {
	return !o.IsSuccess()
}

// Success returns the success value and true if o is a success.
func (o Outcome[S, F]) Success() (S, bool) {
	if !o.ok {
		var zero S
		return zero, false
	}
	return o.success, true
}

// Failure returns the failure value and true if o is a failure.
func (o Outcome[S, F]) Failure() (F, bool) {
	if o.ok {
		var zero F
		return zero, false
	}
	return o.failure, true
}

// Or returns the success value of o or def if o is a failure.
func (o Outcome[S, F]) Or(def S) S {
	if !o.ok {
		return def
	}
	return o.success
}

// Must is the method form of [Must].
func (o Outcome[S, F]) Must() S {
	return Must(o)
}

// String implements the [fmt.Stringer] interface.
func (o Outcome[S, F]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.success)
	}
	return fmt.Sprintf("Failure(%v)", o.failure)
}

// FailureError is returned, or panicked with, when an Outcome
// was expected to be a success but was a failure.
type FailureError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e FailureError) Error() string {
	return fmt.Sprintf("outcome was unexpected failure: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e FailureError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Must unwraps the success value of o. If o is a failure, Must panics
// with a [FailureError] holding the failure value.
func Must[S, F any](o Outcome[S, F]) S {
	if !o.ok {
		panic(FailureError{Value: o.failure})
	}
	return o.success
}

// Map transforms the success value of o with f. Failures pass through unchanged.
func Map[S, T, F any](o Outcome[S, F], f func(S) T) Outcome[T, F] {
	if !o.ok {
		return Failure[T](o.failure)
	}
	return Success[T, F](f(o.success))
}

// Bind chains o into the next fallible computation f.
func Bind[S, T, F any](o Outcome[S, F], f func(S) Outcome[T, F]) Outcome[T, F] {
	if !o.ok {
		return Failure[T](o.failure)
	}
	return f(o.success)
}

// Result converts o into the conventional (value, error) pair. A failure
// value which is a non-nil error is returned as is, any other failure
// value is wrapped in a [FailureError].
func Result[S, F any](o Outcome[S, F]) (S, error) {
	if o.ok {
		return o.success, nil
	}

	var zero S
	if err, ok := any(o.failure).(error); ok && err != nil {
		return zero, err
	}
	return zero, FailureError{Value: o.failure}
}

// FromResult converts the conventional (value, error) pair into an Outcome.
func FromResult[S any](v S, err error) Outcome[S, error] {
	if err != nil {
		return Failure[S](err)
	}
	return Success[S, error](v)
}
