// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite is the cause of a NotANumberError for NaN and infinite inputs.
	ErrNotFinite = errors.New("env: number is not finite")

	// ErrDurationOutOfRange is the cause of an InvalidValueError for numbers
	// of seconds which do not fit in a time.Duration.
	ErrDurationOutOfRange = errors.New("env: number of seconds out of duration range")
)

// NotANumberError occurs when a string is converted into a number
// but does not hold one.
type NotANumberError struct {
	Input string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e NotANumberError) Error() string {
	return fmt.Sprintf("env: not a number: %q: %s", e.Input, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e NotANumberError) Unwrap() error {
	return e.Cause
}

// InvalidValueError occurs when a value cannot be converted into Kind.
type InvalidValueError struct {
	Kind  Kind
	Input string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("env: invalid %s: %q: %s", e.Kind, e.Input, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidValueError) Unwrap() error {
	return e.Cause
}

// UnsupportedConversionError occurs when there is no meaningful
// conversion between two kinds.
type UnsupportedConversionError struct {
	From Kind
	To   Kind
}

// Error implements the [builtin.error] interface.
func (e UnsupportedConversionError) Error() string {
	return fmt.Sprintf("env: cannot convert %s to %s", e.From, e.To)
}
