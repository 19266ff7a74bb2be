// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fallible

// OrJust is either just a success value or a complete [Outcome].
//
// Declaring OrJust as a return type lets functions which cannot fail
// return a bare value, and later be changed to report failures, without
// touching any caller which normalizes through [EnsureWrapped].
type OrJust[S, F any] struct {
	wrapped bool
	just    S
	outcome Outcome[S, F]
}

// Just returns an OrJust holding the bare success value v.
func Just[S, F any](v S) OrJust[S, F] {
	return OrJust[S, F]{just: v}
}

// Wrap returns an OrJust holding the Outcome o.
func Wrap[S, F any](o Outcome[S, F]) OrJust[S, F] {
	return OrJust[S, F]{wrapped: true, outcome: o}
}

// IsOutcome reports whether v holds an Outcome.
func (v OrJust[S, F]) IsOutcome() bool {
	return v.wrapped
}

// IsJust reports whether v holds a bare success value.
func (v OrJust[S, F]) IsJust() bool {
	return !v.IsOutcome()
}

// Outcome returns the held Outcome and true if v holds an Outcome.
func (v OrJust[S, F]) Outcome() (Outcome[S, F], bool) {
	if !v.wrapped {
		return Outcome[S, F]{}, false
	}
	return v.outcome, true
}

// Just returns the bare success value and true if v holds one.
func (v OrJust[S, F]) Just() (S, bool) {
	if v.wrapped {
		var zero S
		return zero, false
	}
	return v.just, true
}

// EnsureWrapped is the method form of [EnsureWrapped].
func (v OrJust[S, F]) EnsureWrapped() Outcome[S, F] {
	return EnsureWrapped(v)
}

// EnsureWrapped normalizes v into an Outcome. A held Outcome is returned
// unchanged, a bare value becomes a success.
func EnsureWrapped[S, F any](v OrJust[S, F]) Outcome[S, F] {
	if v.wrapped {
		return v.outcome
	}
	return Success[S, F](v.just)
}

// FromAny classifies an untyped value by its dynamic type. An Outcome[S, F]
// is wrapped, an OrJust[S, F] is returned as is and an S is just. Any other
// value is rejected.
func FromAny[S, F any](v any) (OrJust[S, F], bool) {
	switch x := v.(type) {
	case OrJust[S, F]:
		return x, true
	case Outcome[S, F]:
		return Wrap(x), true
	case S:
		return Just[S, F](x), true
	default:
		return OrJust[S, F]{}, false
	}
}
