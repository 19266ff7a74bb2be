// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fallible provides values describing computations that may fail.
//
// The package is built around two generic types:
//
//   - Outcome[S, F]: either a success carrying S or a failure carrying F
//   - OrJust[S, F]: either a bare S or an Outcome[S, F]
//
// # Outcome
//
// An Outcome is built with one of its two constructors and is never
// modified afterwards:
//
//	ok := fallible.Success[int, error](42)
//	bad := fallible.Failure[int, error](errors.New("boom"))
//
// Callers branch on IsSuccess/IsFailure or narrow with the comma-ok
// accessors:
//
//	if n, ok := ok.Success(); ok {
//	    fmt.Println(n)
//	}
//
// Must unwraps the success value and panics otherwise. It is intended for
// call sites which have already established that failure is impossible.
//
// # OrJust
//
// Functions which cannot fail today may declare an OrJust return type and
// return Just(v). Later they can start returning Wrap(Failure(...))
// without breaking any caller which normalizes through EnsureWrapped:
//
//	func half(n int) fallible.OrJust[int, error] {
//	    return fallible.Just[int, error](n / 2)
//	}
//
//	o := fallible.EnsureWrapped(half(10)) // Outcome[int, error]
package fallible
