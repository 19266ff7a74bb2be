// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"reflect"

	"github.com/z5labs/fallible"
)

// Case is a single entry of a conversion table. It converts values of
// one representation into values of another.
//
// The zero value is not a valid Case. Cases must be built with
// [Convert], [ConvertWith] or [Identity].
type Case[R comparable] struct {
	pair    Pair[R]
	from    reflect.Type
	to      reflect.Type
	params  reflect.Type
	convert func(v, params any) fallible.Outcome[any, error]
}

// Pair returns the (source, target) pair c converts between.
func (c Case[R]) Pair() Pair[R] {
	return c.pair
}

// Convert returns a Case converting from into to with f. The pair accepts
// no parameters.
func Convert[R comparable, A, B any](
	from Representation[R, A],
	to Representation[R, B],
	f func(A) fallible.OrJust[B, error],
) Case[R] {
	pair := Pair[R]{From: from.Tag(), To: to.Tag()}
	return Case[R]{
		pair: pair,
		from: from.Type(),
		to:   to.Type(),
		convert: func(v, params any) fallible.Outcome[any, error] {
			if params != nil {
				return fallible.Failure[any, error](ParamsTypeError[R]{
					Pair: pair,
					Got:  reflect.TypeOf(params),
				})
			}

			a, ok := v.(A)
			if !ok {
				return fallible.Failure[any, error](ValueTypeError{
					Expected: from.Type(),
					Value:    v,
				})
			}
			return widen(fallible.EnsureWrapped(f(a)))
		},
	}
}

// ConvertWith returns a Case converting from into to with f. The pair
// accepts a parameter value of type P. When no parameters are supplied
// at dispatch f receives the zero value of P, so any default belongs to
// the definition of P itself.
func ConvertWith[R comparable, A, B, P any](
	from Representation[R, A],
	to Representation[R, B],
	f func(A, P) fallible.OrJust[B, error],
) Case[R] {
	pair := Pair[R]{From: from.Tag(), To: to.Tag()}
	paramsType := reflect.TypeFor[P]()
	return Case[R]{
		pair:   pair,
		from:   from.Type(),
		to:     to.Type(),
		params: paramsType,
		convert: func(v, params any) fallible.Outcome[any, error] {
			var p P
			if params != nil {
				var ok bool
				p, ok = params.(P)
				if !ok {
					return fallible.Failure[any, error](ParamsTypeError[R]{
						Pair:     pair,
						Expected: paramsType,
						Got:      reflect.TypeOf(params),
					})
				}
			}

			a, ok := v.(A)
			if !ok {
				return fallible.Failure[any, error](ValueTypeError{
					Expected: from.Type(),
					Value:    v,
				})
			}
			return widen(fallible.EnsureWrapped(f(a, p)))
		},
	}
}

// Identity returns a Case which converts r into itself by returning the
// value unchanged. Identity pairs are never filled in automatically,
// they still have to be listed in [Config].Cases.
func Identity[R comparable, T any](r Representation[R, T]) Case[R] {
	return Convert(r, r, fallible.Just[T, error])
}

func widen[T any](o fallible.Outcome[T, error]) fallible.Outcome[any, error] {
	return fallible.Map(o, func(v T) any {
		return v
	})
}
