// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import "reflect"

// Declaration is implemented by every [Representation] and is used to
// declare the closed set of representations a [Parser] converts between.
type Declaration[R comparable] interface {
	Tag() R
	Type() reflect.Type
}

// Representation associates the tag R with the Go type T of all values
// understood through that tag.
type Representation[R comparable, T any] struct {
	tag R
}

// Repr returns the Representation tagged tag for values of type T.
func Repr[T any, R comparable](tag R) Representation[R, T] {
	return Representation[R, T]{tag: tag}
}

// Tag implements the [Declaration] interface.
func (r Representation[R, T]) Tag() R {
	return r.tag
}

// Type implements the [Declaration] interface.
func (r Representation[R, T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// Pair is an ordered (source, target) pair of representation tags.
type Pair[R comparable] struct {
	From R
	To   R
}
