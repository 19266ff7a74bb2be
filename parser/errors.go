// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNoRepresentations is returned by [New] when the config
	// does not declare any representations.
	ErrNoRepresentations = errors.New("parser: no representations declared")

	// ErrNilDeclaration is returned by [New] when one of the
	// declared representations is nil.
	ErrNilDeclaration = errors.New("parser: nil representation declared")

	// ErrInvalidCase is returned by [New] when a [Case] was not built
	// with one of Convert, ConvertWith or Identity.
	ErrInvalidCase = errors.New("parser: case must be built with Convert, ConvertWith or Identity")
)

// DuplicateRepresentationError occurs when the same tag is declared more than once.
type DuplicateRepresentationError[R comparable] struct {
	Tag R
}

// Error implements the [builtin.error] interface.
func (e DuplicateRepresentationError[R]) Error() string {
	return fmt.Sprintf("parser: representation declared more than once: %v", e.Tag)
}

// UndeclaredRepresentationError occurs when a case or a dispatch
// refers to a tag which was never declared.
type UndeclaredRepresentationError[R comparable] struct {
	Tag R
}

// Error implements the [builtin.error] interface.
func (e UndeclaredRepresentationError[R]) Error() string {
	return fmt.Sprintf("parser: undeclared representation: %v", e.Tag)
}

// CaseTypeError occurs when a case was built for a representation whose
// Go type differs from the type the representation was declared with.
type CaseTypeError[R comparable] struct {
	Tag      R
	Declared reflect.Type
	Got      reflect.Type
}

// Error implements the [builtin.error] interface.
func (e CaseTypeError[R]) Error() string {
	return fmt.Sprintf("parser: case uses %s for representation %v declared as %s", e.Got, e.Tag, e.Declared)
}

// DuplicateCaseError occurs when more than one case covers the same pair.
type DuplicateCaseError[R comparable] struct {
	Pair Pair[R]
}

// Error implements the [builtin.error] interface.
func (e DuplicateCaseError[R]) Error() string {
	return fmt.Sprintf("parser: more than one case for %v -> %v", e.Pair.From, e.Pair.To)
}

// MissingCasesError occurs when the conversion table does not cover
// every ordered pair of declared representations.
type MissingCasesError[R comparable] struct {
	Pairs []Pair[R]
}

// Error implements the [builtin.error] interface.
func (e MissingCasesError[R]) Error() string {
	ss := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		ss[i] = fmt.Sprintf("%v -> %v", p.From, p.To)
	}
	return fmt.Sprintf("parser: missing cases: %s", strings.Join(ss, ", "))
}

// AmbiguousTypeError occurs when no classifier was configured and more than
// one representation is declared with the same Go type.
type AmbiguousTypeError[R comparable] struct {
	Type reflect.Type
	Tags []R
}

// Error implements the [builtin.error] interface.
func (e AmbiguousTypeError[R]) Error() string {
	return fmt.Sprintf("parser: cannot classify by type, %s is declared by %v", e.Type, e.Tags)
}

// UnclassifiedValueError occurs when the classifier cannot
// map a value to any representation.
type UnclassifiedValueError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e UnclassifiedValueError) Error() string {
	return fmt.Sprintf("parser: value of type %T does not belong to any representation", e.Value)
}

// ValueTypeError occurs when the classifier maps a value to a
// representation declared with a different Go type.
type ValueTypeError struct {
	Expected reflect.Type
	Value    any
}

// Error implements the [builtin.error] interface.
func (e ValueTypeError) Error() string {
	return fmt.Sprintf("parser: expected value of type %s but got %T", e.Expected, e.Value)
}

// TargetTypeError occurs when a typed dispatch requests a Go type which
// differs from the type the target representation was declared with.
type TargetTypeError[R comparable] struct {
	Tag       R
	Declared  reflect.Type
	Requested reflect.Type
}

// Error implements the [builtin.error] interface.
func (e TargetTypeError[R]) Error() string {
	return fmt.Sprintf("parser: representation %v is declared as %s but %s was requested", e.Tag, e.Declared, e.Requested)
}

// ParamsTypeError occurs when the parameters supplied at dispatch are
// not of the type declared for the pair. Expected is nil if the pair
// accepts no parameters.
type ParamsTypeError[R comparable] struct {
	Pair     Pair[R]
	Expected reflect.Type
	Got      reflect.Type
}

// Error implements the [builtin.error] interface.
func (e ParamsTypeError[R]) Error() string {
	if e.Expected == nil {
		return fmt.Sprintf("parser: %v -> %v accepts no parameters but got %s", e.Pair.From, e.Pair.To, e.Got)
	}
	return fmt.Sprintf("parser: %v -> %v expects parameters of type %s but got %s", e.Pair.From, e.Pair.To, e.Expected, e.Got)
}
