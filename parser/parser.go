// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"math"
	"reflect"

	"github.com/z5labs/fallible"
)

// Config describes the representations a [Parser] converts between
// and the conversion table it dispatches over.
type Config[R comparable] struct {
	// Representations is the closed set of representations.
	Representations []Declaration[R]

	// Cases must contain exactly one case for every ordered pair
	// of Representations, identity pairs included.
	Cases []Case[R]

	// GetRepresentation classifies a value. If nil, values are classified
	// by matching their dynamic Go type against the declared types.
	GetRepresentation func(any) (R, bool)

	// AbsentWhenZero treats zero values (0, "", false, NaN, ...) the
	// same as a missing value. By default only nil is absent.
	AbsentWhenZero bool
}

// Parser dispatches values to the case converting their
// representation into the desired one.
//
// A Parser is read-only once built and is safe for concurrent use.
type Parser[R comparable] struct {
	tags     []R
	types    map[R]reflect.Type
	cases    map[Pair[R]]Case[R]
	classify func(any) (R, bool)
	absent   func(any) bool
}

// New validates cfg and builds a Parser from it.
func New[R comparable](cfg Config[R]) (*Parser[R], error) {
	if len(cfg.Representations) == 0 {
		return nil, ErrNoRepresentations
	}

	p := &Parser[R]{
		tags:   make([]R, 0, len(cfg.Representations)),
		types:  make(map[R]reflect.Type, len(cfg.Representations)),
		cases:  make(map[Pair[R]]Case[R], len(cfg.Cases)),
		absent: isNil,
	}
	for _, d := range cfg.Representations {
		if d == nil {
			return nil, ErrNilDeclaration
		}

		tag := d.Tag()
		if _, exists := p.types[tag]; exists {
			return nil, DuplicateRepresentationError[R]{Tag: tag}
		}
		p.tags = append(p.tags, tag)
		p.types[tag] = d.Type()
	}

	for _, c := range cfg.Cases {
		err := p.checkCase(c)
		if err != nil {
			return nil, err
		}
		if _, exists := p.cases[c.pair]; exists {
			return nil, DuplicateCaseError[R]{Pair: c.pair}
		}
		p.cases[c.pair] = c
	}

	var missing []Pair[R]
	for _, from := range p.tags {
		for _, to := range p.tags {
			pair := Pair[R]{From: from, To: to}
			if _, ok := p.cases[pair]; !ok {
				missing = append(missing, pair)
			}
		}
	}
	if len(missing) > 0 {
		return nil, MissingCasesError[R]{Pairs: missing}
	}

	p.classify = cfg.GetRepresentation
	if p.classify == nil {
		classify, err := ByType(cfg.Representations...)
		if err != nil {
			return nil, err
		}
		p.classify = classify
	}
	if cfg.AbsentWhenZero {
		p.absent = isZero
	}
	return p, nil
}

// MustNew is like [New] but panics if cfg is invalid.
func MustNew[R comparable](cfg Config[R]) *Parser[R] {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parser[R]) checkCase(c Case[R]) error {
	if c.convert == nil {
		return ErrInvalidCase
	}

	sides := []struct {
		tag R
		typ reflect.Type
	}{
		{tag: c.pair.From, typ: c.from},
		{tag: c.pair.To, typ: c.to},
	}
	for _, side := range sides {
		declared, ok := p.types[side.tag]
		if !ok {
			return UndeclaredRepresentationError[R]{Tag: side.tag}
		}
		if declared != side.typ {
			return CaseTypeError[R]{
				Tag:      side.tag,
				Declared: declared,
				Got:      side.typ,
			}
		}
	}
	return nil
}

// Representations returns the declared tags in declaration order.
func (p *Parser[R]) Representations() []R {
	tags := make([]R, len(p.tags))
	copy(tags, p.tags)
	return tags
}

// Classify returns the declared representation of v.
func (p *Parser[R]) Classify(v any) (R, bool) {
	if p.absent(v) {
		var zero R
		return zero, false
	}

	tag, ok := p.classify(v)
	if !ok {
		return tag, false
	}
	_, declared := p.types[tag]
	return tag, declared
}

// Lookup returns the first declared representation whose Go type is t.
func (p *Parser[R]) Lookup(t reflect.Type) (R, bool) {
	for _, tag := range p.tags {
		if p.types[tag] == t {
			return tag, true
		}
	}
	var zero R
	return zero, false
}

// Parse is shorthand for ParseWith(value, to, nil).
func (p *Parser[R]) Parse(value any, to R) fallible.Outcome[any, error] {
	return p.ParseWith(value, to, nil)
}

// ParseWith converts value into the representation to.
//
// An absent value fails immediately with a nil failure value. Otherwise
// the value is classified, the case for (classified, to) is invoked with
// value and params and its result is normalized into an Outcome.
func (p *Parser[R]) ParseWith(value any, to R, params any) fallible.Outcome[any, error] {
	if p.absent(value) {
		return fallible.Failure[any, error](nil)
	}

	from, ok := p.classify(value)
	if !ok {
		return fallible.Failure[any, error](UnclassifiedValueError{Value: value})
	}

	c, ok := p.cases[Pair[R]{From: from, To: to}]
	if !ok {
		// the table is exhaustive so one of the tags must be undeclared
		tag := to
		if _, declared := p.types[from]; !declared {
			tag = from
		}
		return fallible.Failure[any, error](UndeclaredRepresentationError[R]{Tag: tag})
	}
	return c.convert(value, params)
}

// To is shorthand for ToWith(p, value, to, nil).
func To[T any, R comparable](p *Parser[R], value any, to Representation[R, T]) fallible.Outcome[T, error] {
	return ToWith(p, value, to, nil)
}

// ToWith is the typed form of [Parser.ParseWith]. The success value
// is already of the Go type declared for to.
func ToWith[T any, R comparable](p *Parser[R], value any, to Representation[R, T], params any) fallible.Outcome[T, error] {
	if p.absent(value) {
		return fallible.Failure[T, error](nil)
	}
	if declared, ok := p.types[to.Tag()]; ok && declared != to.Type() {
		return fallible.Failure[T, error](TargetTypeError[R]{
			Tag:       to.Tag(),
			Declared:  declared,
			Requested: to.Type(),
		})
	}

	return fallible.Bind(p.ParseWith(value, to.Tag(), params), func(v any) fallible.Outcome[T, error] {
		if v == nil {
			var zero T
			return fallible.Success[T, error](zero)
		}

		t, ok := v.(T)
		if !ok {
			return fallible.Failure[T, error](ValueTypeError{
				Expected: to.Type(),
				Value:    v,
			})
		}
		return fallible.Success[T, error](t)
	})
}

// ByType returns a classifier which maps a value to the representation
// declared with the value's dynamic Go type.
func ByType[R comparable](decls ...Declaration[R]) (func(any) (R, bool), error) {
	byType := make(map[reflect.Type]R, len(decls))
	for _, d := range decls {
		if d == nil {
			return nil, ErrNilDeclaration
		}

		typ := d.Type()
		if tag, exists := byType[typ]; exists {
			return nil, AmbiguousTypeError[R]{
				Type: typ,
				Tags: []R{tag, d.Tag()},
			}
		}
		byType[typ] = d.Tag()
	}

	return func(v any) (R, bool) {
		tag, ok := byType[reflect.TypeOf(v)]
		return tag, ok
	}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func isZero(v any) bool {
	if isNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	if rv.CanFloat() && math.IsNaN(rv.Float()) {
		return true
	}
	return rv.IsZero()
}
