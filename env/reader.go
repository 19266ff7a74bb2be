// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env

import (
	"os"

	"github.com/z5labs/fallible"
	"github.com/z5labs/fallible/parser"
)

var defaultParser = parser.MustNew(parser.Config[Kind]{
	Representations:   []parser.Declaration[Kind]{String, Number, Bool, Duration, Version},
	Cases:             cases(),
	GetRepresentation: classify,
})

// Parser returns the registry converting between every Kind.
func Parser() *parser.Parser[Kind] {
	return defaultParser
}

// Reader reads environment variables and converts them
// into the requested representation.
type Reader struct {
	lookup func(string) (string, bool)
}

// FromEnv returns a Reader over the environment
// variables of the current process.
func FromEnv() Reader {
	return Reader{
		lookup: os.LookupEnv,
	}
}

// FromMap returns a Reader over the given variables.
func FromMap(m map[string]string) Reader {
	return Reader{
		lookup: func(name string) (string, bool) {
			v, ok := m[name]
			return v, ok
		},
	}
}

// Lookup returns the raw value of the variable name or nil if it is
// not set. A variable which is set to the empty string is not nil.
func (r Reader) Lookup(name string) any {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	return v
}

// Parse is shorthand for ParseWith(name, to, nil).
func (r Reader) Parse(name string, to Kind) fallible.Outcome[any, error] {
	return r.ParseWith(name, to, nil)
}

// ParseWith converts the variable name into the representation to.
// An unset variable fails with a nil failure value.
func (r Reader) ParseWith(name string, to Kind, params any) fallible.Outcome[any, error] {
	return defaultParser.ParseWith(r.Lookup(name), to, params)
}

// Get is shorthand for GetWith(r, name, as, nil).
func Get[T any](r Reader, name string, as parser.Representation[Kind, T]) fallible.Outcome[T, error] {
	return GetWith(r, name, as, nil)
}

// GetWith is the typed form of [Reader.ParseWith].
func GetWith[T any](r Reader, name string, as parser.Representation[Kind, T], params any) fallible.Outcome[T, error] {
	return parser.ToWith(defaultParser, r.Lookup(name), as, params)
}
