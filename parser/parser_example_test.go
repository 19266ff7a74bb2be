// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser_test

import (
	"fmt"
	"strconv"

	"github.com/z5labs/fallible"
	"github.com/z5labs/fallible/parser"
)

type Precision int

const (
	Int Precision = iota
	Float
)

type NumberParams struct {
	Precision Precision
}

var (
	Number = parser.Repr[float64]("number")
	String = parser.Repr[string]("string")
)

func Example() {
	p := parser.MustNew(parser.Config[string]{
		Representations: []parser.Declaration[string]{Number, String},
		Cases: []parser.Case[string]{
			parser.Identity(Number),
			parser.Identity(String),
			parser.Convert(Number, String, func(f float64) fallible.OrJust[string, error] {
				return fallible.Just[string, error](strconv.FormatFloat(f, 'f', -1, 64))
			}),
			parser.ConvertWith(String, Number, func(s string, params NumberParams) fallible.OrJust[float64, error] {
				if params.Precision == Float {
					f, err := strconv.ParseFloat(s, 64)
					return fallible.Wrap(fallible.FromResult(f, err))
				}
				n, err := strconv.ParseInt(s, 10, 64)
				return fallible.Wrap(fallible.Map(fallible.FromResult(n, err), func(n int64) float64 {
					return float64(n)
				}))
			}),
		},
	})

	fmt.Println(parser.ToWith(p, "12.5", Number, NumberParams{Precision: Float}))
	fmt.Println(parser.To(p, "12", Number))
	fmt.Println(parser.To(p, 1234.0, String))
	fmt.Println(parser.To(p, nil, String))
	// Output:
	// Success(12.5)
	// Success(12)
	// Success(1234)
	// Failure(<nil>)
}
