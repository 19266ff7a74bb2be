// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package parser provides a registry for converting values between a closed
// set of representations.
//
// A representation is a tag, such as a string label, associated with the
// Go type of the values it describes:
//
//	var (
//	    Number = parser.Repr[float64]("number")
//	    String = parser.Repr[string]("string")
//	)
//
// A [Parser] is built from the declared representations and a conversion
// table which must hold a [Case] for every ordered pair of them, identity
// pairs included. [New] rejects any table with missing, duplicate or
// mistyped cases, so a Parser which was built successfully can always find
// a converter at dispatch:
//
//	p, err := parser.New(parser.Config[string]{
//	    Representations: []parser.Declaration[string]{Number, String},
//	    Cases: []parser.Case[string]{
//	        parser.Identity(Number),
//	        parser.Identity(String),
//	        parser.Convert(Number, String, formatNumber),
//	        parser.ConvertWith(String, Number, parseNumber),
//	    },
//	})
//
// Converters return a [fallible.OrJust] so converters which cannot fail
// may simply return [fallible.Just]. Every dispatch result is normalized
// into a [fallible.Outcome]:
//
//	o := parser.ToWith(p, "12.5", Number, NumberParams{Precision: Float})
//	if n, ok := o.Success(); ok {
//	    fmt.Println(n)
//	}
//
// A missing value (nil) is never classified and always results in a
// failure carrying a nil error.
package parser
