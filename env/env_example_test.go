// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env_test

import (
	"fmt"

	"github.com/z5labs/fallible/env"
)

func Example() {
	r := env.FromMap(map[string]string{
		"PORT":  "1234",
		"RATIO": "xyz",
	})

	port := env.GetWith(r, "PORT", env.Number, env.NumberParams{Precision: env.PrecisionFloat})
	fmt.Println(port)

	ratio := env.GetWith(r, "RATIO", env.Number, env.NumberParams{Precision: env.PrecisionFloat})
	fmt.Println(ratio.IsFailure())

	missing := env.Get(r, "MISSING", env.String)
	fmt.Println(missing)
	// Output:
	// Success(1234)
	// true
	// Failure(<nil>)
}
