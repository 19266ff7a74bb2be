// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package env parses environment variables into typed values.
package env

import (
	"fmt"
	"strings"
	"time"

	"github.com/z5labs/fallible/parser"

	"github.com/Masterminds/semver/v3"
)

// Kind tags the representations environment values are converted between.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindBool     Kind = "bool"
	KindDuration Kind = "duration"
	KindVersion  Kind = "version"
)

// Representations of environment values.
var (
	String   = parser.Repr[string](KindString)
	Number   = parser.Repr[float64](KindNumber)
	Bool     = parser.Repr[bool](KindBool)
	Duration = parser.Repr[time.Duration](KindDuration)
	Version  = parser.Repr[semver.Version](KindVersion)
)

var kinds = []Kind{KindString, KindNumber, KindBool, KindDuration, KindVersion}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kinds))
	copy(ks, kinds)
	return ks
}

// UnknownKindError occurs when parsing the name of a Kind which does not exist.
type UnknownKindError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("env: unknown kind: %q", e.Name)
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", UnknownKindError{Name: s}
}

func classify(v any) (Kind, bool) {
	switch v.(type) {
	case string:
		return KindString, true
	case float64:
		return KindNumber, true
	case bool:
		return KindBool, true
	case time.Duration:
		return KindDuration, true
	case semver.Version:
		return KindVersion, true
	default:
		return "", false
	}
}
