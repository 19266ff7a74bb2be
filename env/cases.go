// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/z5labs/fallible"
	"github.com/z5labs/fallible/parser"

	"github.com/Masterminds/semver/v3"
)

// Precision selects how a string is parsed as a number.
// The zero value is PrecisionInt.
type Precision int

const (
	PrecisionInt Precision = iota
	PrecisionFloat
)

// String implements the [fmt.Stringer] interface.
func (p Precision) String() string {
	switch p {
	case PrecisionInt:
		return "int"
	case PrecisionFloat:
		return "float"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *Precision) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "int":
		*p = PrecisionInt
	case "float":
		*p = PrecisionFloat
	default:
		return fmt.Errorf("env: unknown precision: %q", b)
	}
	return nil
}

// NumberParams are accepted when converting a string into a number.
type NumberParams struct {
	Precision Precision
}

func cases() []parser.Case[Kind] {
	return []parser.Case[Kind]{
		parser.Identity(String),
		parser.ConvertWith(String, Number, stringToNumber),
		parser.Convert(String, Bool, stringToBool),
		parser.Convert(String, Duration, stringToDuration),
		parser.Convert(String, Version, stringToVersion),

		parser.Convert(Number, String, numberToString),
		parser.Identity(Number),
		parser.Convert(Number, Bool, numberToBool),
		parser.Convert(Number, Duration, numberToDuration),
		parser.Convert(Number, Version, numberToVersion),

		parser.Convert(Bool, String, boolToString),
		parser.Convert(Bool, Number, boolToNumber),
		parser.Identity(Bool),
		unsupported(Bool, Duration),
		unsupported(Bool, Version),

		parser.Convert(Duration, String, durationToString),
		parser.Convert(Duration, Number, durationToNumber),
		unsupported(Duration, Bool),
		parser.Identity(Duration),
		unsupported(Duration, Version),

		parser.Convert(Version, String, versionToString),
		unsupported(Version, Number),
		unsupported(Version, Bool),
		unsupported(Version, Duration),
		parser.Identity(Version),
	}
}

func unsupported[A, B any](from parser.Representation[Kind, A], to parser.Representation[Kind, B]) parser.Case[Kind] {
	return parser.Convert(from, to, func(A) fallible.OrJust[B, error] {
		return fallible.Wrap(fallible.Failure[B, error](UnsupportedConversionError{
			From: from.Tag(),
			To:   to.Tag(),
		}))
	})
}

func stringToNumber(s string, params NumberParams) fallible.OrJust[float64, error] {
	var (
		f   float64
		err error
	)
	switch params.Precision {
	case PrecisionFloat:
		f, err = strconv.ParseFloat(s, 64)
	default:
		var n int64
		n, err = strconv.ParseInt(s, 10, 64)
		f = float64(n)

		// s is a well formed integer beyond int64
		if errors.Is(err, strconv.ErrRange) {
			f, err = strconv.ParseFloat(s, 64)
		}
	}
	if err != nil {
		return fallible.Wrap(fallible.Failure[float64, error](NotANumberError{Input: s, Cause: err}))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallible.Wrap(fallible.Failure[float64, error](NotANumberError{Input: s, Cause: ErrNotFinite}))
	}
	return fallible.Just[float64, error](f)
}

func stringToBool(s string) fallible.OrJust[bool, error] {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallible.Wrap(fallible.Failure[bool, error](InvalidValueError{Kind: KindBool, Input: s, Cause: err}))
	}
	return fallible.Just[bool, error](b)
}

func stringToDuration(s string) fallible.OrJust[time.Duration, error] {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallible.Wrap(fallible.Failure[time.Duration, error](InvalidValueError{Kind: KindDuration, Input: s, Cause: err}))
	}
	return fallible.Just[time.Duration, error](d)
}

func stringToVersion(s string) fallible.OrJust[semver.Version, error] {
	v, err := semver.NewVersion(s)
	if err != nil {
		return fallible.Wrap(fallible.Failure[semver.Version, error](InvalidValueError{Kind: KindVersion, Input: s, Cause: err}))
	}
	return fallible.Just[semver.Version, error](*v)
}

func numberToString(f float64) fallible.OrJust[string, error] {
	return fallible.Just[string, error](strconv.FormatFloat(f, 'f', -1, 64))
}

func numberToBool(f float64) fallible.OrJust[bool, error] {
	return fallible.Just[bool, error](f != 0)
}

// numbers are interpreted as seconds
func numberToDuration(f float64) fallible.OrJust[time.Duration, error] {
	ns := f * float64(time.Second)
	if math.IsNaN(ns) || ns >= math.MaxInt64 || ns < math.MinInt64 {
		return fallible.Wrap(fallible.Failure[time.Duration, error](InvalidValueError{
			Kind:  KindDuration,
			Input: strconv.FormatFloat(f, 'g', -1, 64),
			Cause: ErrDurationOutOfRange,
		}))
	}
	return fallible.Just[time.Duration, error](time.Duration(ns))
}

func numberToVersion(f float64) fallible.OrJust[semver.Version, error] {
	return stringToVersion(strconv.FormatFloat(f, 'f', -1, 64))
}

func boolToString(b bool) fallible.OrJust[string, error] {
	return fallible.Just[string, error](strconv.FormatBool(b))
}

func boolToNumber(b bool) fallible.OrJust[float64, error] {
	if b {
		return fallible.Just[float64, error](1)
	}
	return fallible.Just[float64, error](0)
}

func durationToString(d time.Duration) fallible.OrJust[string, error] {
	return fallible.Just[string, error](d.String())
}

func durationToNumber(d time.Duration) fallible.OrJust[float64, error] {
	return fallible.Just[float64, error](d.Seconds())
}

func versionToString(v semver.Version) fallible.OrJust[string, error] {
	return fallible.Just[string, error](v.String())
}
