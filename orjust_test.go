// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fallible

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// pair looks like the boolean led tuple some languages use to encode
// outcomes. It must still be treated as a plain success value.
type pair struct {
	First  bool
	Second any
}

func TestOrJust_IsJust(t *testing.T) {
	testCases := []struct {
		name   string
		orJust OrJust[any, error]
		isJust bool
	}{
		{
			name:   "bare int",
			orJust: Just[any, error](5),
			isJust: true,
		},
		{
			name:   "bare nil",
			orJust: Just[any, error](nil),
			isJust: true,
		},
		{
			name:   "bare boolean led pair",
			orJust: Just[any, error](pair{First: true, Second: 1}),
			isJust: true,
		},
		{
			name:   "bare boolean led slice",
			orJust: Just[any, error]([]any{false, "x"}),
			isJust: true,
		},
		{
			name:   "bare outcome of another type",
			orJust: Just[any, error](Failure[int]("x")),
			isJust: true,
		},
		{
			name:   "wrapped success",
			orJust: Wrap(Success[any, error](5)),
			isJust: false,
		},
		{
			name:   "wrapped failure",
			orJust: Wrap(Failure[any](errors.New("failed"))),
			isJust: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.isJust, tc.orJust.IsJust())
			require.Equal(t, !tc.isJust, tc.orJust.IsOutcome())
		})
	}
}

func TestOrJust_Outcome(t *testing.T) {
	o := Success[int, error](1)

	got, ok := Wrap(o).Outcome()
	require.True(t, ok)
	require.Equal(t, o, got)

	_, ok = Just[int, error](1).Outcome()
	require.False(t, ok)
}

func TestOrJust_Just(t *testing.T) {
	v, ok := Just[int, error](3).Just()
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok = Wrap(Success[int, error](3)).Just()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestEnsureWrapped(t *testing.T) {
	t.Run("will return the outcome unchanged", func(t *testing.T) {
		ferr := errors.New("failed")
		outcomes := []Outcome[int, error]{
			Success[int, error](0),
			Success[int, error](1234),
			Failure[int](ferr),
			Failure[int, error](nil),
		}
		for _, o := range outcomes {
			require.Equal(t, o, EnsureWrapped(Wrap(o)))
			require.Equal(t, o, Wrap(o).EnsureWrapped())
		}
	})

	t.Run("will wrap a bare value as a success", func(t *testing.T) {
		values := []any{0, "", 1234, pair{First: false, Second: "x"}, []any{true, 1}}
		for _, v := range values {
			require.Equal(t, Success[any, error](v), EnsureWrapped(Just[any, error](v)))
		}
	})
}

func TestFromAny(t *testing.T) {
	testCases := []struct {
		name      string
		value     any
		ok        bool
		isOutcome bool
	}{
		{
			name:  "bare success value",
			value: "hello",
			ok:    true,
		},
		{
			name:      "outcome",
			value:     Success[string, error]("hello"),
			ok:        true,
			isOutcome: true,
		},
		{
			name:      "or just holding an outcome",
			value:     Wrap(Failure[string](errors.New("failed"))),
			ok:        true,
			isOutcome: true,
		},
		{
			name:  "or just holding a bare value",
			value: Just[string, error]("hello"),
			ok:    true,
		},
		{
			name:  "value of an unrelated type",
			value: 1,
			ok:    false,
		},
		{
			name:  "outcome with a different failure type",
			value: Success[string, int]("hello"),
			ok:    false,
		},
		{
			name:  "nil",
			value: nil,
			ok:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := FromAny[string, error](tc.value)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			require.Equal(t, tc.isOutcome, v.IsOutcome())
		})
	}
}
