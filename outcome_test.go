// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fallible

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome_IsSuccess(t *testing.T) {
	testCases := []struct {
		name      string
		outcome   Outcome[int, string]
		isSuccess bool
	}{
		{
			name:      "success",
			outcome:   Success[int, string](42),
			isSuccess: true,
		},
		{
			name:      "success with zero value",
			outcome:   Success[int, string](0),
			isSuccess: true,
		},
		{
			name:      "failure",
			outcome:   Failure[int]("boom"),
			isSuccess: false,
		},
		{
			name:      "zero value outcome",
			outcome:   Outcome[int, string]{},
			isSuccess: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.isSuccess, tc.outcome.IsSuccess())
			require.Equal(t, !tc.isSuccess, tc.outcome.IsFailure())
		})
	}
}

func TestOutcome_Success(t *testing.T) {
	t.Run("will return the success value", func(t *testing.T) {
		t.Run("if the outcome is a success", func(t *testing.T) {
			v, ok := Success[string, error]("hello").Success()
			require.True(t, ok)
			require.Equal(t, "hello", v)
		})
	})

	t.Run("will return the zero value", func(t *testing.T) {
		t.Run("if the outcome is a failure", func(t *testing.T) {
			v, ok := Failure[string](errors.New("failed")).Success()
			require.False(t, ok)
			require.Zero(t, v)
		})
	})
}

func TestOutcome_Failure(t *testing.T) {
	t.Run("will return the failure value", func(t *testing.T) {
		t.Run("if the outcome is a failure", func(t *testing.T) {
			ferr := errors.New("failed")
			v, ok := Failure[string](ferr).Failure()
			require.True(t, ok)
			require.Equal(t, ferr, v)
		})

		t.Run("even if the failure value is nil", func(t *testing.T) {
			v, ok := Failure[string, error](nil).Failure()
			require.True(t, ok)
			require.Nil(t, v)
		})
	})

	t.Run("will return the zero value", func(t *testing.T) {
		t.Run("if the outcome is a success", func(t *testing.T) {
			v, ok := Success[string, error]("hello").Failure()
			require.False(t, ok)
			require.Nil(t, v)
		})
	})
}

func TestMust(t *testing.T) {
	t.Run("will return the success value", func(t *testing.T) {
		for _, n := range []int{-1, 0, 1, 1234} {
			require.Equal(t, n, Must(Success[int, string](n)))
			require.Equal(t, n, Success[int, string](n).Must())
		}
	})

	t.Run("will panic with a FailureError", func(t *testing.T) {
		t.Run("if the outcome is a failure", func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)

				ferr, ok := r.(FailureError)
				require.True(t, ok)
				require.Equal(t, "boom", ferr.Value)
				require.Contains(t, ferr.Error(), "unexpected failure")
			}()

			Must(Failure[int]("boom"))
		})

		t.Run("even if the failure value is nil", func(t *testing.T) {
			require.Panics(t, func() {
				Failure[int, error](nil).Must()
			})
		})
	})
}

func TestOutcome_Or(t *testing.T) {
	require.Equal(t, 1, Success[int, string](1).Or(2))
	require.Equal(t, 2, Failure[int]("nope").Or(2))
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "Success(1)", Success[int, string](1).String())
	require.Equal(t, "Failure(nope)", Failure[int]("nope").String())
}

func TestMap(t *testing.T) {
	t.Run("will transform the success value", func(t *testing.T) {
		o := Map(Success[int, error](12), strconv.Itoa)

		v, ok := o.Success()
		require.True(t, ok)
		require.Equal(t, "12", v)
	})

	t.Run("will not call the function", func(t *testing.T) {
		t.Run("if the outcome is a failure", func(t *testing.T) {
			ferr := errors.New("failed")
			o := Map(Failure[int](ferr), func(n int) string {
				t.Fatal("should not be called")
				return ""
			})

			v, ok := o.Failure()
			require.True(t, ok)
			require.Equal(t, ferr, v)
		})
	})
}

func TestBind(t *testing.T) {
	atoi := func(s string) Outcome[int, error] {
		n, err := strconv.Atoi(s)
		return FromResult(n, err)
	}

	testCases := []struct {
		name      string
		outcome   Outcome[string, error]
		isSuccess bool
		expected  int
	}{
		{
			name:      "success chained into success",
			outcome:   Success[string, error]("42"),
			isSuccess: true,
			expected:  42,
		},
		{
			name:    "success chained into failure",
			outcome: Success[string, error]("forty two"),
		},
		{
			name:    "failure is propagated",
			outcome: Failure[string](errors.New("failed")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := Bind(tc.outcome, atoi)
			require.Equal(t, tc.isSuccess, o.IsSuccess())
			if tc.isSuccess {
				require.Equal(t, tc.expected, o.Must())
			}
		})
	}
}

func TestResult(t *testing.T) {
	t.Run("will return a nil error", func(t *testing.T) {
		t.Run("if the outcome is a success", func(t *testing.T) {
			v, err := Result(Success[int, string](7))
			require.NoError(t, err)
			require.Equal(t, 7, v)
		})
	})

	t.Run("will return the failure value as the error", func(t *testing.T) {
		t.Run("if the failure value is an error", func(t *testing.T) {
			ferr := errors.New("failed")
			_, err := Result(Failure[int](ferr))
			require.Equal(t, ferr, err)
		})
	})

	t.Run("will return a FailureError", func(t *testing.T) {
		t.Run("if the failure value is not an error", func(t *testing.T) {
			_, err := Result(Failure[int]("nope"))

			var ferr FailureError
			require.ErrorAs(t, err, &ferr)
			require.Equal(t, "nope", ferr.Value)
		})

		t.Run("if the failure value is a nil error", func(t *testing.T) {
			_, err := Result(Failure[int, error](nil))

			var ferr FailureError
			require.ErrorAs(t, err, &ferr)
			require.Nil(t, ferr.Value)
		})
	})
}

func TestFromResult(t *testing.T) {
	n, err := strconv.Atoi("12")
	o := FromResult(n, err)
	require.True(t, o.IsSuccess())
	require.Equal(t, 12, o.Must())

	n, err = strconv.Atoi("twelve")
	o = FromResult(n, err)
	require.True(t, o.IsFailure())

	ferr, _ := o.Failure()
	require.ErrorIs(t, ferr, strconv.ErrSyntax)
}
