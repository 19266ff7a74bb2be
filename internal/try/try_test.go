// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func TestRecover(t *testing.T) {
	t.Run("will set the error", func(t *testing.T) {
		t.Run("if a panic occurs", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				panic("boom")
			}

			err := f()

			var perr PanicError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, "boom", perr.Value)
			require.Nil(t, perr.Unwrap())
			require.Contains(t, string(perr.Stack), "TestRecover")
		})

		t.Run("if a panic occurs with an error value", func(t *testing.T) {
			panicErr := errors.New("boom")
			f := func() (err error) {
				defer Recover(&err)
				panic(panicErr)
			}

			require.ErrorIs(t, f(), panicErr)
		})
	})

	t.Run("will not change the error", func(t *testing.T) {
		t.Run("if no panic occurs", func(t *testing.T) {
			retErr := errors.New("failed")
			f := func() (err error) {
				defer Recover(&err)
				return retErr
			}

			require.Equal(t, retErr, f())
		})
	})
}

func TestClose(t *testing.T) {
	t.Run("will return a CloseError", func(t *testing.T) {
		t.Run("if closing fails", func(t *testing.T) {
			closeErr := errors.New("failed to close")
			f := func() (err error) {
				defer Close(&err, closerFunc(func() error {
					return closeErr
				}))
				return nil
			}

			err := f()

			var cerr CloseError
			require.ErrorAs(t, err, &cerr)
			require.ErrorIs(t, err, closeErr)
		})
	})

	t.Run("will join the errors", func(t *testing.T) {
		t.Run("if an error is already being returned", func(t *testing.T) {
			retErr := errors.New("failed")
			closeErr := errors.New("failed to close")
			f := func() (err error) {
				defer Close(&err, closerFunc(func() error {
					return closeErr
				}))
				return retErr
			}

			err := f()
			require.ErrorIs(t, err, retErr)
			require.ErrorIs(t, err, closeErr)
		})
	})

	t.Run("will do nothing", func(t *testing.T) {
		t.Run("if the value is not an io.Closer", func(t *testing.T) {
			f := func() (err error) {
				defer Close(&err, "not a closer")
				return nil
			}

			require.NoError(t, f())
		})
	})
}
