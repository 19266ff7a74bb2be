// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	environ   func() []string
	prefix    string
	separator string
}

// EnvOption configures an Env source.
type EnvOption func(*Env)

// WithPrefix only applies variables starting with prefix.
// The prefix is removed from the applied key.
func WithPrefix(prefix string) EnvOption {
	return func(e *Env) {
		e.prefix = prefix
	}
}

// WithSeparator nests variables by splitting their
// names on sep, e.g. DB__HOST sets db.host with "__".
func WithSeparator(sep string) EnvOption {
	return func(e *Env) {
		e.separator = sep
	}
}

// FromEnv returns a Source which will apply its config
// from the environment variables available to the
// current process.
func FromEnv(opts ...EnvOption) Env {
	e := Env{
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		k, ok = strings.CutPrefix(k, src.prefix)
		if !ok || k == "" {
			continue
		}

		path := []string{k}
		if src.separator != "" {
			path = strings.Split(k, src.separator)
		}

		err := store.Set(path, v)
		if err != nil {
			return err
		}
	}
	return nil
}
