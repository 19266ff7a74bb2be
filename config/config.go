// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/z5labs/fallible"
	"github.com/z5labs/fallible/env"
	"github.com/z5labs/fallible/parser"

	"github.com/go-viper/mapstructure/v2"
)

// Store represents a general nested key value structure.
type Store interface {
	Set(path []string, v any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the values applied by every Source.
type Manager struct {
	store Map
}

// Read applies each source to a new Manager.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	m := &Manager{
		store: store,
	}
	return m, nil
}

type unmarshalOptions struct {
	hook mapstructure.DecodeHookFunc
}

// UnmarshalOption configures Manager.Unmarshal.
type UnmarshalOption func(*unmarshalOptions)

// WithParser coerces config values into struct fields whose type is
// a representation declared by p. params supplies the parameters
// passed to the case of each pair.
func WithParser[R comparable](p *parser.Parser[R], params map[parser.Pair[R]]any) UnmarshalOption {
	return func(uo *unmarshalOptions) {
		uo.hook = parserHookFunc(p, params)
	}
}

// Unmarshal decodes the config values into v which must be a pointer
// to a struct or map. Struct fields are matched by their "config" tag.
//
// Unless configured otherwise, fields of a type declared by [env.Parser]
// are coerced through it, with numbers parsed as floats. Integer values
// are coerced as numbers.
func (m *Manager) Unmarshal(v any, opts ...UnmarshalOption) error {
	uo := &unmarshalOptions{
		hook: parserHookFunc(env.Parser(), map[parser.Pair[env.Kind]]any{
			{From: env.KindString, To: env.KindNumber}: env.NumberParams{Precision: env.PrecisionFloat},
		}),
	}
	for _, opt := range opts {
		opt(uo)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			uo.hook,
			textUnmarshalerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(m.store))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	From  reflect.Type
	To    reflect.Type
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		if !f.IsValid() {
			return nil, nil
		}
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if errors.Is(err, errInvalidDecodeCondition) {
				continue
			}
			return nil, TypeCoercionError{
				From:  f.Type(),
				To:    t.Type(),
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func parserHookFunc[R comparable](p *parser.Parser[R], params map[parser.Pair[R]]any) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		to, ok := p.Lookup(t.Type())
		if !ok {
			return nil, errInvalidDecodeCondition
		}

		v := f.Interface()
		from, ok := p.Classify(v)
		if !ok {
			v = widen(f)
			from, ok = p.Classify(v)
		}
		if !ok || from == to {
			return nil, errInvalidDecodeCondition
		}
		pair := parser.Pair[R]{From: from, To: to}
		return fallible.Result(p.ParseWith(v, to, params[pair]))
	}
}

// widen returns unclassified integers as float64 since decoders
// such as yaml produce int where JSON produces float64.
func widen(f reflect.Value) any {
	switch {
	case f.CanInt():
		return float64(f.Int())
	case f.CanUint():
		return float64(f.Uint())
	default:
		return f.Interface()
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(reflect.ValueOf(data).String()))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}
