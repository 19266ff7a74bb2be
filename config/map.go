// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPath is returned when a value is set without a key path.
var ErrEmptyPath = errors.New("config: attempted to set value to an empty key path")

// UnexpectedKeyValueTypeError represents the situation when
// a source tries nesting a value under a key which already
// holds a non-map value.
type UnexpectedKeyValueTypeError struct {
	Key          string
	ExpectedType string
}

// Error implements the error interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("expected key value to be a %s: %s", e.ExpectedType, e.Key)
}

// Map is a nested in-memory Store. It is also a Source
// which applies each of its leaf values to another Store.
type Map map[string]any

// Set implements the Store interface.
func (m Map) Set(path []string, v any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	cur := map[string]any(m)
	for i, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			sub := make(map[string]any)
			cur[k] = sub
			cur = sub
			continue
		}

		sub, ok := asMap(next)
		if !ok {
			return UnexpectedKeyValueTypeError{
				Key:          strings.Join(path[:i+1], "."),
				ExpectedType: "map[string]any",
			}
		}
		cur = sub
	}

	cur[path[len(path)-1]] = v
	return nil
}

// Apply implements the Source interface.
func (m Map) Apply(store Store) error {
	return apply(store, nil, m)
}

func apply(store Store, prefix []string, m map[string]any) error {
	for k, v := range m {
		path := append(prefix[:len(prefix):len(prefix)], k)

		sub, ok := asMap(v)
		if ok {
			err := apply(store, path, sub)
			if err != nil {
				return err
			}
			continue
		}

		err := store.Set(path, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Map:
		return x, true
	default:
		return nil, false
	}
}
