// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/z5labs/fallible/internal/try"

	"gopkg.in/yaml.v3"
)

// Format names the encoding of a config document.
type Format string

const (
	FormatYaml Format = "yaml"
	FormatJson Format = "json"
)

// UnknownFormatError occurs when a file extension maps to no Format.
type UnknownFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown config format for file: %s", e.Path)
}

// FormatOf returns the Format of path based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYaml, nil
	case ".json":
		return FormatJson, nil
	default:
		return "", UnknownFormatError{Path: path}
	}
}

// InvalidDocumentError occurs if a document can not be decoded in its Format.
// Name is set when the document was read from a named file.
type InvalidDocumentError struct {
	Format Format
	Name   string
	Cause  error
}

// Error implements the error interface.
func (e InvalidDocumentError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
	}
	return fmt.Sprintf("invalid %s in %s: %s", e.Format, e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// Document represents a Source whose values are decoded from
// a YAML or JSON document.
type Document struct {
	r      io.Reader
	format Format
}

// FromYaml returns a source which will apply its config
// from YAML values parsed from the given io.Reader.
func FromYaml(r io.Reader) Document {
	return Document{r: r, format: FormatYaml}
}

// FromJson returns a source which will apply its config
// from JSON values parsed from the given io.Reader.
func FromJson(r io.Reader) Document {
	return Document{r: r, format: FormatJson}
}

// FromFile returns a source reading path from fsys in the
// Format given by its extension. The file is opened by Apply.
func FromFile(fsys fs.FS, path string) (Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	return Document{r: NewFileReader(fsys, path), format: format}, nil
}

// Apply implements the Source interface.
func (src Document) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	switch src.format {
	case FormatJson:
		err = json.Unmarshal(b, &m)
	default:
		err = yaml.Unmarshal(b, &m)
	}
	if err != nil {
		return InvalidDocumentError{
			Format: src.format,
			Name:   nameOf(src.r),
			Cause:  err,
		}
	}
	return Map(m).Apply(store)
}

func nameOf(r io.Reader) string {
	n, ok := r.(interface{ Name() string })
	if !ok {
		return ""
	}
	return n.Name()
}
