// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Decode reads a File. Unknown fields are rejected so typos surface.
func Decode(r io.Reader, format Format) (File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, errors.Wrap(err, "dataset: decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, errors.Wrap(err, "dataset: decode json")
		}
	default:
		return File{}, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return f, nil
}

// Encode writes f.
func Encode(w io.Writer, format Format, f File) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return errors.Wrap(err, "dataset: encode yaml")
		}
		return errors.Wrap(enc.Close(), "dataset: encode yaml")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(f), "dataset: encode json")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// ReadFile decodes the file at path, choosing the format by extension.
func ReadFile(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer fh.Close()
	return Decode(fh, format)
}

// WriteFile encodes f to path, choosing the format by extension.
func WriteFile(path string, f File) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: create %s", path)
	}
	if err := Encode(fh, format, f); err != nil {
		fh.Close()
		return err
	}
	return errors.Wrapf(fh.Close(), "dataset: close %s", path)
}
