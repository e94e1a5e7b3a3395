// Package records reads and writes record collections for sorting.
//
// Two formats are supported. JSON files hold a top-level array of objects:
//
//	[
//	  {"id": "app", "depends": "lib"},
//	  {"id": "lib", "weight": -10}
//	]
//
// TOML files hold an array of tables named "records":
//
//	[[records]]
//	id = "app"
//	depends = "lib"
//
//	[[records]]
//	id = "lib"
//	weight = -10
//
// Field names are not interpreted here - the sorter's options decide which
// keys carry id, weight and dependency data.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Format identifies a record file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned by [Load] when the file extension does not
// map to a supported format.
var ErrUnknownFormat = errors.New("unknown record format")

// tomlFile is the wrapper shape for TOML input, which cannot express a
// top-level array.
type tomlFile struct {
	Records []map[string]any `toml:"records"`
}

// Read decodes a record collection from r in the given format.
// Records come back as []any of map[string]any values, the shape the sorter
// reads field data from.
func Read(r io.Reader, format Format) ([]any, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Load reads a record file, selecting the format from the file extension
// (.json or .toml).
func Load(path string) ([]any, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	recs, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func readJSON(r io.Reader) ([]any, error) {
	var recs []any
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return recs, nil
}

func readTOML(r io.Reader) ([]any, error) {
	var file tomlFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	recs := make([]any, len(file.Records))
	for i, rec := range file.Records {
		recs[i] = rec
	}
	return recs, nil
}

// Write encodes records as indented JSON, the only output format.
func Write(recs []any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Save writes records to a JSON file at path.
func Save(recs []any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(recs, f)
}
