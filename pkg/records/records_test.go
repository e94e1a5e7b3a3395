package records

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_JSON(t *testing.T) {
	input := `[{"id": "a", "weight": -1, "depends": ["b"]}, {"id": "b"}]`

	recs, err := Read(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	first, ok := recs[0].(map[string]any)
	if !ok {
		t.Fatalf("record is %T, want map", recs[0])
	}
	if first["id"] != "a" || first["weight"] != -1.0 {
		t.Errorf("record = %v", first)
	}
}

func TestRead_TOML(t *testing.T) {
	input := `
[[records]]
id = "a"
weight = -1
depends = ["b"]

[[records]]
id = "b"
`

	recs, err := Read(strings.NewReader(input), FormatTOML)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	first := recs[0].(map[string]any)
	if first["id"] != "a" {
		t.Errorf(`record["id"] = %v, want a`, first["id"])
	}
	if w, ok := first["weight"].(int64); !ok || w != -1 {
		t.Errorf(`record["weight"] = %v (%T), want int64 -1`, first["weight"], first["weight"])
	}
}

func TestRead_UnknownFormat(t *testing.T) {
	_, err := Read(strings.NewReader(""), Format("yaml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoad_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "recs.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"id": "a"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("got %d records, want 1", len(recs))
	}

	if _, err := Load(filepath.Join(dir, "recs.csv")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(csv) error = %v, want ErrUnknownFormat", err)
	}
}

func TestWrite(t *testing.T) {
	recs := []any{map[string]any{"id": "a"}}

	var buf bytes.Buffer
	if err := Write(recs, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("re-read error = %v", err)
	}
	if len(got) != 1 || got[0].(map[string]any)["id"] != "a" {
		t.Errorf("round trip = %v", got)
	}
}
