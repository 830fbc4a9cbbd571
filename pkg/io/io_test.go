package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
)

func uniformPacking(t *testing.T) *packing.Packing {
	t.Helper()
	p, err := packing.Pack(packing.NewSource(2024), packing.Options{
		Attempts:      2000,
		Radius:        0.11,
		MinDistFactor: 1.5,
		Region:        geom.UnitSquare,
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	p := uniformPacking(t)

	var buf bytes.Buffer
	meta, err := WriteJSON(p, Meta{Mode: "uniform", Seed: 2024}, &buf)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if meta.ID == uuid.Nil {
		t.Error("WriteJSON should assign an id")
	}

	got, gotMeta, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(meta, gotMeta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Centers(), got.Centers()); diff != "" {
		t.Errorf("centers mismatch (-want +got):\n%s", diff)
	}
	if got.Radius() != p.Radius() || got.MinDist() != p.MinDist() || got.Attempts() != p.Attempts() {
		t.Errorf("parameters changed: got r=%g d=%g n=%d", got.Radius(), got.MinDist(), got.Attempts())
	}
}

func TestWriteJSONKeepsID(t *testing.T) {
	id := uuid.MustParse("5f1c6a0e-4a8e-4c1e-9f55-0d3c2b1a9e77")
	var buf bytes.Buffer
	if _, err := WriteJSON(uniformPacking(t), Meta{ID: id}, &buf); err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if raw["id"] != id.String() {
		t.Errorf("id = %v, want %s", raw["id"], id)
	}
	for _, key := range []string{"radius", "min_dist", "attempts", "centers"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if _, ok := raw["seed"]; ok {
		t.Error("zero seed should be omitted")
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	p, err := packing.Restore(nil, 0.1, 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := WriteJSON(p, Meta{}, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"centers": []`) {
		t.Errorf("empty packing should encode an empty array:\n%s", buf.String())
	}
}

func TestReadJSONErrors(t *testing.T) {
	const id = `"5f1c6a0e-4a8e-4c1e-9f55-0d3c2b1a9e77"`
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"id":`, ""},
		{"unknown field", `{"id":` + id + `,"radius":0.1,"min_dist":0.1,"attempts":1,"centers":[],"extra":1}`, ""},
		{"bad id", `{"id":"nope","radius":0.1,"min_dist":0.1,"attempts":1,"centers":[]}`, ""},
		{"missing id", `{"radius":0.1,"min_dist":0.1,"attempts":1,"centers":[]}`, errors.ErrCodeInvalidInput},
		{"zero radius", `{"id":` + id + `,"radius":0,"min_dist":0.1,"attempts":1,"centers":[]}`, errors.ErrCodeInvalidInput},
		{"too close", `{"id":` + id + `,"radius":0.1,"min_dist":0.2,"attempts":2,"centers":[{"x":0.5,"y":0.5},{"x":0.6,"y":0.5}]}`, errors.ErrCodeInvalidInput},
		{"too few attempts", `{"id":` + id + `,"radius":0.1,"min_dist":0.1,"attempts":1,"centers":[{"x":0.2,"y":0.2},{"x":0.8,"y":0.8}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.code != "" && !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packing.json")
	p := uniformPacking(t)
	meta, err := ExportJSON(p, Meta{Seed: 2024}, path)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, gotMeta, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if gotMeta.ID != meta.ID || got.Len() != p.Len() {
		t.Errorf("import mismatch: id %s/%s, len %d/%d", gotMeta.ID, meta.ID, got.Len(), p.Len())
	}

	if _, _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of a missing file should fail")
	}
}
