package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
)

// Meta is the descriptive part of an exported packing.
type Meta struct {
	// ID identifies the export. A zero ID is replaced by a new random one.
	ID   uuid.UUID
	Mode string
	Seed uint64
}

type document struct {
	ID       uuid.UUID    `json:"id"`
	Mode     string       `json:"mode,omitempty"`
	Seed     uint64       `json:"seed,omitempty"`
	Radius   float64      `json:"radius"`
	MinDist  float64      `json:"min_dist"`
	Attempts int          `json:"attempts"`
	Centers  []geom.Point `json:"centers"`
}

// WriteJSON encodes a packing as JSON and writes it to w. It returns the
// meta actually written, with the ID filled in.
func WriteJSON(p *packing.Packing, meta Meta, w io.Writer) (Meta, error) {
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	out := document{
		ID:       meta.ID,
		Mode:     meta.Mode,
		Seed:     meta.Seed,
		Radius:   p.Radius(),
		MinDist:  p.MinDist(),
		Attempts: p.Attempts(),
		Centers:  p.Centers(),
	}
	if out.Centers == nil {
		out.Centers = []geom.Point{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return meta, fmt.Errorf("encode: %w", err)
	}
	return meta, nil
}

// ExportJSON writes a packing to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *packing.Packing, meta Meta, path string) (Meta, error) {
	f, err := os.Create(path)
	if err != nil {
		return meta, fmt.Errorf("create %s: %w", path, err)
	}
	meta, err = WriteJSON(p, meta, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	return meta, err
}
