package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/packing"
)

// ReadJSON decodes a JSON packing from r.
//
// The document must carry an id and the packer parameters; see the package
// documentation for the format. The centers are checked against min_dist
// and attempts exactly as [packing.Restore] does.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*packing.Packing, Meta, error) {
	var data document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, Meta{}, fmt.Errorf("decode: %w", err)
	}
	if data.ID == uuid.Nil {
		return nil, Meta{}, errors.New(errors.ErrCodeInvalidInput, "packing has no id")
	}
	meta := Meta{ID: data.ID, Mode: data.Mode, Seed: data.Seed}

	p, err := packing.Restore(data.Centers, data.Radius, data.MinDist, data.Attempts)
	if err != nil {
		return nil, meta, fmt.Errorf("packing %s: %w", data.ID, err)
	}
	return p, meta, nil
}

// ImportJSON reads a JSON file at path and returns the decoded packing.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*packing.Packing, Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
