package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/capfig/pkg/figures"
	"github.com/matzehuels/capfig/pkg/render"
)

// Render encodes a built figure in every format. Formats are encoded one
// after another because drawing a plot normalizes its axes in place.
func Render(ctx context.Context, built *figures.Result, formats []string, dpi int) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := render.Encode(&buf, built.Page, format, render.WithDPI(dpi)); err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = buf.Bytes()
	}
	return artifacts, nil
}
