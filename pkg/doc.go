// Package pkg provides the core libraries for capfig, the figure generator for
// the hippocampal memory capacity manuscript.
//
// # Overview
//
// capfig turns a handful of closed-form capacity models and a random disk
// packer into four publication figures. The pkg directory is organized into
// three areas:
//
//  1. Models - [capacity] curves and [packing] runs, over [geom] primitives
//  2. Drawing - [render] primitives and the [figures] registry
//  3. Orchestration - [pipeline], [cache], [config] and [io]
//
// # Architecture
//
// The typical data flow:
//
//	TOML configuration
//	         ↓
//	    [config] package (defaults + overrides, validated)
//	         ↓
//	    [capacity] / [packing] packages (curves, crossing, disk packings)
//	         ↓
//	    [figures] package (gonum/plot panels per figure)
//	         ↓
//	    [render] package (PNG/SVG/PDF encoding)
//
// [pipeline] runs the last three stages behind the [cache].
//
// # Quick Start
//
// Render the packing figure as PDF:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Request{
//	    Figure:  "fig3",
//	    Formats: []string{"pdf"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("fig3.pdf", res.Artifacts["pdf"], 0o644)
//
// Pack disks directly:
//
//	p, err := packing.Pack(packing.NewSource(2024), packing.Options{
//	    Attempts:      2000,
//	    Radius:        0.11,
//	    MinDistFactor: 1.5,
//	    Region:        geom.UnitSquare,
//	})
//
// # Main Packages
//
// [geom] - Points and axis-aligned regions.
//
// [capacity] - Log-capacity models, the N_c crossing search, the reserve
// (supply/demand) model and the semantic overlap model.
//
// [packing] - Random sequential disk packing with uniform or Gaussian
// candidates, an exhaustive or grid neighbour index, and concurrent
// multi-cluster packing.
//
// [render] - Palette, shapes, arrows and text on top of gonum/plot, plus the
// multi-panel figure encoder.
//
// [figures] - The figure registry and one builder per figure.
//
// [pipeline] - Build and render with artifact caching.
//
// [cache] - Cache interface with file and no-op backends and key derivation.
//
// [io] - JSON import/export for packings.
//
// [observability] - Hooks for pipeline, packing and cache events.
//
// [errors] - Error codes and parameter validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/packing/...   # Specific package
//	go test -run Example ./...  # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/geom
// [capacity]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/capacity
// [packing]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/packing
// [render]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/render
// [figures]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/figures
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/capfig/pkg/errors
package pkg
