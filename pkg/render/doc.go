// Package render draws figure panels with gonum/plot and encodes them as
// PNG, SVG or PDF.
//
// # Overview
//
// A figure is a grid of [plot.Plot] panels. Figure builders fill each panel
// with standard gonum plotters (lines, scatter points, grids) plus the
// schematic plotters defined here, all positioned in data coordinates:
//
//   - [Circle]: filled and/or outlined disk
//   - [Disks]: many disks of one radius, e.g. a packing
//   - [Box]: rounded box with a title and an optional subtitle
//   - [Arrow]: straight or bent arrow, or a |-| separation bar
//   - [Frame]: rectangle outline
//   - [Band]: filled region between two curves where a predicate holds
//   - [Text]: multi-line text anchored at a point
//
// Circles and boxes are drawn as polygons in data space, so they follow the
// panel's aspect ratio. Set [Figure.EqualAspect] when shapes must look round.
//
// # Encoding
//
// [Encode] lays the panels out with [plot.Align] and writes the requested
// format:
//
//	fig := render.Figure{
//	    Panels: [][]*plot.Plot{{left, right}},
//	    Width:  12 * vg.Inch,
//	    Height: 5.5 * vg.Inch,
//	}
//	err := render.Encode(w, fig, render.PNG, render.WithDPI(300))
//
// PNG uses vgimg at the configured DPI on a white background. SVG and PDF
// are vector formats and ignore DPI.
package render
