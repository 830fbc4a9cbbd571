package render

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/capfig/pkg/errors"
)

// Output formats.
const (
	PNG = "png"
	SVG = "svg"
	PDF = "pdf"
)

// Formats lists the supported output formats.
var Formats = []string{PNG, SVG, PDF}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case PNG:
		return "image/png"
	case SVG:
		return "image/svg+xml"
	case PDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// ParseFormats splits a comma-separated list, dropping blanks and
// duplicates. Every entry must be a supported format.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if !slices.Contains(Formats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", f, strings.Join(Formats, ", "))
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// Figure is a grid of panels drawn onto one page.
type Figure struct {
	// Panels is indexed [row][column]. Every row must have the same length.
	Panels        [][]*plot.Plot
	Width, Height vg.Length
	// EqualAspect widens each panel's shorter axis range at draw time so one
	// data unit spans the same length on both axes. Circles then stay round.
	EqualAspect bool
}

// Validate checks the panel grid and page size.
func (f Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %v x %v", f.Width, f.Height)
	}
	if len(f.Panels) == 0 || len(f.Panels[0]) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure has no panels")
	}
	cols := len(f.Panels[0])
	for i, row := range f.Panels {
		if len(row) != cols {
			return errors.New(errors.ErrCodeInvalidInput, "panel row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, p := range row {
			if p == nil {
				return errors.New(errors.ErrCodeInvalidInput, "panel (%d, %d) is nil", i, j)
			}
		}
	}
	return nil
}

// Option configures Encode.
type Option func(*encoder)

type encoder struct {
	dpi        int
	pad        vg.Length
	background color.Color
}

// WithDPI sets the raster resolution used for PNG output (default 300).
func WithDPI(dpi int) Option {
	return func(e *encoder) { e.dpi = dpi }
}

// WithPadding sets the padding around and between panels.
func WithPadding(pad vg.Length) Option {
	return func(e *encoder) { e.pad = pad }
}

// WithBackground sets the page background color (default white).
func WithBackground(c color.Color) Option {
	return func(e *encoder) { e.background = c }
}

// Encode draws the figure and writes it to w in the given format.
func Encode(w io.Writer, f Figure, format string, opts ...Option) error {
	if err := f.Validate(); err != nil {
		return err
	}
	e := encoder{dpi: 300, pad: vg.Points(10), background: color.White}
	for _, opt := range opts {
		opt(&e)
	}
	if e.dpi <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must be positive, got %d", e.dpi)
	}

	var c vg.CanvasWriterTo
	switch format {
	case PNG:
		img := vgimg.NewWith(
			vgimg.UseWH(f.Width, f.Height),
			vgimg.UseDPI(e.dpi),
			vgimg.UseBackgroundColor(e.background),
		)
		c = vgimg.PngCanvas{Canvas: img}
	case SVG:
		c = vgsvg.New(f.Width, f.Height)
	case PDF:
		c = vgpdf.New(f.Width, f.Height)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}

	dc := draw.New(c)
	if format != PNG {
		dc.SetColor(e.background)
		dc.Fill(dc.Rectangle.Path())
	}
	f.draw(dc, e.pad)

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

func (f Figure) draw(dc draw.Canvas, pad vg.Length) {
	tiles := draw.Tiles{
		Rows:      len(f.Panels),
		Cols:      len(f.Panels[0]),
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      2 * pad,
		PadY:      2 * pad,
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for i, row := range f.Panels {
		for j, p := range row {
			if f.EqualAspect {
				equalAspect(p, canvases[i][j])
			}
			p.Draw(canvases[i][j])
		}
	}
}

// equalAspect pads the axis ranges of p, keeping them centered, until their
// ratio matches the data area of c. Repeated calls are no-ops.
func equalAspect(p *plot.Plot, c draw.Canvas) {
	da := p.DataCanvas(c)
	w, h := da.Max.X-da.Min.X, da.Max.Y-da.Min.Y
	dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	if w <= 0 || h <= 0 || dx <= 0 || dy <= 0 {
		return
	}
	want := float64(w / h)
	if dx/dy < want {
		pad := (dy*want - dx) / 2
		p.X.Min, p.X.Max = p.X.Min-pad, p.X.Max+pad
	} else {
		pad := (dx/want - dy) / 2
		p.Y.Min, p.Y.Max = p.Y.Min-pad, p.Y.Max+pad
	}
}
