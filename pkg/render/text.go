package render

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/capfig/pkg/geom"
)

// Sans is the typeface used for all figure text.
var Sans = font.Font{Typeface: "Liberation", Variant: "Sans"}

// Font returns the sans face at size, bold if requested.
func Font(size vg.Length, bold bool) font.Font {
	f := Sans
	if bold {
		f.Weight = xfont.WeightBold
	}
	return font.From(f, size)
}

// TextStyle returns a centered text style.
func TextStyle(size vg.Length, clr color.Color, bold bool) text.Style {
	return text.Style{
		Color:   clr,
		Font:    Font(size, bold),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// Theme applies the figure typography to p: a bold title, bold axis labels
// and sans tick labels.
func Theme(p *plot.Plot, title string) {
	p.Title.Text = title
	p.Title.TextStyle.Font = Font(13, true)
	p.Title.Padding = vg.Points(8)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = Font(12, true)
		ax.Tick.Label.Font = Font(10, false)
	}
}

// Blank hides both axes, leaving a bare drawing area over the given range.
func Blank(p *plot.Plot, r geom.Region) {
	p.HideAxes()
	p.X.Min, p.X.Max = r.XMin, r.XMax
	p.Y.Min, p.Y.Max = r.YMin, r.YMax
}

// Text draws a possibly multi-line string anchored at a data point.
type Text struct {
	At    geom.Point
	Label string
	Style text.Style
	// Rotation in radians.
	Rotation float64
}

// NewText returns a centered Text.
func NewText(at geom.Point, label string, size vg.Length, clr color.Color, bold bool) *Text {
	return &Text{At: at, Label: label, Style: TextStyle(size, clr, bold)}
}

// Left anchors the text at its left edge and returns t.
func (t *Text) Left() *Text {
	t.Style.XAlign = text.XLeft
	return t
}

// Plot implements plot.Plotter.
func (t *Text) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	sty := t.Style
	if sty.Handler == nil {
		sty.Handler = p.TextHandler
	}
	sty.Rotation = t.Rotation
	c.FillText(sty, vg.Point{X: trX(t.At.X), Y: trY(t.At.Y)}, t.Label)
}
