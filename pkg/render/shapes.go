package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/capfig/pkg/geom"
)

// circleSegments is the polygon resolution of a full circle.
const circleSegments = 72

// Dashed is the dash pattern used for outlines.
var Dashed = []vg.Length{vg.Points(5), vg.Points(3)}

// Dotted is the dot pattern used for reference lines.
var Dotted = []vg.Length{vg.Points(1.5), vg.Points(2.5)}

// Stroke returns a solid line style.
func Stroke(clr color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: clr, Width: width}
}

// DashedStroke returns a dashed line style.
func DashedStroke(clr color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: clr, Width: width, Dashes: Dashed}
}

// DottedStroke returns a dotted line style.
func DottedStroke(clr color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: clr, Width: width, Dashes: Dotted}
}

// circlePoints returns the data-space outline of a circle, closed.
func circlePoints(center geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, circleSegments+1)
	for i := range circleSegments {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = geom.Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
	}
	pts[circleSegments] = pts[0]
	return pts
}

func toCanvas(trX, trY func(float64) vg.Length, pts []geom.Point) []vg.Point {
	out := make([]vg.Point, len(pts))
	for i, p := range pts {
		out[i] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}
	return out
}

// fillStroke fills and outlines a closed data-space polygon.
func fillStroke(c draw.Canvas, p *plot.Plot, pts []geom.Point, fill color.Color, line draw.LineStyle) {
	trX, trY := p.Transforms(&c)
	vpts := toCanvas(trX, trY, pts)
	if fill != nil {
		c.FillPolygon(fill, c.ClipPolygonXY(vpts))
	}
	if line.Color != nil && line.Width > 0 {
		c.StrokeLines(line, c.ClipLinesXY(vpts)...)
	}
}

// Circle is a single disk, filled and/or outlined.
type Circle struct {
	Center geom.Point
	Radius float64
	Fill   color.Color // nil for no fill
	Line   draw.LineStyle
}

// Plot implements plot.Plotter.
func (ci *Circle) Plot(c draw.Canvas, p *plot.Plot) {
	fillStroke(c, p, circlePoints(ci.Center, ci.Radius), ci.Fill, ci.Line)
}

// DataRange implements plot.DataRanger.
func (ci *Circle) DataRange() (xmin, xmax, ymin, ymax float64) {
	return ci.Center.X - ci.Radius, ci.Center.X + ci.Radius, ci.Center.Y - ci.Radius, ci.Center.Y + ci.Radius
}

// Disks draws every center as a disk of the same radius. Later disks are
// drawn over earlier ones.
type Disks struct {
	Centers []geom.Point
	Radius  float64
	Fill    color.Color
	Line    draw.LineStyle
}

// NewDisks returns translucent disks with a thin white edge.
func NewDisks(centers []geom.Point, radius float64, clr color.Color) *Disks {
	return &Disks{
		Centers: centers,
		Radius:  radius,
		Fill:    Alpha(clr, 0.6),
		Line:    Stroke(White, vg.Points(0.8)),
	}
}

// Plot implements plot.Plotter.
func (d *Disks) Plot(c draw.Canvas, p *plot.Plot) {
	for _, ctr := range d.Centers {
		fillStroke(c, p, circlePoints(ctr, d.Radius), d.Fill, d.Line)
	}
}

// DataRange implements plot.DataRanger.
func (d *Disks) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(d.Centers) == 0 {
		return 0, 0, 0, 0
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, c := range d.Centers {
		xmin, xmax = min(xmin, c.X-d.Radius), max(xmax, c.X+d.Radius)
		ymin, ymax = min(ymin, c.Y-d.Radius), max(ymax, c.Y+d.Radius)
	}
	return xmin, xmax, ymin, ymax
}

// Frame outlines a rectangle.
type Frame struct {
	Rect geom.Region
	Fill color.Color
	Line draw.LineStyle
}

// Plot implements plot.Plotter.
func (f *Frame) Plot(c draw.Canvas, p *plot.Plot) {
	r := f.Rect
	pts := []geom.Point{
		{X: r.XMin, Y: r.YMin}, {X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax}, {X: r.XMin, Y: r.YMax},
		{X: r.XMin, Y: r.YMin},
	}
	fillStroke(c, p, pts, f.Fill, f.Line)
}

// Box is a rounded box with a bold title and an optional subtitle. Min is
// the lower-left corner of the box body; the rounded border extends Pad
// beyond it on every side.
type Box struct {
	Min           geom.Point
	Width, Height float64
	Pad           float64
	Color         color.Color
	Title         string
	Subtitle      string
}

// NewBox returns a box with the default padding.
func NewBox(corner geom.Point, w, h float64, clr color.Color, title, subtitle string) *Box {
	return &Box{Min: corner, Width: w, Height: h, Pad: 0.04, Color: clr, Title: title, Subtitle: subtitle}
}

// outline returns the rounded border of the box in data space.
func (b *Box) outline() []geom.Point {
	const arcSegments = 8
	x0, y0 := b.Min.X, b.Min.Y
	x1, y1 := x0+b.Width, y0+b.Height
	r := b.Pad
	corners := []struct {
		c     geom.Point
		start float64
	}{
		{geom.Pt(x1, y0), -math.Pi / 2},
		{geom.Pt(x1, y1), 0},
		{geom.Pt(x0, y1), math.Pi / 2},
		{geom.Pt(x0, y0), math.Pi},
	}
	pts := make([]geom.Point, 0, 4*(arcSegments+1)+1)
	for _, k := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := k.start + (math.Pi/2)*float64(i)/arcSegments
			pts = append(pts, geom.Pt(k.c.X+r*math.Cos(a), k.c.Y+r*math.Sin(a)))
		}
	}
	return append(pts, pts[0])
}

// Plot implements plot.Plotter.
func (b *Box) Plot(c draw.Canvas, p *plot.Plot) {
	fillStroke(c, p, b.outline(), Alpha(White, 0.9), Stroke(b.Color, vg.Points(1.5)))

	cx := b.Min.X + b.Width/2
	title := NewText(geom.Pt(cx, b.Min.Y+0.6*b.Height), b.Title, 9, b.Color, true)
	title.Plot(c, p)
	if b.Subtitle != "" {
		sub := NewText(geom.Pt(cx, b.Min.Y+0.25*b.Height), b.Subtitle, 7, Gray, false)
		sub.Plot(c, p)
	}
}

// DataRange implements plot.DataRanger.
func (b *Box) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.Min.X - b.Pad, b.Min.X + b.Width + b.Pad, b.Min.Y - b.Pad, b.Min.Y + b.Height + b.Pad
}

// Anchor returns the point at fractional position (fx, fy) of the box body.
func (b *Box) Anchor(fx, fy float64) geom.Point {
	return geom.Pt(b.Min.X+fx*b.Width, b.Min.Y+fy*b.Height)
}
