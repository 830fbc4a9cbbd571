package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/capfig/pkg/geom"
)

// ArrowStyle selects the tips drawn on an Arrow.
type ArrowStyle int

const (
	// Head draws an open arrow head at To.
	Head ArrowStyle = iota
	// Bar draws perpendicular bars at both ends (a |-| span).
	Bar
	// Plain draws the shaft only.
	Plain
)

// Arrow connects From to To. A non-zero Bend curves the shaft: the control
// point sits Bend times the chord length off the chord's midpoint, to the
// right of the direction of travel for positive values.
type Arrow struct {
	From, To geom.Point
	Bend     float64
	Style    ArrowStyle
	Line     draw.LineStyle
	HeadLen  vg.Length
}

// NewArrow returns a straight arrow with a head at to.
func NewArrow(from, to geom.Point, clr color.Color, width vg.Length) *Arrow {
	return &Arrow{From: from, To: to, Line: Stroke(clr, width), HeadLen: vg.Points(8)}
}

// shaft samples the (possibly bent) shaft in canvas space.
func (a *Arrow) shaft(p0, p2 vg.Point) []vg.Point {
	if a.Bend == 0 {
		return []vg.Point{p0, p2}
	}
	const samples = 24
	mid := vg.Point{X: (p0.X + p2.X) / 2, Y: (p0.Y + p2.Y) / 2}
	dx, dy := p2.X-p0.X, p2.Y-p0.Y
	f := vg.Length(a.Bend)
	p1 := vg.Point{X: mid.X + f*dy, Y: mid.Y - f*dx}
	pts := make([]vg.Point, samples+1)
	for i := range pts {
		t := vg.Length(float64(i) / samples)
		u := 1 - t
		pts[i] = vg.Point{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		}
	}
	return pts
}

// Plot implements plot.Plotter.
func (a *Arrow) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	p0 := vg.Point{X: trX(a.From.X), Y: trY(a.From.Y)}
	p2 := vg.Point{X: trX(a.To.X), Y: trY(a.To.Y)}
	pts := a.shaft(p0, p2)
	c.StrokeLines(a.Line, pts)

	tip := a.Line
	tip.Dashes = nil
	size := a.HeadLen
	if size == 0 {
		size = vg.Points(8)
	}
	switch a.Style {
	case Head:
		end, prev := pts[len(pts)-1], pts[len(pts)-2]
		back := math.Atan2(float64(prev.Y-end.Y), float64(prev.X-end.X))
		for _, da := range []float64{-0.4, 0.4} {
			q := vg.Point{
				X: end.X + size*vg.Length(math.Cos(back+da)),
				Y: end.Y + size*vg.Length(math.Sin(back+da)),
			}
			c.StrokeLine2(tip, end.X, end.Y, q.X, q.Y)
		}
	case Bar:
		dir := math.Atan2(float64(p2.Y-p0.Y), float64(p2.X-p0.X)) + math.Pi/2
		ox, oy := size/2*vg.Length(math.Cos(dir)), size/2*vg.Length(math.Sin(dir))
		for _, e := range []vg.Point{p0, p2} {
			c.StrokeLine2(tip, e.X-ox, e.Y-oy, e.X+ox, e.Y+oy)
		}
	}
}

// Band fills the area between Lower and Upper over X wherever Where holds.
// Each maximal run of consecutive samples satisfying Where becomes one
// polygon. A nil Where fills everywhere.
type Band struct {
	X, Lower, Upper []float64
	Where           func(i int) bool
	Fill            color.Color
}

// Plot implements plot.Plotter.
func (b *Band) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, r := range b.Runs() {
		pts := make([]vg.Point, 0, 2*(r[1]-r[0]))
		for i := r[0]; i < r[1]; i++ {
			pts = append(pts, vg.Point{X: trX(b.X[i]), Y: trY(b.Upper[i])})
		}
		for i := r[1] - 1; i >= r[0]; i-- {
			pts = append(pts, vg.Point{X: trX(b.X[i]), Y: trY(b.Lower[i])})
		}
		c.FillPolygon(b.Fill, c.ClipPolygonXY(pts))
	}
}

// Runs returns the half-open index ranges [start, end) that are filled.
// Runs of a single sample have no area and are skipped.
func (b *Band) Runs() [][2]int {
	n := min(len(b.X), len(b.Lower), len(b.Upper))
	var runs [][2]int
	start := -1
	for i := 0; i <= n; i++ {
		in := i < n && (b.Where == nil || b.Where(i))
		switch {
		case in && start < 0:
			start = i
		case !in && start >= 0:
			if i-start > 1 {
				runs = append(runs, [2]int{start, i})
			}
			start = -1
		}
	}
	return runs
}

// DataRange implements plot.DataRanger.
func (b *Band) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, r := range b.Runs() {
		for i := r[0]; i < r[1]; i++ {
			xmin, xmax = min(xmin, b.X[i]), max(xmax, b.X[i])
			ymin = min(ymin, b.Lower[i], b.Upper[i])
			ymax = max(ymax, b.Lower[i], b.Upper[i])
		}
	}
	if math.IsInf(xmin, 1) {
		return 0, 0, 0, 0
	}
	return xmin, xmax, ymin, ymax
}
