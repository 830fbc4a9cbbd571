package figures

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/render"
)

func xys(x, y []float64) plotter.XYs {
	n := min(len(x), len(y))
	pts := make(plotter.XYs, n)
	for i := range n {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts
}

func newLine(x, y []float64, sty draw.LineStyle) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys(x, y))
	if err != nil {
		return nil, err
	}
	l.LineStyle = sty
	return l, nil
}

// hline spans [x0, x1] at height y.
func hline(x0, x1, y float64, sty draw.LineStyle) (*plotter.Line, error) {
	return newLine([]float64{x0, x1}, []float64{y, y}, sty)
}

func marker(at geom.Point, clr color.Color, radius vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: at.X, Y: at.Y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: clr, Radius: radius, Shape: draw.CircleGlyph{}}
	return s, nil
}

func grid(clr color.Color, alpha float64, dashed bool) *plotter.Grid {
	g := plotter.NewGrid()
	sty := render.Stroke(render.Alpha(clr, alpha), vg.Points(0.5))
	if dashed {
		sty.Dashes = render.Dashed
	}
	g.Vertical, g.Horizontal = sty, sty
	return g
}

// schematic returns a themed panel with hidden axes over r.
func schematic(title string, r geom.Region) *plot.Plot {
	p := plot.New()
	render.Theme(p, title)
	render.Blank(p, r)
	return p
}

func legend(p *plot.Plot, size vg.Length) {
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font = render.Font(size, false)
	p.Legend.XOffs = vg.Points(8)
	p.Legend.YOffs = -vg.Points(8)
}
