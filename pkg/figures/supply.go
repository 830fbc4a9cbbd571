package figures

import (
	"context"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/capfig/pkg/capacity"
	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/render"
)

// supplyCeiling clips the supply panel; hierarchical supply starts far above
// it.
const supplyCeiling = 2.0

func buildSupplyDemand(_ context.Context, cfg *config.Config) ([][]*plot.Plot, []Stat, error) {
	supply, cliff, err := supplyDemand(cfg.Reserve)
	if err != nil {
		return nil, nil, err
	}
	merging, overlap, err := semanticMerging(cfg.Semantic)
	if err != nil {
		return nil, nil, err
	}
	stats := []Stat{
		{Name: "cliff_edge_pct", Value: 100 * cliff},
		{Name: "overlap_sharp", Value: cfg.Semantic.Sharp().Area},
		{Name: "overlap_degraded", Value: overlap},
	}
	return [][]*plot.Plot{{supply, merging}}, stats, nil
}

func supplyDemand(r capacity.Reserve) (*plot.Plot, float64, error) {
	c := r.Curves()
	cliff := r.CliffEdge()
	cliffPct := 100 * cliff

	p := plot.New()
	render.Theme(p, "A. Supply vs. Demand Dynamics")
	p.Title.TextStyle.Font = render.Font(14, true)
	p.X.Label.Text = "Neuronal Loss (f, %)"
	p.Y.Label.Text = "Effective Capacity"
	p.Y.Tick.Marker = plot.ConstantTicks{
		{Value: 0, Label: "0"},
		{Value: r.RUniform, Label: "Deficit"},
		{Value: r.CReq, Label: "C_req (Demand)"},
		{Value: supplyCeiling, Label: "Surplus"},
	}

	n := len(c.LossPct)
	demand := make([]float64, n)
	zero := make([]float64, n)
	capped := make([]float64, n)
	for i, v := range c.Hierarchical {
		demand[i] = r.CReq
		capped[i] = min(v, supplyCeiling)
	}

	reserve := &render.Band{
		X: c.LossPct, Lower: demand, Upper: capped,
		Where: func(i int) bool { return c.Hierarchical[i] > r.CReq },
		Fill:  render.Alpha(render.Green, 0.1),
	}
	collapse := &render.Band{
		X: c.LossPct, Lower: zero, Upper: c.Hierarchical,
		Where: func(i int) bool { return c.Hierarchical[i] <= r.CReq },
		Fill:  render.Alpha(render.Red, 0.1),
	}

	demandLine, err := hline(0, r.MaxLossPct, r.CReq, render.DottedStroke(render.Black, vg.Points(2)))
	if err != nil {
		return nil, 0, err
	}
	uniform, err := newLine(c.LossPct, c.Uniform, render.DashedStroke(render.TabBlue, vg.Points(2.5)))
	if err != nil {
		return nil, 0, err
	}
	hier, err := newLine(c.LossPct, c.Hierarchical, render.Stroke(render.TabRed, vg.Points(4)))
	if err != nil {
		return nil, 0, err
	}

	start := render.NewArrow(geom.Pt(8, 1.7), geom.Pt(1, 1.9), render.TabRed, vg.Points(1.5))
	edge := render.NewArrow(geom.Pt(cliffPct+11.5, r.CReq), geom.Pt(cliffPct+0.6, r.CReq), render.Black, vg.Points(1.5))
	edge.Bend = 0.1
	point, err := marker(geom.Pt(cliffPct, r.CReq), render.Black, vg.Points(5))
	if err != nil {
		return nil, 0, err
	}

	p.Add(
		grid(render.Black, 0.3, true),
		reserve, collapse,
		demandLine, uniform, hier,
		start, edge, point,
		render.NewText(geom.Pt(8, 1.6), fmt.Sprintf("Starts at %g × C_req\n(Huge Surplus)", r.R/r.CReq), 10, render.TabRed, true).Left(),
		render.NewText(geom.Pt(30, 0.3), "Insufficient Capacity\n(C < C_req)", 10, render.TabBlue, true),
		render.NewText(geom.Pt(cliffPct+12, r.CReq), "Cliff Edge\n(Reserve Exhausted)", 11, render.DarkRed, true).Left(),
	)
	// The hierarchical curve starts at R; clip to the ceiling.
	p.X.Min, p.X.Max = 0, r.MaxLossPct
	p.Y.Min, p.Y.Max = 0, supplyCeiling
	p.Legend.Add("Biological Demand (C_req)", demandLine)
	p.Legend.Add("Uniform Coding (Structural Deficit)", uniform)
	p.Legend.Add("Hierarchical Coding (Supply Surplus)", hier)
	p.Legend.Top = true
	p.Legend.TextStyle.Font = render.Font(9, false)
	return p, cliff, nil
}

func semanticMerging(s capacity.Semantic) (*plot.Plot, float64, error) {
	sharp, degraded := s.Sharp(), s.Degraded()

	p := plot.New()
	render.Theme(p, "B. Loss of Separation (K_inter)")
	p.Title.TextStyle.Font = render.Font(14, true)
	p.X.Label.Text = "Semantic Feature Space"
	p.Y.Tick.Marker = plot.ConstantTicks{}
	p.X.Tick.Marker = plot.ConstantTicks{
		{Value: s.MuA, Label: fmt.Sprintf("%g", s.MuA)},
		{Value: s.MuB, Label: fmt.Sprintf("%g", s.MuB)},
	}

	thin := func(y []float64, clr color.NRGBA) (*plotter.Line, error) {
		return newLine(sharp.X, y, render.DottedStroke(render.Alpha(clr, 0.6), vg.Points(1)))
	}
	sharpA, err := thin(sharp.A, render.TabGreen)
	if err != nil {
		return nil, 0, err
	}
	sharpB, err := thin(sharp.B, render.TabOrange)
	if err != nil {
		return nil, 0, err
	}
	conceptA, err := newLine(degraded.X, degraded.A, render.Stroke(render.TabGreen, vg.Points(2)))
	if err != nil {
		return nil, 0, err
	}
	conceptB, err := newLine(degraded.X, degraded.B, render.Stroke(render.TabOrange, vg.Points(2)))
	if err != nil {
		return nil, 0, err
	}

	mid := (s.MuA + s.MuB) / 2
	p.Add(
		&render.Band{
			X:     degraded.X,
			Lower: make([]float64, len(degraded.X)),
			Upper: degraded.Overlap,
			Fill:  render.Alpha(render.Red, 0.3),
		},
		sharpA, sharpB, conceptA, conceptB,
		render.NewArrow(geom.Pt(mid, 0.28), geom.Pt(mid, 0.12), render.Red, vg.Points(2)),
		render.NewText(geom.Pt(mid, 0.33), "Semantic\nMerging", 10, render.Red, true),
	)
	p.X.Min, p.X.Max = s.XMin, s.XMax
	p.Y.Min, p.Y.Max = 0, 0.55
	p.Legend.Add("Concept A", conceptA)
	p.Legend.Add("Concept B", conceptB)
	p.Legend.Top = true
	p.Legend.TextStyle.Font = render.Font(10, false)
	return p, degraded.Area, nil
}
