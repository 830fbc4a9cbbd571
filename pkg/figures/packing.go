package figures

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/observability"
	"github.com/matzehuels/capfig/pkg/packing"
	"github.com/matzehuels/capfig/pkg/render"
)

// Packing regimes reported to hooks and stats.
const (
	RegimeUniform      = "uniform"
	RegimeHierarchical = "hierarchical"
)

func buildPacking(ctx context.Context, cfg *config.Config) ([][]*plot.Plot, []Stat, error) {
	seed := cfg.Render.Seed
	hooks := observability.Packing()

	start := time.Now()
	uni, err := packing.Pack(packing.NewSource(seed), cfg.Packing.Uniform.Options())
	if err != nil {
		return nil, nil, err
	}
	hooks.OnPackComplete(ctx, RegimeUniform, uni.Len(), uni.Attempts(), time.Since(start))

	h := cfg.Packing.Hierarchical
	start = time.Now()
	clusters, err := packing.PackClusters(ctx, seed, h.Options(), h.Clusters)
	if err != nil {
		return nil, nil, err
	}
	total := packing.Total(clusters)
	hooks.OnPackComplete(ctx, RegimeHierarchical, total, h.Attempts*len(clusters), time.Since(start))

	left := packingPanel("A. Uniform Regime (K=2)\nStrict Constraint: Light Overlap Only", cfg.Packing.Uniform.Region)
	left.Add(render.NewDisks(uni.Centers(), uni.Radius(), render.TabBlue))
	countLabel(left, uni.Len(), "Jamming Limit", render.TabBlue, render.TintBlue)

	right := packingPanel("B. Hierarchical Regime (K_intra=20)\nRelaxed Constraint: Deep Overlap Allowed", h.Region)
	for _, c := range h.Clusters {
		right.Add(&render.Circle{
			Center: c.Center,
			Radius: h.ManifoldRadius,
			Line:   render.DashedStroke(render.Alpha(render.Gray, 0.5), vg.Points(1.5)),
		})
	}
	for i, ps := range clusters {
		right.Add(render.NewDisks(ps.Centers(), ps.Radius(), render.Cycle(i)))
	}
	// Manifold outlines may reach past the region; keep the panel on it.
	render.Blank(right, h.Region)
	countLabel(right, total, "Manifold Density Gain", render.TabRed, render.TintRed)

	for _, p := range []*plot.Plot{left, right} {
		r := geom.Rect(p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
		p.Add(&render.Frame{
			Rect: r.Inset(0.01 * r.Width()),
			Line: render.Stroke(render.Ink, vg.Points(1.5)),
		})
	}

	stats := []Stat{
		{Name: RegimeUniform, Value: float64(uni.Len())},
		{Name: RegimeHierarchical, Value: float64(total)},
		{Name: "uniform_coverage", Value: uni.Coverage(cfg.Packing.Uniform.Region)},
	}
	for i, ps := range clusters {
		stats = append(stats, Stat{Name: fmt.Sprintf("cluster_%d", i+1), Value: float64(ps.Len())})
	}
	return [][]*plot.Plot{{left, right}}, stats, nil
}

func packingPanel(title string, region geom.Region) *plot.Plot {
	p := schematic(title, region)
	p.Title.Padding = vg.Points(10)
	return p
}

// countLabel writes the accepted count on a tinted plate near the bottom of
// the panel.
func countLabel(p *plot.Plot, n int, note string, clr, tint color.NRGBA) {
	w, h := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	cx := p.X.Min + w/2
	p.Add(
		&render.Frame{
			Rect: geom.Rect(cx-0.27*w, cx+0.27*w, p.Y.Min+0.015*h, p.Y.Min+0.115*h),
			Fill: render.Alpha(tint, 0.8),
		},
		render.NewText(geom.Pt(cx, p.Y.Min+0.065*h), fmt.Sprintf("Capacity Reached: %d Concepts\n(%s)", n, note), 10, clr, true),
	)
}
