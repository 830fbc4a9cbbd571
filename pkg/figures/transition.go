package figures

import (
	"context"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/render"
)

func buildTransition(_ context.Context, cfg *config.Config) ([][]*plot.Plot, []Stat, error) {
	s := cfg.Scaling
	curves := s.Curves()
	nc := curves.Crossing()

	p := plot.New()
	render.Theme(p, "Topological Phase Transition of Memory Capacity")
	p.Title.TextStyle.Font = render.Font(18, true)
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = "Total Neural Population (N)"
	p.Y.Label.Text = "Memory Capacity (ln C)"
	p.X.Label.TextStyle.Font = render.Font(16, true)
	p.Y.Label.TextStyle.Font = render.Font(16, true)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min, p.X.Max = curves.N[0], curves.N[len(curves.N)-1]

	uniform, err := newLine(curves.N, curves.Uniform, render.DashedStroke(render.Blue, vg.Points(3)))
	if err != nil {
		return nil, nil, err
	}
	hier, err := newLine(curves.N, curves.Hierarchical, render.Stroke(render.Vermillion, vg.Points(3)))
	if err != nil {
		return nil, nil, err
	}
	point, err := marker(geom.Pt(nc.N, nc.LogC), render.Black, vg.Points(6))
	if err != nil {
		return nil, nil, err
	}

	gain := &render.Band{
		X:     curves.N,
		Lower: curves.Uniform,
		Upper: curves.Hierarchical,
		Where: func(i int) bool { return curves.N[i] > nc.N },
		Fill:  render.Alpha(render.Vermillion, 0.1),
	}

	label := geom.Pt(nc.N*0.4, nc.LogC+8)
	p.Add(
		grid(render.Black, 0.2, false),
		gain,
		uniform, hier,
		render.NewArrow(geom.Pt(label.X, label.Y-1.5), geom.Pt(nc.N, nc.LogC+0.8), render.Black, vg.Points(2)),
		point,
		render.NewText(label, fmt.Sprintf("N_c ≈ 10^%.1f\n(Phase Transition)", nc.LogN()), 14, render.Black, true),
		render.NewText(geom.Pt(1e6, nc.LogC-10), "Manifold\nGain", 14, render.Vermillion, true),
	)

	p.Legend.Add(fmt.Sprintf("Uniform Random Coding (K=%g)", s.K), uniform)
	p.Legend.Add(fmt.Sprintf("Hierarchical Coding (K_inter=%g, K_intra=%g)", s.KInter, s.KIntra), hier)
	legend(p, 12)

	found := 0.0
	if nc.Found {
		found = 1
	}
	stats := []Stat{
		{Name: "n_c", Value: nc.N},
		{Name: "log10_n_c", Value: nc.LogN()},
		{Name: "crossed", Value: found},
	}
	return [][]*plot.Plot{{p}}, stats, nil
}
