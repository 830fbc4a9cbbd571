package figures

import (
	"context"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/render"
)

func buildAnatomy(_ context.Context, _ *config.Config) ([][]*plot.Plot, []Stat, error) {
	return [][]*plot.Plot{{anatomyLoop(), stateSpace(), separationConstraint()}}, nil, nil
}

// anatomyLoop draws the entorhinal-hippocampal loop.
func anatomyLoop() *plot.Plot {
	p := schematic("A. Biological Architecture (EC-HC Loop)", geom.Rect(-0.15, 1.0, 0.05, 0.95))

	ec := render.NewBox(geom.Pt(0.02, 0.3), 0.22, 0.4, render.TabBlue, "Entorhinal\nCortex (EC)", "Input/Output\nHub")
	dg := render.NewBox(geom.Pt(0.35, 0.65), 0.22, 0.25, render.TabRed, "DG", "Pattern\nSeparation")
	ca3 := render.NewBox(geom.Pt(0.7, 0.4), 0.22, 0.25, render.TabGreen, "CA3", "Pattern\nCompletion")
	ca1 := render.NewBox(geom.Pt(0.35, 0.1), 0.22, 0.25, render.TabPurple, "CA1", "Integration")

	input := render.NewArrow(geom.Pt(-0.12, 0.5), ec.Anchor(0, 0.5), render.Black, vg.Points(2))

	loop := func(from, to geom.Point) *render.Arrow {
		a := render.NewArrow(from, to, render.Gray, vg.Points(1.5))
		a.Bend = -0.2
		return a
	}
	perforant := loop(ec.Anchor(1, 0.875), dg.Anchor(0, 0.48))
	mossy := loop(dg.Anchor(1, 0.48), ca3.Anchor(0, 0.6))
	schaffer := loop(ca3.Anchor(0.5, 0), ca1.Anchor(1, 0.48))
	feedback := loop(ca1.Anchor(0, 0.48), ec.Anchor(1, 0.125))
	feedback.Line = render.DashedStroke(render.Black, vg.Points(1.5))

	fbLabel := render.NewText(geom.Pt(0.31, 0.29), "Feedback", 7, render.Black, false)
	fbLabel.Rotation = math.Pi / 6

	p.Add(
		perforant, mossy, schaffer, feedback, input,
		ec, dg, ca3, ca1,
		render.NewText(geom.Pt(-0.09, 0.55), "Cortex", 9, render.Black, false),
		fbLabel,
		render.NewText(geom.Pt(0.49, 0.63), "K_inter", 8, render.TabRed, true),
		render.NewText(geom.Pt(0.84, 0.36), "K_intra", 8, render.TabGreen, true),
	)
	return p
}

// stateSpace draws the neural space split into nearly orthogonal local
// populations.
func stateSpace() *plot.Plot {
	p := schematic("B. Partitioned State Space", geom.Rect(0, 1, 0, 1.05))

	p.Add(&render.Circle{
		Center: geom.Pt(0.5, 0.5),
		Radius: 0.45,
		Fill:   render.Paper,
		Line:   render.Stroke(render.Black, vg.Points(2)),
	})

	const radius = 0.22
	centers := []geom.Point{geom.Pt(0.35, 0.6), geom.Pt(0.65, 0.6), geom.Pt(0.5, 0.3)}
	fills := []color.NRGBA{render.PaleBlue, render.PaleOrange, render.PaleGreen}
	labels := []string{"N_loc¹", "N_loc²", "N_loc³"}
	for i, c := range centers {
		p.Add(&render.Circle{
			Center: c,
			Radius: radius,
			Fill:   render.Alpha(fills[i], 0.5),
			Line:   render.DashedStroke(render.Alpha(render.Gray, 0.5), vg.Points(1.5)),
		})
	}
	for i, c := range centers {
		p.Add(render.NewText(c, labels[i], 11, render.Black, true))
	}

	p.Add(
		render.NewText(geom.Pt(0.5, 0.99), "Neural Space (N)", 10, render.Black, true),
		render.NewArrow(geom.Pt(0.5, 0.8), geom.Pt(0.5, 0.6), render.Black, vg.Points(1)),
		render.NewText(geom.Pt(0.5, 0.86), "Slight Overlap\n(K_inter > 0)", 9, render.Black, false),
		render.NewText(geom.Pt(0.5, 0.05), "Nearly Orthogonal Subspaces", 9, render.Gray, false),
	)
	return p
}

// separationConstraint contrasts dense packing inside a manifold with the
// separation required between manifolds.
func separationConstraint() *plot.Plot {
	p := schematic("C. The K_inter ≪ K_intra Constraint", geom.Rect(0, 1, 0.15, 0.9))

	const (
		manifoldRadius = 0.22
		conceptRadius  = 0.11
	)
	manifolds := []struct {
		center geom.Point
		label  string
		color  color.NRGBA
	}{
		{geom.Pt(0.3, 0.5), "Manifold A", render.TabBlue},
		{geom.Pt(0.7, 0.5), "Manifold B", render.TabRed},
	}
	concepts := []geom.Point{geom.Pt(-0.06, 0.05), geom.Pt(0.06, 0.05), geom.Pt(0, -0.08)}

	for _, m := range manifolds {
		p.Add(&render.Circle{
			Center: m.center,
			Radius: manifoldRadius,
			Fill:   render.Alpha(render.Mist, 0.7),
			Line:   render.DashedStroke(render.Alpha(render.Gray, 0.7), vg.Points(1.5)),
		})
		p.Add(render.NewText(geom.Pt(m.center.X, 0.8), m.label, 9, render.Gray, true))
	}
	for _, m := range manifolds {
		centers := make([]geom.Point, len(concepts))
		for i, off := range concepts {
			centers[i] = geom.Pt(m.center.X+off.X, m.center.Y+off.Y)
		}
		d := render.NewDisks(centers, conceptRadius, m.color)
		d.Fill = render.Alpha(m.color, 0.7)
		p.Add(d)
		p.Add(render.NewText(geom.Pt(m.center.X, 0.22), "Deep Dense Packing\n(Allowed)", 9, m.color, false))
	}

	span := render.NewArrow(geom.Pt(0.62, 0.55), geom.Pt(0.38, 0.55), render.Black, vg.Points(1.5))
	span.Style = render.Bar

	p.Add(
		render.NewArrow(geom.Pt(0.5, 0.65), geom.Pt(0.5, 0.5), render.Gray, vg.Points(1)),
		render.NewText(geom.Pt(0.5, 0.7), "Manifold Overlap\n(K_inter > 0)", 8, render.Gray, false),
		render.NewText(geom.Pt(0.3, 0.5), "K_intra\nVery High", 9, render.White, true),
		span,
		render.NewText(geom.Pt(0.5, 0.52), "Minimal Concept Overlap", 8, render.Black, true),
	)
	return p
}
