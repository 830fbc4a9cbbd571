// Package figures builds the four manuscript figures.
//
// Each [Figure] has a short name (fig1..fig4), an alias describing its
// content, a default output file name and a page size. [Figure.Build] turns a
// [config.Config] into a [render.Figure] ready for [render.Encode], together
// with the numbers the figure reports (crossing point, disk counts, cliff
// edge) as [Stat] values.
//
//	fig, err := figures.Lookup("packing")
//	res, err := fig.Build(ctx, config.Default())
//	err = render.Encode(w, res.Page, render.PNG)
package figures

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/render"
)

// All selects every figure in Resolve.
const All = "all"

// Figure describes one manuscript figure.
type Figure struct {
	Name          string // fig1..fig4
	Alias         string
	Title         string
	File          string // default output name without extension
	Width, Height vg.Length
	// EqualAspect keeps disks round; see render.Figure.
	EqualAspect bool

	build builder
}

type builder func(ctx context.Context, cfg *config.Config) ([][]*plot.Plot, []Stat, error)

// Stat is a number a figure reports, e.g. the number of packed disks.
type Stat struct {
	Name  string
	Value float64
}

func (s Stat) String() string {
	return fmt.Sprintf("%s=%.4g", s.Name, s.Value)
}

// Result is a built figure.
type Result struct {
	Figure *Figure
	Page   render.Figure
	Stats  []Stat
}

var registry = []*Figure{
	{
		Name: "fig1", Alias: "anatomy",
		Title:  "Biological architecture and partitioned state space",
		File:   "fig1_anatomy_final",
		Width:  14 * vg.Inch,
		Height: 4.5 * vg.Inch,
		build:  buildAnatomy,
	},
	{
		Name: "fig2", Alias: "phase-transition",
		Title:  "Topological phase transition of memory capacity",
		File:   "fig2_phase_transition_final",
		Width:  10 * vg.Inch,
		Height: 7 * vg.Inch,
		build:  buildTransition,
	},
	{
		Name: "fig3", Alias: "packing",
		Title:       "Uniform and hierarchical disk packing",
		File:        "fig3_packing_corrected",
		Width:       12 * vg.Inch,
		Height:      5.5 * vg.Inch,
		EqualAspect: true,
		build:       buildPacking,
	},
	{
		Name: "fig4", Alias: "supply-demand",
		Title:  "Reserve exhaustion and semantic merging",
		File:   "fig4_supply_demand_final",
		Width:  12 * vg.Inch,
		Height: 5 * vg.Inch,
		build:  buildSupplyDemand,
	},
}

// List returns every figure in order.
func List() []*Figure {
	out := make([]*Figure, len(registry))
	copy(out, registry)
	return out
}

// Names returns the short names of every figure.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a figure by name, alias or file name, ignoring case. A bare
// number selects the figure with that index, so "3" is fig3.
func Lookup(name string) (*Figure, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range registry {
		if key == f.Name || key == f.Alias || key == f.File || "fig"+key == f.Name {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFigure, "unknown figure %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Resolve maps names to figures, dropping duplicates. No names, or any name
// equal to All, selects every figure.
func Resolve(names []string) ([]*Figure, error) {
	if len(names) == 0 {
		return List(), nil
	}
	var out []*Figure
	seen := make(map[string]bool)
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), All) {
			return List(), nil
		}
		f, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	return out, nil
}

// Build draws the figure from cfg. A nil cfg uses config.Default.
func (f *Figure) Build(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	panels, stats, err := f.build(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build %s", f.Name)
	}
	return &Result{
		Figure: f,
		Page:   render.Figure{Panels: panels, Width: f.Width, Height: f.Height, EqualAspect: f.EqualAspect},
		Stats:  stats,
	}, nil
}

// Stat returns the named stat.
func (r *Result) Stat(name string) (float64, bool) {
	for _, s := range r.Stats {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}
