package figures

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/observability"
	"github.com/matzehuels/capfig/pkg/render"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fig1", "fig1"},
		{"anatomy", "fig1"},
		{"FIG2", "fig2"},
		{"phase-transition", "fig2"},
		{"3", "fig3"},
		{"fig3_packing_corrected", "fig3"},
		{" supply-demand ", "fig4"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := Lookup(tt.in)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.in, err)
			}
			if f.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.in, f.Name, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "fig5", "all", "fig0"} {
		_, err := Lookup(name)
		if !errors.Is(err, errors.ErrCodeInvalidFigure) {
			t.Errorf("Lookup(%q) error = %v, want INVALID_FIGURE", name, err)
		}
	}
}

func TestResolve(t *testing.T) {
	names := func(fs []*Figure) []string {
		out := make([]string, len(fs))
		for i, f := range fs {
			out[i] = f.Name
		}
		return out
	}
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{"fig1", "fig2", "fig3", "fig4"}},
		{"all", []string{"fig2", "ALL"}, []string{"fig1", "fig2", "fig3", "fig4"}},
		{"order kept", []string{"packing", "fig1"}, []string{"fig3", "fig1"}},
		{"duplicates", []string{"fig3", "3", "packing"}, []string{"fig3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Resolve([]string{"fig1", "nope"}); !errors.Is(err, errors.ErrCodeInvalidFigure) {
		t.Errorf("Resolve with unknown name: %v", err)
	}
}

func TestListIsCopy(t *testing.T) {
	l := List()
	l[0] = nil
	if List()[0] == nil {
		t.Error("List should return a copy of the registry")
	}
}

func TestFiles(t *testing.T) {
	want := map[string]string{
		"fig1": "fig1_anatomy_final",
		"fig2": "fig2_phase_transition_final",
		"fig3": "fig3_packing_corrected",
		"fig4": "fig4_supply_demand_final",
	}
	for _, f := range List() {
		if f.File != want[f.Name] {
			t.Errorf("%s file = %s, want %s", f.Name, f.File, want[f.Name])
		}
		if f.Width <= 0 || f.Height <= 0 {
			t.Errorf("%s has no page size", f.Name)
		}
	}
}

func TestBuildAll(t *testing.T) {
	ctx := context.Background()
	for _, f := range List() {
		t.Run(f.Name, func(t *testing.T) {
			res, err := f.Build(ctx, nil)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if err := res.Page.Validate(); err != nil {
				t.Fatalf("page invalid: %v", err)
			}
			var buf bytes.Buffer
			if err := render.Encode(&buf, res.Page, render.PNG, render.WithDPI(20)); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			wantW := int(f.Width.Dots(20) + 0.5)
			if got := img.Bounds().Dx(); got != wantW {
				t.Errorf("width = %d px, want %d", got, wantW)
			}
		})
	}
}

func TestPackingStats(t *testing.T) {
	f, _ := Lookup("packing")
	res, err := f.Build(context.Background(), config.Default())
	if err != nil {
		t.Fatal(err)
	}
	uni, ok := res.Stat(RegimeUniform)
	if !ok || uni != 19 {
		t.Errorf("uniform = %v (ok %v), want 19", uni, ok)
	}
	hier, _ := res.Stat(RegimeHierarchical)
	var sum float64
	for _, name := range []string{"cluster_1", "cluster_2", "cluster_3"} {
		v, ok := res.Stat(name)
		if !ok {
			t.Fatalf("missing stat %s", name)
		}
		sum += v
	}
	if hier != sum || hier <= uni {
		t.Errorf("hierarchical = %v, clusters sum %v, uniform %v", hier, sum, uni)
	}

	again, err := f.Build(context.Background(), config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(res.Stats, again.Stats); diff != "" {
		t.Errorf("packing stats not deterministic (-first +second):\n%s", diff)
	}
}

func TestPackingPanelsKeepDisksRound(t *testing.T) {
	for _, f := range List() {
		if want := f.Name == "fig3"; f.EqualAspect != want {
			t.Errorf("%s: EqualAspect = %v, want %v", f.Name, f.EqualAspect, want)
		}
	}

	f, _ := Lookup("fig3")
	res, err := f.Build(context.Background(), config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Page.EqualAspect {
		t.Fatal("page should request equal aspect")
	}
	if err := render.Encode(&bytes.Buffer{}, res.Page, render.SVG); err != nil {
		t.Fatal(err)
	}
	for i, p := range res.Page.Panels[0] {
		xr, yr := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
		if xr == 1 && yr == 1 {
			t.Errorf("panel %d: unit ranges were not padded to the wide panel", i)
		}
		if p.X.Min > 0 || p.X.Max < 1 || p.Y.Min > 0 || p.Y.Max < 1 {
			t.Errorf("panel %d: ranges [%g,%g]x[%g,%g] cut the packing region", i, p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
		}
	}
}

func TestTransitionStats(t *testing.T) {
	f, _ := Lookup("fig2")
	res, err := f.Build(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	logN, _ := res.Stat("log10_n_c")
	if logN < 3.6 || logN > 3.8 {
		t.Errorf("log10 N_c = %v, want about 3.7", logN)
	}
	if crossed, _ := res.Stat("crossed"); crossed != 1 {
		t.Error("default scaling should cross")
	}
}

func TestSupplyStats(t *testing.T) {
	f, _ := Lookup("fig4")
	res, err := f.Build(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	cliff, _ := res.Stat("cliff_edge_pct")
	if cliff < 19.4 || cliff > 19.6 {
		t.Errorf("cliff edge = %v%%, want about 19.5%%", cliff)
	}
	sharp, _ := res.Stat("overlap_sharp")
	degraded, _ := res.Stat("overlap_degraded")
	if !(sharp < degraded) {
		t.Errorf("degraded overlap %v should exceed sharp overlap %v", degraded, sharp)
	}
}

func TestBuildInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Packing.Uniform.Radius = -1
	f, _ := Lookup("fig3")
	if _, err := f.Build(context.Background(), cfg); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Build with invalid config: %v", err)
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, _ := Lookup("fig1")
	if _, err := f.Build(ctx, nil); err != context.Canceled {
		t.Errorf("Build with canceled context = %v, want context.Canceled", err)
	}
}

type recordingPackingHooks struct {
	observability.NoopPackingHooks
	mu      sync.Mutex
	regimes map[string]int
}

func (h *recordingPackingHooks) OnPackComplete(_ context.Context, regime string, accepted, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.regimes[regime] = accepted
}

func TestPackingHooks(t *testing.T) {
	hooks := &recordingPackingHooks{regimes: map[string]int{}}
	observability.SetPackingHooks(hooks)
	defer observability.Reset()

	f, _ := Lookup("fig3")
	res, err := f.Build(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, regime := range []string{RegimeUniform, RegimeHierarchical} {
		v, _ := res.Stat(regime)
		if got, ok := hooks.regimes[regime]; !ok || float64(got) != v {
			t.Errorf("hook for %s reported %d (ok %v), stat %v", regime, got, ok, v)
		}
	}
}
