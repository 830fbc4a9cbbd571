package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/figures"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
	"github.com/matzehuels/capfig/pkg/render"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"cache", "completion", "crossing", "list", "pack", "render"}
	var got []string
	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" {
			continue
		}
		got = append(got, cmd.Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("subcommands mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "render", "phase-transition", "4", "-o", dir, "-f", "svg,png", "--dpi", "20"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{
		"fig2_phase_transition_final.svg",
		"fig2_phase_transition_final.png",
		"fig4_supply_demand_final.svg",
		"fig4_supply_demand_final.png",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "fig1_anatomy_final.svg")); !os.IsNotExist(err) {
		t.Error("unrequested figure was written")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown figure", []string{"render", "fig9", "--no-cache"}},
		{"bad format", []string{"render", "fig2", "-f", "gif", "--no-cache"}},
		{"bad dpi", []string{"render", "fig2", "--dpi=-1", "--no-cache"}},
		{"missing config", []string{"render", "-c", "does-not-exist.toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyRenderFlags(t *testing.T) {
	var opts renderOpts
	cmd := New(io.Discard, LogInfo).renderCommand()
	if err := cmd.ParseFlags([]string{"--seed", "7", "-f", "pdf,svg"}); err != nil {
		t.Fatal(err)
	}
	opts.seed, _ = cmd.Flags().GetUint64("seed")
	opts.formats, _ = cmd.Flags().GetString("format")

	cfg := config.Default()
	if err := applyRenderFlags(cmd, cfg, &opts); err != nil {
		t.Fatalf("applyRenderFlags: %v", err)
	}
	if cfg.Render.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Render.Seed)
	}
	if diff := cmp.Diff([]string{render.PDF, render.SVG}, cfg.Render.Formats); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
	if cfg.Render.DPI != 300 || cfg.Render.Output != "." {
		t.Error("unset flags should keep the configured values")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	f, err := figures.Lookup("fig3")
	if err != nil {
		t.Fatal(err)
	}
	paths, err := writeArtifacts(dir, f, []string{"svg", "png"}, map[string][]byte{"png": []byte("p"), "svg": []byte("s")})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "fig3_packing_corrected.svg"),
		filepath.Join(dir, "fig3_packing_corrected.png"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestPackCommandExports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "packing.json")
	if err := execute(t, "pack", "--seed", "2024", "-o", out); err != nil {
		t.Fatalf("pack: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"mode": "uniform"`)) || !bytes.Contains(data, []byte(`"seed": 2024`)) {
		t.Errorf("unexpected export:\n%s", data)
	}
}

func TestPackOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, o packing.Options)
		wantErr bool
	}{
		{
			name: "defaults",
			check: func(t *testing.T, o packing.Options) {
				if diff := cmp.Diff(config.Default().Packing.Uniform.Options(), o); diff != "" {
					t.Errorf("options mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "overrides",
			args: []string{"--radius", "0.05", "--factor", "2", "--region", "0,2,0,1", "--grid"},
			check: func(t *testing.T, o packing.Options) {
				if o.Radius != 0.05 || o.MinDistFactor != 2 || o.Index != packing.IndexGrid {
					t.Errorf("options = %+v", o)
				}
				if o.Region != geom.Rect(0, 2, 0, 1) {
					t.Errorf("region = %s", o.Region)
				}
			},
		},
		{
			name: "gaussian",
			args: []string{"--center", "0.3,0.6", "--std", "0.05"},
			check: func(t *testing.T, o packing.Options) {
				want := packing.Gaussian{Center: geom.Pt(0.3, 0.6), StdDev: 0.05}
				if o.Mode != want {
					t.Errorf("mode = %v, want %v", o.Mode, want)
				}
			},
		},
		{name: "bad region", args: []string{"--region", "0,1,0"}, wantErr: true},
		{name: "inverted region", args: []string{"--region", "1,0,0,1"}, wantErr: true},
		{name: "bad center", args: []string{"--center", "x,1"}, wantErr: true},
		{name: "zero radius", args: []string{"--radius", "0"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(io.Discard, LogInfo).packCommand()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			opts := packOpts{}
			opts.radius, _ = cmd.Flags().GetFloat64("radius")
			opts.factor, _ = cmd.Flags().GetFloat64("factor")
			opts.region, _ = cmd.Flags().GetString("region")
			opts.center, _ = cmd.Flags().GetString("center")
			opts.std, _ = cmd.Flags().GetFloat64("std")
			opts.grid, _ = cmd.Flags().GetBool("grid")

			got, err := packOptions(cmd, config.Default(), &opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestCrossingCommand(t *testing.T) {
	if err := execute(t, "crossing"); err != nil {
		t.Errorf("crossing: %v", err)
	}
	if err := execute(t, "crossing", "--points", "1"); err == nil {
		t.Error("crossing with one point should fail validation")
	}
}

func TestListCommand(t *testing.T) {
	if err := execute(t, "list", "--names"); err != nil {
		t.Errorf("list: %v", err)
	}
}

func TestFigureTable(t *testing.T) {
	out := figureTable(figures.List())
	for _, f := range figures.List() {
		if !strings.Contains(out, f.File) {
			t.Errorf("table missing %s", f.File)
		}
	}
	if !strings.Contains(out, "12×5.5 in") {
		t.Errorf("table missing packing size:\n%s", out)
	}
}

func TestFigureListModel(t *testing.T) {
	press := func(m tea.Model, keys ...string) FigureListModel {
		for _, k := range keys {
			var msg tea.KeyMsg
			switch k {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "down":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			case " ":
				msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
			}
			m, _ = m.Update(msg)
		}
		return m.(FigureListModel)
	}

	m := NewFigureListModel(figures.List())
	if len(m.Selected()) != 4 {
		t.Fatalf("all figures should start selected, got %d", len(m.Selected()))
	}

	m = press(m, "a")
	if len(m.Selected()) != 0 {
		t.Errorf("a should clear a full selection, got %d", len(m.Selected()))
	}

	m = press(m, "down", "x", "down", "down", "x", "enter")
	if !m.Confirmed {
		t.Error("enter should confirm")
	}
	var names []string
	for _, f := range m.Selected() {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"fig2", "fig4"}, names); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "[2/4 selected]") {
		t.Errorf("view missing counter:\n%s", m.View())
	}

	m = press(NewFigureListModel(figures.List()), "q")
	if m.Confirmed {
		t.Error("q should not confirm")
	}
}
