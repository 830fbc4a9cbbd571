package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/figures"
	"github.com/matzehuels/capfig/pkg/pipeline"
	"github.com/matzehuels/capfig/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
// Flags left unset fall back to the configuration file.
type renderOpts struct {
	output      string // output directory
	formats     string // comma-separated output formats
	configPath  string // TOML configuration file
	seed        uint64 // packing seed
	dpi         int    // raster resolution
	noCache     bool   // bypass the artifact cache entirely
	refresh     bool   // redraw even when cached
	interactive bool   // pick figures from a list
}

// renderCommand creates the render command for drawing figures.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [figure...]",
		Short: "Render manuscript figures",
		Long: `Render one or more figures. Figures are named by number (fig3 or 3),
alias (packing) or output file name. With no arguments every figure is drawn.`,
		Example: `  capfig render
  capfig render fig2 packing -f png,pdf -o out/
  capfig render -i`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return figures.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyRenderFlags(cmd, cfg, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, \".\")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, svg, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "packing seed (default from config, 2024)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "raster resolution (default from config, 300)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "redraw figures even when cached")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose figures interactively")

	return cmd
}

// applyRenderFlags copies explicitly set flags over the configuration and
// revalidates it.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, opts *renderOpts) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Render.Output = opts.output
	}
	if flags.Changed("seed") {
		cfg.Render.Seed = opts.seed
	}
	if flags.Changed("dpi") {
		cfg.Render.DPI = opts.dpi
	}
	if flags.Changed("format") {
		formats, err := render.ParseFormats(opts.formats)
		if err != nil {
			return err
		}
		cfg.Render.Formats = formats
	}
	return cfg.Validate()
}

// runRender draws the selected figures and writes one file per format into
// the output directory.
func (c *CLI) runRender(ctx context.Context, names []string, cfg *config.Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	figs, err := selectFigures(names, opts.interactive)
	if err != nil {
		return err
	}
	if len(figs) == 0 {
		printInfo("No figures selected")
		return nil
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if err := os.MkdirAll(cfg.Render.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	prog := newProgress(logger, "figure")
	for i, f := range figs {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s (%d/%d)...", f.Name, i+1, len(figs)))
		spinner.Start()

		res, err := runner.Execute(ctx, pipeline.Request{
			Figure:  f.Name,
			Config:  cfg,
			Refresh: opts.refresh,
		})
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("%s: %v", f.Name, err))
			return err
		}
		logger.Debugf("%s: build %s, render %s", f.Name, res.Timing.Build, res.Timing.Render)

		spinner.SetMessage(fmt.Sprintf("Writing %s...", f.File))
		paths, err := writeArtifacts(cfg.Render.Output, f, cfg.Render.Formats, res.Artifacts)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("%s: %v", f.Name, err))
			return err
		}
		spinner.StopWithSuccess(f.Title)
		prog.add()
		printStats(res.Stats, res.CacheHit)
		for _, p := range paths {
			printFile(p)
		}
	}
	prog.done("Rendered")

	return nil
}

// selectFigures resolves the figure arguments, or asks the user when
// interactive is set.
func selectFigures(names []string, interactive bool) ([]*figures.Figure, error) {
	if interactive {
		return pickFigures(figures.List())
	}
	return figures.Resolve(names)
}

// writeArtifacts writes <dir>/<file>.<format> for each format, in format
// order, and returns the written paths.
func writeArtifacts(dir string, f *figures.Figure, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, f.File+"."+format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
