package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
	"github.com/matzehuels/capfig/pkg/pipeline"
)

// packOpts holds the command-line flags for the pack command.
// Unset flags take the uniform regime of the configuration.
type packOpts struct {
	configPath string
	output     string  // JSON export path
	attempts   int     // candidate draws
	radius     float64 // disk radius
	factor     float64 // min distance as a multiple of radius
	region     string  // "xmin,xmax,ymin,ymax"
	center     string  // "x,y"; switches to Gaussian sampling
	std        float64 // Gaussian standard deviation
	seed       uint64
	grid       bool // use the grid neighbour index
	noCache    bool
	refresh    bool
}

// packCommand creates the pack command for running the disk packer alone.
func (c *CLI) packCommand() *cobra.Command {
	opts := packOpts{std: 0.1}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Run the disk packer and report the result",
		Long: `Run random sequential disk packing with the uniform regime of the
configuration, overridden by flags. Giving --center samples candidates from a
Gaussian around that point instead of uniformly.`,
		Example: `  capfig pack
  capfig pack --radius 0.05 --factor 2 --seed 7 -o packing.json
  capfig pack --center 0.5,0.5 --std 0.08`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			seed := cfg.Render.Seed
			if cmd.Flags().Changed("seed") {
				seed = opts.seed
			}
			popts, err := packOptions(cmd, cfg, &opts)
			if err != nil {
				return err
			}
			return c.runPack(cmd.Context(), seed, popts, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the packing as JSON to this file")
	cmd.Flags().IntVar(&opts.attempts, "attempts", 0, "candidate draws (default from config, 2000)")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "disk radius (default from config, 0.11)")
	cmd.Flags().Float64Var(&opts.factor, "factor", 0, "minimum center distance in radii (default from config, 1.5)")
	cmd.Flags().StringVar(&opts.region, "region", "", "bounding region xmin,xmax,ymin,ymax (default 0,1,0,1)")
	cmd.Flags().StringVar(&opts.center, "center", "", "sample from a Gaussian centered at x,y")
	cmd.Flags().Float64Var(&opts.std, "std", opts.std, "Gaussian standard deviation (with --center)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default from config, 2024)")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "use the grid neighbour index")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the packing cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "repack even when cached")

	return cmd
}

// packOptions merges the set flags over the configured uniform regime.
func packOptions(cmd *cobra.Command, cfg *config.Config, opts *packOpts) (packing.Options, error) {
	flags := cmd.Flags()
	u := cfg.Packing.Uniform
	if flags.Changed("attempts") {
		u.Attempts = opts.attempts
	}
	if flags.Changed("radius") {
		u.Radius = opts.radius
	}
	if flags.Changed("factor") {
		u.MinDistFactor = opts.factor
	}
	if flags.Changed("grid") {
		u.Grid = opts.grid
	}
	if flags.Changed("region") {
		r, err := parseRegion(opts.region)
		if err != nil {
			return packing.Options{}, err
		}
		u.Region = r
	}

	popts := u.Options()
	if flags.Changed("center") {
		center, err := parsePoint(opts.center)
		if err != nil {
			return packing.Options{}, err
		}
		popts.Mode = packing.Gaussian{Center: center, StdDev: opts.std}
	}
	return popts, popts.Validate()
}

func (c *CLI) runPack(ctx context.Context, seed uint64, opts packing.Options, flags *packOpts) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Pack(ctx, pipeline.PackRequest{Seed: seed, Options: opts, Refresh: flags.refresh})
	if err != nil {
		return err
	}

	p := res.Packing
	mode := res.Meta.Mode
	if p.Len() == 0 {
		printWarning("No disks placed; the region may be too small for radius %g", p.Radius())
	} else {
		printSuccess("Placed %d disks (%s)", p.Len(), mode)
	}
	printKeyValue("Seed", strconv.FormatUint(seed, 10))
	printKeyValue("Attempts", strconv.Itoa(p.Attempts()))
	if res.CacheHit {
		printKeyValue("Rejected", strconv.Itoa(p.Attempts()-p.Len()))
	} else {
		outside, collisions := p.Rejected()
		printKeyValue("Rejected", fmt.Sprintf("%d (%d outside, %d collisions)", outside+collisions, outside, collisions))
	}
	printKeyValue("Coverage", fmt.Sprintf("%.1f%%", 100*p.Coverage(opts.Region)))
	printStats(nil, res.CacheHit)

	if flags.output != "" {
		if err := os.WriteFile(flags.output, res.Document, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		printFile(flags.output)
	}
	return nil
}

// parseRegion parses "xmin,xmax,ymin,ymax".
func parseRegion(s string) (geom.Region, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Region{}, fmt.Errorf("invalid region %q: %w", s, err)
	}
	r := geom.Rect(v[0], v[1], v[2], v[3])
	if !r.Valid() {
		return geom.Region{}, fmt.Errorf("invalid region %q: need xmin < xmax and ymin < ymax", s)
	}
	return r, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (geom.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return geom.Pt(v[0], v[1]), nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
