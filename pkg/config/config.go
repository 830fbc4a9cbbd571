// Package config loads the TOML configuration that drives figure rendering.
//
// Every field has a default that reproduces the manuscript figures, so an
// empty file (or no file at all) is a valid configuration. A file only needs
// to name the values it changes:
//
//	[render]
//	seed = 7
//	formats = ["png", "svg"]
//
//	[packing.uniform]
//	radius = 0.08
//
//	[[packing.hierarchical.clusters]]
//	center = { x = 0.5, y = 0.5 }
//	std_dev = 0.1
//
// Listing clusters replaces the default clusters rather than appending.
package config

import (
	"bytes"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/capfig/pkg/capacity"
	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
	"github.com/matzehuels/capfig/pkg/render"
)

// Config is the full configuration.
type Config struct {
	Render   Render            `toml:"render"`
	Scaling  capacity.Scaling  `toml:"scaling"`
	Reserve  capacity.Reserve  `toml:"reserve"`
	Semantic capacity.Semantic `toml:"semantic"`
	Packing  Packing           `toml:"packing"`
}

// Render controls output.
type Render struct {
	Seed    uint64   `toml:"seed"`
	DPI     int      `toml:"dpi"`
	Output  string   `toml:"output"`
	Formats []string `toml:"formats"`
}

// Packing holds the two regimes of the packing figure.
type Packing struct {
	Uniform      UniformPacking      `toml:"uniform"`
	Hierarchical HierarchicalPacking `toml:"hierarchical"`
}

// UniformPacking is the single-population regime.
type UniformPacking struct {
	Attempts      int         `toml:"attempts"`
	Radius        float64     `toml:"radius"`
	MinDistFactor float64     `toml:"min_dist_factor"`
	Region        geom.Region `toml:"region"`
	Grid          bool        `toml:"grid"`
}

// Options converts the regime into packer options.
func (u UniformPacking) Options() packing.Options {
	return packing.Options{
		Attempts:      u.Attempts,
		Radius:        u.Radius,
		MinDistFactor: u.MinDistFactor,
		Region:        u.Region,
		Index:         indexFor(u.Grid),
	}
}

// HierarchicalPacking is the multi-cluster regime. Attempts apply to each
// cluster.
type HierarchicalPacking struct {
	Attempts       int               `toml:"attempts"`
	Radius         float64           `toml:"radius"`
	MinDistFactor  float64           `toml:"min_dist_factor"`
	Region         geom.Region       `toml:"region"`
	Grid           bool              `toml:"grid"`
	ManifoldRadius float64           `toml:"manifold_radius"`
	Clusters       []packing.Cluster `toml:"clusters"`
}

// Options converts the regime into the base options shared by all clusters.
func (h HierarchicalPacking) Options() packing.Options {
	return packing.Options{
		Attempts:      h.Attempts,
		Radius:        h.Radius,
		MinDistFactor: h.MinDistFactor,
		Region:        h.Region,
		Index:         indexFor(h.Grid),
	}
}

func indexFor(grid bool) packing.Index {
	if grid {
		return packing.IndexGrid
	}
	return packing.IndexExhaustive
}

// Default returns the configuration that reproduces the manuscript figures.
func Default() *Config {
	return &Config{
		Render: Render{
			Seed:    2024,
			DPI:     300,
			Output:  ".",
			Formats: []string{render.PNG},
		},
		Scaling:  capacity.DefaultScaling(),
		Reserve:  capacity.DefaultReserve(),
		Semantic: capacity.DefaultSemantic(),
		Packing: Packing{
			Uniform: UniformPacking{
				Attempts:      2000,
				Radius:        0.11,
				MinDistFactor: 1.5,
				Region:        geom.UnitSquare,
			},
			Hierarchical: HierarchicalPacking{
				Attempts:       1000,
				Radius:         0.11,
				MinDistFactor:  0.6,
				Region:         geom.UnitSquare,
				ManifoldRadius: 0.28,
				Clusters: []packing.Cluster{
					{Center: geom.Pt(0.25, 0.7), StdDev: 0.08},
					{Center: geom.Pt(0.75, 0.65), StdDev: 0.08},
					{Center: geom.Pt(0.4, 0.25), StdDev: 0.08},
				},
			},
		},
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data over Default and validates the result. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	clusters := cfg.Packing.Hierarchical.Clusters
	cfg.Packing.Hierarchical.Clusters = nil
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if !md.IsDefined("packing", "hierarchical", "clusters") {
		cfg.Packing.Hierarchical.Clusters = clusters
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and reports the first problem as
// ErrCodeInvalidConfig.
func (c *Config) Validate() error {
	checks := []struct {
		section string
		fn      func() error
	}{
		{"render", c.Render.validate},
		{"scaling", c.Scaling.Validate},
		{"reserve", c.Reserve.Validate},
		{"semantic", c.Semantic.Validate},
		{"packing.uniform", c.Packing.Uniform.Options().Validate},
		{"packing.hierarchical", c.Packing.Hierarchical.validate},
	}
	for _, chk := range checks {
		if err := chk.fn(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[%s]", chk.section)
		}
	}
	return nil
}

func (r Render) validate() error {
	if r.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must be positive, got %d", r.DPI)
	}
	if r.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}
	if len(r.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one format is required")
	}
	for _, f := range r.Formats {
		if !slices.Contains(render.Formats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", f, strings.Join(render.Formats, ", "))
		}
	}
	return nil
}

func (h HierarchicalPacking) validate() error {
	if err := h.Options().Validate(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("manifold_radius", h.ManifoldRadius); err != nil {
		return err
	}
	if len(h.Clusters) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one cluster is required")
	}
	for i, cl := range h.Clusters {
		opts := h.Options()
		opts.Mode = packing.Gaussian{Center: cl.Center, StdDev: cl.StdDev}
		if err := opts.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "cluster %d", i)
		}
	}
	return nil
}
