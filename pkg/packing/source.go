package packing

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
)

// Source supplies the random draws consumed by the packer.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
}

// NewSource returns a PCG-backed generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// StreamSource returns the generator for stream i of seed. Distinct streams
// of the same seed are statistically independent.
func StreamSource(seed uint64, i int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, (uint64(i)+1)*0x9e3779b97f4a7c15))
}

// Mode selects the distribution candidates are drawn from.
type Mode interface {
	// sample draws one candidate. inset is the region already shrunk by the
	// disk radius.
	sample(src Source, inset geom.Region) geom.Point
	validate() error
	String() string
}

// Uniform draws candidates uniformly over the inset region.
type Uniform struct{}

func (Uniform) sample(src Source, inset geom.Region) geom.Point {
	w, h := inset.XMax-inset.XMin, inset.YMax-inset.YMin
	x := inset.XMin + w*src.Float64()
	y := inset.YMin + h*src.Float64()
	return geom.Point{X: x, Y: y}
}

func (Uniform) validate() error { return nil }

func (Uniform) String() string { return "uniform" }

// Gaussian draws candidates from an isotropic normal distribution.
type Gaussian struct {
	Center geom.Point
	StdDev float64
}

func (g Gaussian) sample(src Source, _ geom.Region) geom.Point {
	x := g.Center.X + g.StdDev*src.NormFloat64()
	y := g.Center.Y + g.StdDev*src.NormFloat64()
	return geom.Point{X: x, Y: y}
}

func (g Gaussian) validate() error {
	if err := errors.ValidateFinite("center.x", g.Center.X); err != nil {
		return err
	}
	if err := errors.ValidateFinite("center.y", g.Center.Y); err != nil {
		return err
	}
	return errors.ValidateNonNegative("std_dev", g.StdDev)
}

func (g Gaussian) String() string {
	return fmt.Sprintf("gaussian(%g, %g; std=%g)", g.Center.X, g.Center.Y, g.StdDev)
}
