package capacity

import (
	"math"

	"github.com/matzehuels/capfig/pkg/errors"
)

// Scaling holds the parameters of the phase-transition figure.
type Scaling struct {
	M      float64 `toml:"m" json:"m"`             // concept sparsity
	NLoc   float64 `toml:"n_loc" json:"n_loc"`     // local module size
	K      float64 `toml:"k" json:"k"`             // uniform slope
	KInter float64 `toml:"k_inter" json:"k_inter"` // hierarchical base slope
	KIntra float64 `toml:"k_intra" json:"k_intra"` // hierarchical local gain slope

	// Population range in log10 and number of samples.
	LogNMin float64 `toml:"log_n_min" json:"log_n_min"`
	LogNMax float64 `toml:"log_n_max" json:"log_n_max"`
	Points  int     `toml:"points" json:"points"`
}

// DefaultScaling returns the manuscript parameters.
func DefaultScaling() Scaling {
	return Scaling{
		M:       40,
		NLoc:    8000,
		K:       3.5,
		KInter:  2,
		KIntra:  25,
		LogNMin: 2,
		LogNMax: 7,
		Points:  1000,
	}
}

// Validate reports the first invalid parameter.
func (s Scaling) Validate() error {
	if err := validateAll(errors.ValidatePositive, param{"m", s.M}, param{"n_loc", s.NLoc}); err != nil {
		return err
	}
	if err := validateAll(errors.ValidateNonNegative,
		param{"k", s.K}, param{"k_inter", s.KInter}, param{"k_intra", s.KIntra}); err != nil {
		return err
	}
	if err := validateAll(errors.ValidateFinite, param{"log_n_min", s.LogNMin}, param{"log_n_max", s.LogNMax}); err != nil {
		return err
	}
	if s.LogNMin >= s.LogNMax {
		return errors.New(errors.ErrCodeInvalidInput, "log_n_min %g must be below log_n_max %g", s.LogNMin, s.LogNMax)
	}
	if s.Points < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "points must be at least 2, got %d", s.Points)
	}
	return nil
}

// Curves are the sampled capacity curves of a Scaling.
type Curves struct {
	N            []float64
	Uniform      []float64
	Hierarchical []float64
}

// Curves samples both capacity models over the configured population range.
func (s Scaling) Curves() Curves {
	n := LogSpace(s.LogNMin, s.LogNMax, s.Points)
	c := Curves{
		N:            n,
		Uniform:      make([]float64, len(n)),
		Hierarchical: make([]float64, len(n)),
	}
	for i, v := range n {
		c.Uniform[i] = UniformLogCapacity(v, s.M, s.K)
		c.Hierarchical[i] = HierarchicalLogCapacity(v, s.NLoc, s.M, s.KInter, s.KIntra)
	}
	return c
}

// Transition is the phase-transition point N_c.
type Transition struct {
	Index int     // sample index, -1 when not found
	N     float64 // population at the crossing
	LogC  float64 // uniform log capacity at the crossing
	Found bool
}

// LogN returns log10 of the crossing population.
func (t Transition) LogN() float64 { return math.Log10(t.N) }

// Crossing locates the first sample where the hierarchical code overtakes
// the uniform one. When the curves never cross it returns the fallback
// point N = 10^4, log C = 10 with Found false.
func (c Curves) Crossing() Transition {
	i, ok := Crossing(c.Uniform, c.Hierarchical)
	if !ok {
		return Transition{Index: -1, N: 1e4, LogC: 10}
	}
	return Transition{Index: i, N: c.N[i], LogC: c.Uniform[i], Found: true}
}
