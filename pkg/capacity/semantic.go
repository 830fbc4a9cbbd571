package capacity

import (
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matzehuels/capfig/pkg/errors"
)

// Semantic describes two concept densities along one feature axis, drawn
// once with sharp tuning and once degraded.
type Semantic struct {
	MuA        float64 `toml:"mu_a" json:"mu_a"`
	MuB        float64 `toml:"mu_b" json:"mu_b"`
	SharpSD    float64 `toml:"sharp_sd" json:"sharp_sd"`
	DegradedSD float64 `toml:"degraded_sd" json:"degraded_sd"`
	XMin       float64 `toml:"x_min" json:"x_min"`
	XMax       float64 `toml:"x_max" json:"x_max"`
	Points     int     `toml:"points" json:"points"`
}

// DefaultSemantic returns the manuscript parameters.
func DefaultSemantic() Semantic {
	return Semantic{
		MuA:        0,
		MuB:        4,
		SharpSD:    0.8,
		DegradedSD: 1.8,
		XMin:       -4,
		XMax:       8,
		Points:     500,
	}
}

// Validate reports the first invalid parameter.
func (s Semantic) Validate() error {
	if err := validateAll(errors.ValidatePositive, param{"sharp_sd", s.SharpSD}, param{"degraded_sd", s.DegradedSD}); err != nil {
		return err
	}
	if err := validateAll(errors.ValidateFinite,
		param{"mu_a", s.MuA}, param{"mu_b", s.MuB}, param{"x_min", s.XMin}, param{"x_max", s.XMax}); err != nil {
		return err
	}
	if s.XMin >= s.XMax {
		return errors.New(errors.ErrCodeInvalidInput, "x_min %g must be below x_max %g", s.XMin, s.XMax)
	}
	if s.Points < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "points must be at least 2, got %d", s.Points)
	}
	return nil
}

// Densities are two concept densities and their pointwise overlap sampled
// on a common axis.
type Densities struct {
	X       []float64
	A       []float64
	B       []float64
	Overlap []float64 // min(A, B)
	Area    float64   // trapezoid integral of Overlap
}

// Densities samples both concepts with standard deviation sd.
func (s Semantic) Densities(sd float64) Densities {
	x := LinSpace(s.XMin, s.XMax, s.Points)
	a := distuv.Normal{Mu: s.MuA, Sigma: sd}
	b := distuv.Normal{Mu: s.MuB, Sigma: sd}
	d := Densities{
		X:       x,
		A:       make([]float64, len(x)),
		B:       make([]float64, len(x)),
		Overlap: make([]float64, len(x)),
	}
	for i, v := range x {
		d.A[i] = a.Prob(v)
		d.B[i] = b.Prob(v)
		d.Overlap[i] = min(d.A[i], d.B[i])
	}
	d.Area = integrate.Trapezoidal(x, d.Overlap)
	return d
}

// Sharp samples the sharply tuned concepts.
func (s Semantic) Sharp() Densities { return s.Densities(s.SharpSD) }

// Degraded samples the degraded concepts.
func (s Semantic) Degraded() Densities { return s.Densities(s.DegradedSD) }

// ExactOverlap returns the closed-form overlap area of two equal-width
// normal densities with standard deviation sd.
func (s Semantic) ExactOverlap(sd float64) float64 {
	half := (s.MuB - s.MuA) / 2
	if half < 0 {
		half = -half
	}
	return 2 * distuv.Normal{Mu: 0, Sigma: sd}.CDF(-half)
}
