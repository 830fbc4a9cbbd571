package capacity

import (
	"math"

	"github.com/matzehuels/capfig/pkg/errors"
)

// Reserve holds the parameters of the supply-versus-demand model under
// neuronal loss.
type Reserve struct {
	CReq       float64 `toml:"c_req" json:"c_req"`               // demand, normalised
	R          float64 `toml:"redundancy" json:"redundancy"`     // hierarchical surplus at f=0
	Alpha      float64 `toml:"alpha" json:"alpha"`               // power-law decay exponent
	RUniform   float64 `toml:"r_uniform" json:"r_uniform"`       // uniform supply at f=0
	MaxLossPct float64 `toml:"max_loss_pct" json:"max_loss_pct"` // x-axis extent in percent
	Points     int     `toml:"points" json:"points"`
}

// DefaultReserve returns the manuscript parameters.
func DefaultReserve() Reserve {
	return Reserve{
		CReq:       1,
		R:          50,
		Alpha:      18,
		RUniform:   0.2,
		MaxLossPct: 45,
		Points:     1000,
	}
}

// Validate reports the first invalid parameter.
func (r Reserve) Validate() error {
	if err := validateAll(errors.ValidatePositive,
		param{"c_req", r.CReq}, param{"redundancy", r.R}, param{"alpha", r.Alpha}, param{"max_loss_pct", r.MaxLossPct}); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("r_uniform", r.RUniform); err != nil {
		return err
	}
	if r.MaxLossPct > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "max_loss_pct must be at most 100, got %g", r.MaxLossPct)
	}
	if r.Points < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "points must be at least 2, got %d", r.Points)
	}
	return nil
}

// HierarchicalSupply returns R(1-f)^alpha for loss fraction f.
func (r Reserve) HierarchicalSupply(f float64) float64 {
	return r.R * math.Pow(1-f, r.Alpha)
}

// UniformSupply returns Ru(1-f) for loss fraction f.
func (r Reserve) UniformSupply(f float64) float64 {
	return r.RUniform * (1 - f)
}

// CliffEdge returns the loss fraction at which hierarchical supply falls to
// demand. It is 0 when the code starts below demand.
func (r Reserve) CliffEdge() float64 {
	if r.R <= r.CReq {
		return 0
	}
	return 1 - math.Pow(r.CReq/r.R, 1/r.Alpha)
}

// SupplyCurves are the sampled supply curves, indexed by loss in percent.
type SupplyCurves struct {
	LossPct      []float64
	Hierarchical []float64
	Uniform      []float64
}

// Curves samples both supply curves from 0 to MaxLossPct.
func (r Reserve) Curves() SupplyCurves {
	pct := LinSpace(0, r.MaxLossPct, r.Points)
	c := SupplyCurves{
		LossPct:      pct,
		Hierarchical: make([]float64, len(pct)),
		Uniform:      make([]float64, len(pct)),
	}
	for i, p := range pct {
		f := p / 100
		c.Hierarchical[i] = r.HierarchicalSupply(f)
		c.Uniform[i] = r.UniformSupply(f)
	}
	return c
}
