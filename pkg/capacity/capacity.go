// Package capacity implements the closed-form memory-capacity models drawn
// in the phase-transition and supply-demand figures.
//
// All capacities are in log10 units. Populations N are raw neuron counts.
package capacity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Uniform saturation: the curve flattens once log10 N passes saturationStart.
const (
	saturationStart = 4.5
	saturationSlope = 3.0
	saturationScale = 2.5
)

// Hierarchical maturity switch and the tax paid before it opens.
const (
	maturitySteepness = 5.0
	infrastructureTax = 5.0
)

// UniformLogCapacity returns the log capacity of a uniform random code with
// n neurons, concept sparsity m and slope k. Growth is (k+1) decades per
// decade of n, damped by a soft saturation penalty past 10^4.5 neurons.
func UniformLogCapacity(n, m, k float64) float64 {
	ln := math.Log10(n)
	base := (k + 1) * (ln - math.Log10(m))
	penalty := saturationScale * math.Log10(1+math.Exp(saturationSlope*(ln-saturationStart)))
	return base - penalty
}

// Maturity is the sigmoid that releases the local gain of a hierarchical
// code as n grows past the local module size nloc.
func Maturity(n, nloc float64) float64 {
	return 1 / (1 + math.Exp(-maturitySteepness*(math.Log10(n)-math.Log10(nloc))))
}

// HierarchicalLogCapacity returns the log capacity of a hierarchical code:
// global addressing across modules of size nloc, plus the local gain of each
// module gated by Maturity, minus a tax that vanishes as the structure
// matures.
func HierarchicalLogCapacity(n, nloc, m, kinter, kintra float64) float64 {
	global := (kinter + 1) * (math.Log10(n) - math.Log10(nloc))
	local := (kintra + 1) * (math.Log10(nloc) - math.Log10(m))
	mat := Maturity(n, nloc)
	return global + local*mat - infrastructureTax*(1-mat)
}

// LogSpace returns n values spaced evenly in log10 between 10^lo and 10^hi.
func LogSpace(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), math.Pow(10, lo), math.Pow(10, hi))
}

// LinSpace returns n values spaced evenly between lo and hi inclusive.
func LinSpace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Crossing returns the first index i at which b[i] > a[i]. ok is false
// if b never exceeds a.
func Crossing(a, b []float64) (i int, ok bool) {
	for i := range min(len(a), len(b)) {
		if b[i]-a[i] > 0 {
			return i, true
		}
	}
	return 0, false
}

type param struct {
	name  string
	value float64
}

func validateAll(check func(string, float64) error, params ...param) error {
	for _, p := range params {
		if err := check(p.name, p.value); err != nil {
			return err
		}
	}
	return nil
}
