package packing

import (
	"iter"
	"math"
	"slices"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
)

// Options configures a packing run.
type Options struct {
	// Attempts is the number of candidate centers drawn. Must be positive.
	Attempts int
	// Radius is the disk radius shared by all disks. Must be positive.
	Radius float64
	// MinDistFactor scales Radius into the minimum center separation.
	// 2 forbids overlap, 0 allows any overlap short of coincident centers.
	MinDistFactor float64
	// Region bounds the disks. Candidates must lie strictly inside the
	// region shrunk by Radius.
	Region geom.Region
	// Mode is the candidate distribution. Nil means Uniform.
	Mode Mode
	// Index selects the neighbour search. Zero value is IndexExhaustive.
	Index Index
}

// MinDist returns Radius * MinDistFactor.
func (o Options) MinDist() float64 {
	return o.Radius * o.MinDistFactor
}

// Validate checks the options without drawing anything.
func (o Options) Validate() error {
	if err := errors.ValidateCount("attempts", o.Attempts); err != nil {
		return err
	}
	if err := errors.ValidatePositive("radius", o.Radius); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("min_dist_factor", o.MinDistFactor); err != nil {
		return err
	}
	if !o.Region.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "region %s must be finite with xmin < xmax and ymin < ymax", o.Region)
	}
	if o.Mode != nil {
		if err := o.Mode.validate(); err != nil {
			return err
		}
	}
	switch o.Index {
	case IndexExhaustive, IndexGrid:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown index %d", o.Index)
	}
	return nil
}

// Packing is the result of a packing run. It is immutable once returned.
type Packing struct {
	centers    []geom.Point
	radius     float64
	minDist    float64
	attempts   int
	outside    int
	collisions int
}

// Pack runs rejection sampling with the given options, drawing every
// candidate from src. It performs exactly opts.Attempts candidate
// evaluations and returns the accepted centers in acceptance order.
//
// A region too small to hold any disk is not an error: every candidate is
// rejected and the returned Packing is empty.
func Pack(src Source, opts Options) (*Packing, error) {
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "random source is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == nil {
		mode = Uniform{}
	}
	inset := opts.Region.Inset(opts.Radius)
	minDist := opts.MinDist()
	idx := newIndex(opts.Index, minDist)

	p := &Packing{
		radius:   opts.Radius,
		minDist:  minDist,
		attempts: opts.Attempts,
	}
	for range opts.Attempts {
		c := mode.sample(src, inset)
		if !inset.ContainsStrict(c) {
			p.outside++
			continue
		}
		if idx.conflicts(c) {
			p.collisions++
			continue
		}
		idx.insert(c)
		p.centers = append(p.centers, c)
	}
	return p, nil
}

// Restore rebuilds a Packing from previously exported centers. The centers
// must honour the separation invariant for minDist.
func Restore(centers []geom.Point, radius, minDist float64, attempts int) (*Packing, error) {
	if err := errors.ValidatePositive("radius", radius); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("min_dist", minDist); err != nil {
		return nil, err
	}
	if attempts < len(centers) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "attempts %d is less than the %d centers", attempts, len(centers))
	}
	for i, c := range centers {
		if err := errors.ValidateFinite("center", c.X); err != nil {
			return nil, err
		}
		if err := errors.ValidateFinite("center", c.Y); err != nil {
			return nil, err
		}
		for _, q := range centers[:i] {
			if d := c.Dist(q); d < minDist || d == 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"centers %s and %s are %g apart, below min_dist %g", q, c, d, minDist)
			}
		}
	}
	return &Packing{
		centers:  slices.Clone(centers),
		radius:   radius,
		minDist:  minDist,
		attempts: attempts,
	}, nil
}

// Len returns the number of accepted disks.
func (p *Packing) Len() int { return len(p.centers) }

// At returns the i-th accepted center.
func (p *Packing) At(i int) geom.Point { return p.centers[i] }

// Centers returns a copy of the accepted centers in acceptance order.
func (p *Packing) Centers() []geom.Point { return slices.Clone(p.centers) }

// All iterates over the accepted centers in acceptance order.
func (p *Packing) All() iter.Seq2[int, geom.Point] {
	return func(yield func(int, geom.Point) bool) {
		for i, c := range p.centers {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Radius returns the disk radius of the run.
func (p *Packing) Radius() float64 { return p.radius }

// MinDist returns the minimum center separation of the run.
func (p *Packing) MinDist() float64 { return p.minDist }

// Attempts returns the number of candidates drawn.
func (p *Packing) Attempts() int { return p.attempts }

// Rejected returns how many candidates fell outside the inset region and
// how many collided with an accepted center.
func (p *Packing) Rejected() (outside, collisions int) {
	return p.outside, p.collisions
}

// Coverage returns the fraction of region covered by the disks, counting
// overlaps twice. It is only a measure of density, not of union area.
func (p *Packing) Coverage(region geom.Region) float64 {
	a := region.Area()
	if a == 0 {
		return 0
	}
	return float64(len(p.centers)) * math.Pi * p.radius * p.radius / a
}
