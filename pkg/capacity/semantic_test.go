package capacity

import (
	"testing"

	"github.com/matzehuels/capfig/pkg/errors"
)

func TestSemanticOverlap(t *testing.T) {
	s := DefaultSemantic()
	tests := []struct {
		name string
		d    Densities
		sd   float64
		want float64
	}{
		{"sharp", s.Sharp(), s.SharpSD, 0.012416031192096395},
		{"degraded", s.Degraded(), s.DegradedSD, 0.2665081546613036},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.d.Area, tt.want, 1e-9) {
				t.Errorf("Area = %v, want %v", tt.d.Area, tt.want)
			}
			if exact := s.ExactOverlap(tt.sd); !approx(tt.d.Area, exact, 1e-4) {
				t.Errorf("Area = %v, closed form %v", tt.d.Area, exact)
			}
			for i := range tt.d.X {
				if tt.d.Overlap[i] > tt.d.A[i] || tt.d.Overlap[i] > tt.d.B[i] {
					t.Fatalf("overlap exceeds a density at %d", i)
				}
			}
		})
	}

	if s.Degraded().Area <= s.Sharp().Area {
		t.Error("degraded concepts should overlap more")
	}
}

func TestSemanticValidate(t *testing.T) {
	if err := DefaultSemantic().Validate(); err != nil {
		t.Fatalf("default Validate() error: %v", err)
	}
	s := DefaultSemantic()
	s.SharpSD = 0
	if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero sd: Validate() = %v", err)
	}
	s = DefaultSemantic()
	s.XMin = 9
	if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("inverted axis: Validate() = %v", err)
	}
}
