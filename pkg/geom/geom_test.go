package geom

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(0.3, 0.4), Pt(0.3, 0.4), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"symmetric", Pt(3, 4), Pt(0, 0), 5},
		{"horizontal", Pt(-1, 2), Pt(1, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Dist(tt.q); math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("Dist() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionInset(t *testing.T) {
	r := UnitSquare.Inset(0.11)
	want := Rect(0.11, 0.89, 0.11, 0.89)
	if r != want {
		t.Errorf("Inset(0.11) = %v, want %v", r, want)
	}
	if r.Empty() {
		t.Error("inset unit square should not be empty")
	}

	if !UnitSquare.Inset(0.5).Empty() {
		t.Error("inset by half the width should be empty")
	}
	if !UnitSquare.Inset(0.7).Empty() {
		t.Error("inverted inset should be empty")
	}
}

func TestRegionContainsStrict(t *testing.T) {
	r := Rect(0, 1, 0, 2)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(0.5, 1), true},
		{"left edge", Pt(0, 1), false},
		{"right edge", Pt(1, 1), false},
		{"bottom edge", Pt(0.5, 0), false},
		{"top edge", Pt(0.5, 2), false},
		{"outside", Pt(1.5, 1), false},
		{"corner", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsStrict(tt.p); got != tt.want {
				t.Errorf("ContainsStrict(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRegionValid(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		want bool
	}{
		{"unit", UnitSquare, true},
		{"zero width", Rect(1, 1, 0, 1), false},
		{"inverted", Rect(1, 0, 0, 1), false},
		{"nan", Rect(math.NaN(), 1, 0, 1), false},
		{"inf", Rect(0, math.Inf(1), 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionMeasures(t *testing.T) {
	r := Rect(-1, 3, 0, 3)
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("Width, Height = %v, %v, want 4, 3", r.Width(), r.Height())
	}
	if r.Area() != 12 {
		t.Errorf("Area() = %v, want 12", r.Area())
	}
	if r.Diagonal() != 5 {
		t.Errorf("Diagonal() = %v, want 5", r.Diagonal())
	}
	if c := r.Center(); c != Pt(1, 1.5) {
		t.Errorf("Center() = %v, want (1, 1.5)", c)
	}
	if a := UnitSquare.Inset(0.6).Area(); a != 0 {
		t.Errorf("empty Area() = %v, want 0", a)
	}
}
