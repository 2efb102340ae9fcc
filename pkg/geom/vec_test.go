package geom

import (
	"math"
	"testing"
)

func TestNormalizeOrFallsBackOnDegenerateVectors(t *testing.T) {
	fallback := V(0, -1)
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero", V(0, 0), fallback},
		{"nan", V(math.NaN(), 1), fallback},
		{"inf", V(math.Inf(1), 0), fallback},
		{"regular", V(3, 4), V(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.NormalizeOr(fallback)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("NormalizeOr(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDefaultsToPositiveX(t *testing.T) {
	if got := V(0, 0).Normalize(); got != DefaultHeading {
		t.Errorf("Normalize(zero) = %v, want %v", got, DefaultHeading)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotate = %v, want (0, 1)", got)
	}
}

func TestSegmentDistance(t *testing.T) {
	along, perp := SegmentDistance(V(0, 0), V(1, 0), V(5, -3))
	if along != 5 || perp != 3 {
		t.Errorf("SegmentDistance = (%v, %v), want (5, 3)", along, perp)
	}
	along, _ = SegmentDistance(V(0, 0), V(1, 0), V(-2, 1))
	if along >= 0 {
		t.Errorf("point behind the origin should have negative along, got %v", along)
	}
}

func TestRectClampAndContains(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}
	if got := r.Clamp(V(-5, 25)); got != V(0, 20) {
		t.Errorf("Clamp = %v, want (0, 20)", got)
	}
	if !r.Contains(V(10, 0)) {
		t.Error("edges should be contained")
	}
	if r.Contains(V(10.01, 5)) {
		t.Error("point outside reported as contained")
	}
}
