package utils

import (
	"math"
	"testing"
)

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }
func (f fixed) Intn(n int) int   { return int(float64(f) * float64(n)) }

func TestChooseWeighted(t *testing.T) {
	weights := []float64{1, 0, 3}
	tests := []struct {
		roll float64
		want int
	}{
		{0, 0},
		{0.24, 0},
		{0.25, 2},
		{0.99, 2},
	}
	for _, tt := range tests {
		if got := ChooseWeighted(fixed(tt.roll), weights); got != tt.want {
			t.Errorf("roll %v: got %d, want %d", tt.roll, got, tt.want)
		}
	}
	if got := ChooseWeighted(fixed(0.5), nil); got != -1 {
		t.Errorf("empty weights: got %d", got)
	}
	if got := ChooseWeighted(fixed(0.5), []float64{0, -1}); got != 0 {
		t.Errorf("no positive weight: got %d", got)
	}
}

func TestSampleDistinct(t *testing.T) {
	r := NewPRNGService(42)
	for range 50 {
		got := Sample(r, 10, 4)
		if len(got) != 4 {
			t.Fatalf("len = %d", len(got))
		}
		seen := map[int]bool{}
		for _, i := range got {
			if i < 0 || i >= 10 || seen[i] {
				t.Fatalf("bad sample %v", got)
			}
			seen[i] = true
		}
	}
	if got := Sample(r, 2, 5); len(got) != 2 {
		t.Errorf("k above n: %v", got)
	}
	if got := Sample(r, 3, 0); got != nil {
		t.Errorf("k = 0: %v", got)
	}
}

func TestSeededServiceRepeats(t *testing.T) {
	a, b := NewPRNGService(9), NewPRNGService(9)
	for range 10 {
		if a.Float64() != b.Float64() || a.Intn(100) != b.Intn(100) {
			t.Fatal("same seed diverged")
		}
	}
	if a.Intn(0) != 0 || a.Intn(-3) != 0 {
		t.Error("Intn of non-positive n")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi / 2); math.Abs(got+math.Pi/2) > 1e-9 {
		t.Errorf("got %v", got)
	}
	if got := NormalizeAngle(-5 * math.Pi / 2); math.Abs(got+math.Pi/2) > 1e-9 {
		t.Errorf("got %v", got)
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Error("Lerp")
	}
}
