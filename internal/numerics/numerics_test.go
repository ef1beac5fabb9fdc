package numerics

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestDiffOfProducts(t *testing.T) {
	tests := []struct {
		name             string
		a, b, c, d       float64
		expected         float64
		epsilon          float64
	}{
		{"simple", 3, 4, 1, 2, 10, 1e-12},
		{"near-cancellation", 1e8 + 1, 1e8 - 1, 1e8, 1e8, -1, 1e-3},
		{"zero", 0, 0, 0, 0, 0, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffOfProducts(tt.a, tt.b, tt.c, tt.d)
			if !almostEqual(got, tt.expected, tt.epsilon) {
				t.Errorf("DiffOfProducts(%v,%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, tt.d, got, tt.expected)
			}
		})
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, a2     float64
		expected       []float64
		epsilon        float64
	}{
		{"two roots", -6, -1, 1, []float64{-2, 3}, 1e-9},
		{"double root", 1, -2, 1, []float64{1}, 1e-9},
		{"no real roots", 1, 0, 1, nil, 0},
		{"linear fallback", -4, 2, 0, []float64{2}, 1e-9},
		{"degenerate", 0, 0, 0, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a0, tt.a1, tt.a2)
			verifyRoots(t, got, tt.expected, tt.epsilon)
		})
	}
}

func TestSolveCubic(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, a2, a3 float64
		expected       []float64
		epsilon        float64
	}{
		// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
		{"three real roots", -6, 11, -6, 1, []float64{1, 2, 3}, 1e-6},
		// x^3 - 1 = (x-1)(x^2+x+1), single real root at 1
		{"one real root", -1, 0, 0, 1, []float64{1}, 1e-6},
		// cubic coefficient negligible: falls back to quadratic x^2-1=0
		{"quadratic fallback", -1, 0, 1, 0, []float64{-1, 1}, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []float64
			SolveCubic(tt.a0, tt.a1, tt.a2, tt.a3, func(r float64) {
				got = append(got, r)
			}, 1e-9)
			verifyRoots(t, got, tt.expected, tt.epsilon)
		})
	}
}

func verifyRoots(t *testing.T, got, want []float64, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d roots %v, want %d roots %v", len(got), got, len(want), want)
	}
	sort.Float64s(got)
	sortedWant := append([]float64(nil), want...)
	sort.Float64s(sortedWant)
	for i := range got {
		if !almostEqual(got[i], sortedWant[i], epsilon) {
			t.Errorf("root[%d] = %v, want %v", i, got[i], sortedWant[i])
		}
	}
}
