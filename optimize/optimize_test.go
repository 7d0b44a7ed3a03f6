package optimize

import (
	"math"
	"testing"
)

func TestDiffEvoOptimize(t *testing.T) {
	evaluate := func(x []float64) float64 {
		return math.Pow(x[0]-1, 2) + math.Pow(x[1]+2, 2)
	}
	x, y := DiffEvoOptimize(evaluate, []float64{-5, -5}, []float64{5, 5})
	if x == nil {
		t.Fatal("minimization returned no solution")
	}
	if math.Abs(x[0]-1) > 0.1 || math.Abs(x[1]+2) > 0.1 {
		t.Errorf("minimum found at (%v, %v), want near (1, -2)", x[0], x[1])
	}
	if y > 0.05 {
		t.Errorf("objective at the minimum = %v, want near 0", y)
	}
}
