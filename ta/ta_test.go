package ta

import (
	"math"
	"testing"
)

func TestLogReturns(t *testing.T) {
	returns := LogReturns([]float64{100, 110, 99})
	if len(returns) != 2 {
		t.Fatalf("got %v returns for 3 closes, want 2", len(returns))
	}
	if math.Abs(returns[0]-math.Log(1.1)) > 1e-12 {
		t.Errorf("first return = %v, want ln(1.1)", returns[0])
	}
	if LogReturns([]float64{100}) != nil {
		t.Error("one close has no return")
	}
}

func TestCloseToCloseVolConstantSeries(t *testing.T) {
	// A flat series and a constant-growth series both have zero variance in
	// log returns, so zero volatility.
	flat := []float64{100, 100, 100, 100, 100, 100}
	growth := []float64{100, 101, 102.01, 103.0301, 104.060401}

	if vol := LatestVol(flat, 3); vol != 0 {
		t.Errorf("flat series volatility = %v, want 0", vol)
	}
	if vol := LatestVol(growth, 3); math.Abs(vol) > 1e-9 {
		t.Errorf("constant-growth series volatility = %v, want ~0", vol)
	}
}

func TestCloseToCloseVol(t *testing.T) {
	closes := []float64{17625.70, 17805.25, 17745.90, 17925.25, 17605.85, 17745.00, 18003.75}
	window := 5

	vol := CloseToCloseVol(closes, window)
	if len(vol) != len(closes)-1 {
		t.Fatalf("got %v rolling values for %v returns, want %v", len(vol), len(closes)-1, len(closes)-1)
	}
	latest := vol[len(vol)-1]
	if latest <= 0 {
		t.Errorf("volatility over a moving series = %v, want > 0", latest)
	}
	// Index-level close-to-close vol should land in a plausible annualized
	// band, not at per-day scale.
	if latest > 2 {
		t.Errorf("annualized volatility = %v, implausibly large", latest)
	}
	if got := LatestVol(closes, window); got != latest {
		t.Errorf("LatestVol = %v, want the last rolling value %v", got, latest)
	}
}

func TestCloseToCloseVolShortSeries(t *testing.T) {
	if vol := CloseToCloseVol([]float64{100, 101}, 5); vol != nil {
		t.Errorf("series shorter than the window gave %v, want nil", vol)
	}
	if vol := LatestVol([]float64{100, 101}, 5); vol != 0 {
		t.Errorf("LatestVol on a short series = %v, want 0", vol)
	}
}
