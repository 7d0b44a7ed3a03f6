package pramana

import (
	"fmt"
	"math"

	"github.com/pramanalabs/pramana/models"
)

// ComputeError compares a model price against an observed market price.
//
// A zero observed price leaves the percentage fields undefined rather than
// producing an infinity that would poison every downstream mean; the record
// still counts toward the run totals. Non-finite inputs are a per-record
// invalid-input failure, never a half-defined sample.
func ComputeError(theo, observed float64) (models.ErrorSample, error) {
	if math.IsNaN(theo) || math.IsInf(theo, 0) || math.IsNaN(observed) || math.IsInf(observed, 0) {
		return models.ErrorSample{}, fmt.Errorf("computing error for theo %v vs observed %v: %w", theo, observed, models.ErrInvalidInput)
	}

	sample := models.ErrorSample{SignedError: theo - observed}
	if observed != 0 {
		sample.PercentageError = sample.SignedError / observed * 100
		sample.AbsPercentageError = math.Abs(sample.PercentageError)
		sample.Defined = true
	}
	return sample, nil
}
