// Package pramana measures how well a closed-form option pricing model
// reproduces observed market prices over a historical dataset.
package pramana

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/pramanalabs/pramana/logger"
	"github.com/pramanalabs/pramana/models"
	"github.com/pramanalabs/pramana/options"
)

// RunValidation prices every quote, compares each model price against the
// observed market price and aggregates the deviations into an accuracy
// summary.
//
// Record failures (invalid kind, degenerate volatility, non-finite inputs)
// never abort the run: the record keeps its place in the totals as an
// undefined sample and the failure is counted by reason. One sample enters
// the aggregator per quote, always.
func RunValidation(quotes []*models.OptionQuote, cfg models.Config) models.ValidationResult {
	start := time.Now()
	runID := uuid.New().String()
	logger.Infof("Running validation on %v quotes (run %v)\n", len(quotes), runID)

	samples := make([]models.KindedSample, 0, len(quotes))
	rows := make([]*models.RecordRow, 0, len(quotes))
	var failures models.FailureCounts

	for _, quote := range quotes {
		row := &models.RecordRow{
			Symbol:        quote.Symbol,
			Timestamp:     quote.Timestamp,
			Kind:          quote.Kind,
			Spot:          quote.Spot,
			Strike:        quote.Strike,
			TimeToExpiry:  quote.TimeToExpiry,
			ObservedPrice: quote.ObservedPrice,
		}

		sample, err := priceQuote(quote)
		if err != nil {
			countFailure(&failures, err)
			row.Failure = models.FailureReason(err)
			logger.Debugf("Record failure (%v): %v\n", row.Failure, err)
		} else {
			failures.Succeeded++
			row.TheoPrice = sample.theo
			row.PricingError = sample.sample.SignedError
			row.PercentageError = sample.sample.PercentageError
			row.AbsPercentageError = sample.sample.AbsPercentageError
			row.Defined = sample.sample.Defined
		}

		samples = append(samples, models.KindedSample{Sample: sample.sample, Kind: quote.Kind})
		rows = append(rows, row)
	}

	result := models.ValidationResult{
		RunID:        runID,
		Summary:      Summarize(samples),
		Distribution: BuildHistogram(samples, cfg.HistogramBins),
		Rows:         rows,
		Failures:     failures,
		Runtime:      time.Since(start),
	}

	if cfg.LogStats {
		logSummary(result)
	}
	if cfg.LogResults {
		if err := WriteRecordsCSV(cfg.ResultsFile, rows); err != nil {
			logger.Errorf("Error writing record rows to %v: %v\n", cfg.ResultsFile, err)
		}
	}
	if cfg.LogCloudResults {
		logCloudValidation(result, cfg)
	}
	return result
}

type pricedSample struct {
	theo   float64
	sample models.ErrorSample
}

// priceQuote runs the per-record pipeline: model price, then error sample.
// On failure the returned sample is the zero (undefined) sample so the
// caller can keep the record in the totals.
func priceQuote(quote *models.OptionQuote) (pricedSample, error) {
	theo, err := options.Price(quote.Spot, quote.Strike, quote.TimeToExpiry, quote.Rate, quote.Volatility, quote.Kind)
	if err != nil {
		return pricedSample{}, err
	}
	sample, err := ComputeError(theo, quote.ObservedPrice)
	if err != nil {
		return pricedSample{}, err
	}
	return pricedSample{theo: theo, sample: sample}, nil
}

func countFailure(failures *models.FailureCounts, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidOptionKind):
		failures.InvalidKind++
	case errors.Is(err, models.ErrDegenerateVolatility):
		failures.DegenerateVolatility++
	default:
		failures.InvalidInput++
	}
}

// MeanAbsoluteError reprices all quotes under the given constant rate and
// volatility and returns the mean absolute percentage error of the defined
// subset. The input quotes are copied before the override so repeated trial
// evaluations never disturb the caller's data. Used as the calibration
// objective; when nothing can be priced it returns a large penalty instead
// of an undefined value so a minimizer always has a gradient to walk away
// from.
func MeanAbsoluteError(quotes []*models.OptionQuote, rate, volatility float64) float64 {
	var trial []*models.OptionQuote
	if err := copier.Copy(&trial, &quotes); err != nil {
		logger.Errorf("Error copying quotes for trial run: %v\n", err)
		return penaltyError
	}

	var absPct []float64
	for _, quote := range trial {
		quote.Rate = rate
		quote.Volatility = volatility
		sample, err := priceQuote(quote)
		if err != nil || !sample.sample.Defined {
			continue
		}
		absPct = append(absPct, sample.sample.AbsPercentageError)
	}
	if len(absPct) == 0 {
		return penaltyError
	}
	sum := 0.0
	for _, v := range absPct {
		sum += v
	}
	return sum / float64(len(absPct))
}

const penaltyError = 1e9
