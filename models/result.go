package models

import "time"

// FailureCounts tracks per-record failures by reason. Failed records stay in
// the run's total counts; they are only excluded from pricing statistics.
type FailureCounts struct {
	Succeeded            int
	InvalidKind          int
	DegenerateVolatility int
	InvalidInput         int
}

// Failed is the number of records that could not be priced.
func (f FailureCounts) Failed() int {
	return f.InvalidKind + f.DegenerateVolatility + f.InvalidInput
}

// A RecordRow is the flattened (quote, model price, error sample) triple for
// one record, in a shape gocsv can write directly.
type RecordRow struct {
	Symbol             string     `csv:"symbol"`
	Timestamp          int64      `csv:"timestamp"`
	Kind               OptionKind `csv:"kind"`
	Spot               float64    `csv:"spot"`
	Strike             float64    `csv:"strike"`
	TimeToExpiry       float64    `csv:"time_to_expiry"`
	ObservedPrice      float64    `csv:"observed_price"`
	TheoPrice          float64    `csv:"theo_price"`
	PricingError       float64    `csv:"pricing_error"`
	PercentageError    float64    `csv:"percentage_error"`
	AbsPercentageError float64    `csv:"absolute_percentage_error"`
	Defined            bool       `csv:"defined"`
	Failure            string     `csv:"failure"`
}

// A ValidationResult is everything a run produces: the aggregate summary,
// the error distribution, the per-record detail rows and the failure
// bookkeeping. The engine returns this value and never formats or plots it.
type ValidationResult struct {
	RunID        string
	Summary      AccuracySummary
	Distribution Histogram
	Rows         []*RecordRow
	Failures     FailureCounts
	Runtime      time.Duration
}
