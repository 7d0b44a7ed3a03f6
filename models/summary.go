package models

// A Stat is one summary statistic that may be undefined. A statistic is
// undefined when its subset of defined samples is empty, or for the sample
// standard deviation when the subset holds fewer than two values. Value is
// meaningless while Defined is false.
type Stat struct {
	Value   float64
	Defined bool
}

// DefinedStat wraps a computed value.
func DefinedStat(value float64) Stat {
	return Stat{Value: value, Defined: true}
}

// A KindSummary holds the accuracy statistics for one option side.
type KindSummary struct {
	Count                int
	CountDefined         int
	MeanAbsPctError      Stat
	MedianAbsPctError    Stat
	StdDevSignedPctError Stat
	MeanSignedPctError   Stat
}

// An AccuracySummary is the dataset-level accuracy report of a validation
// run. Counts include samples whose percentage error is undefined; the
// statistics are computed over the defined subset only.
type AccuracySummary struct {
	CountTotal           int
	CountDefined         int
	MeanAbsPctError      Stat
	MedianAbsPctError    Stat
	StdDevSignedPctError Stat
	MeanSignedPctError   Stat
	Calls                KindSummary
	Puts                 KindSummary
}

// A Histogram is the distribution of defined signed percentage errors over
// equal-width bins spanning [Min, Max]. BinWidth is 0 when every error is
// identical; the single bucket then holds all observations.
type Histogram struct {
	Min      float64
	Max      float64
	BinWidth float64
	Counts   []int
}

// Observations returns the total number of errors binned.
func (h Histogram) Observations() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}
