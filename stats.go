package pramana

import (
	"math"
	"os"
	"sort"
	"time"

	"github.com/fatih/structs"
	"github.com/gocarina/gocsv"
	client "github.com/influxdata/influxdb1-client/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/pramanalabs/pramana/logger"
	"github.com/pramanalabs/pramana/models"
)

// Summarize aggregates per-record error samples into dataset-level accuracy
// statistics. Undefined samples count toward the totals but never enter a
// mean, median or standard deviation. Samples are consumed in input order so
// the same slice always produces a bit-identical summary.
func Summarize(samples []models.KindedSample) models.AccuracySummary {
	var absPct, signedPct []float64
	var callAbs, callSigned []float64
	var putAbs, putSigned []float64

	summary := models.AccuracySummary{CountTotal: len(samples)}
	for _, s := range samples {
		switch s.Kind {
		case models.Call:
			summary.Calls.Count++
		case models.Put:
			summary.Puts.Count++
		}
		if !s.Sample.Defined {
			continue
		}
		absPct = append(absPct, s.Sample.AbsPercentageError)
		signedPct = append(signedPct, s.Sample.PercentageError)
		switch s.Kind {
		case models.Call:
			callAbs = append(callAbs, s.Sample.AbsPercentageError)
			callSigned = append(callSigned, s.Sample.PercentageError)
		case models.Put:
			putAbs = append(putAbs, s.Sample.AbsPercentageError)
			putSigned = append(putSigned, s.Sample.PercentageError)
		}
	}

	summary.CountDefined = len(absPct)
	summary.MeanAbsPctError, summary.MedianAbsPctError, summary.StdDevSignedPctError, summary.MeanSignedPctError = subsetStats(absPct, signedPct)
	summary.Calls.CountDefined = len(callAbs)
	summary.Calls.MeanAbsPctError, summary.Calls.MedianAbsPctError, summary.Calls.StdDevSignedPctError, summary.Calls.MeanSignedPctError = subsetStats(callAbs, callSigned)
	summary.Puts.CountDefined = len(putAbs)
	summary.Puts.MeanAbsPctError, summary.Puts.MedianAbsPctError, summary.Puts.StdDevSignedPctError, summary.Puts.MeanSignedPctError = subsetStats(putAbs, putSigned)
	return summary
}

// subsetStats computes the four summary statistics over one defined subset.
// The sample standard deviation needs at least two values; below that it is
// undefined, not NaN.
func subsetStats(absPct, signedPct []float64) (meanAbs, medianAbs, stdDevSigned, meanSigned models.Stat) {
	if len(absPct) == 0 {
		return
	}
	meanAbs = models.DefinedStat(stat.Mean(absPct, nil))
	medianAbs = models.DefinedStat(Median(absPct))
	meanSigned = models.DefinedStat(stat.Mean(signedPct, nil))
	if len(signedPct) > 1 {
		stdDevSigned = models.DefinedStat(stat.StdDev(signedPct, nil))
	}
	return
}

// Median returns the middle element of vals, or the average of the two
// middle elements for even counts. The input slice is not reordered.
func Median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// BuildHistogram bins the defined signed percentage errors into bins
// equal-width buckets spanning [min, max]. With no defined samples or a
// non-positive bin count the histogram is empty.
func BuildHistogram(samples []models.KindedSample, bins int) models.Histogram {
	var errors []float64
	for _, s := range samples {
		if s.Sample.Defined {
			errors = append(errors, s.Sample.PercentageError)
		}
	}
	if len(errors) == 0 || bins <= 0 {
		return models.Histogram{}
	}

	min, max := errors[0], errors[0]
	for _, e := range errors {
		min = math.Min(min, e)
		max = math.Max(max, e)
	}
	if min == max {
		// All errors identical; one bucket holds everything.
		return models.Histogram{Min: min, Max: max, BinWidth: 0, Counts: []int{len(errors)}}
	}

	hist := models.Histogram{
		Min:      min,
		Max:      max,
		BinWidth: (max - min) / float64(bins),
		Counts:   make([]int, bins),
	}
	for _, e := range errors {
		idx := int((e - min) / hist.BinWidth)
		if idx >= bins {
			idx = bins - 1
		}
		hist.Counts[idx]++
	}
	return hist
}

// Log the quantitative summary for a finished run.
func logSummary(result models.ValidationResult) {
	logger.Infof("Validation run %v finished in %v\n", result.RunID, result.Runtime)
	logger.Infof("Processed %v records: %v priced, %v failed (invalid kind %v, degenerate volatility %v, invalid input %v)\n",
		result.Summary.CountTotal,
		result.Failures.Succeeded,
		result.Failures.Failed(),
		result.Failures.InvalidKind,
		result.Failures.DegenerateVolatility,
		result.Failures.InvalidInput,
	)
	summaryMap := structs.Map(result.Summary)
	logger.Infof("Accuracy summary: %s\n", CreateKeyValuePairs(summaryMap, true))
}

// logCloudValidation writes the summary statistics of a run to the results
// influx database. Connection parameters come from the environment so that
// credentials never live in a config file committed to the repo.
func logCloudValidation(result models.ValidationResult, cfg models.Config) {
	influxURL := os.Getenv("PRAMANA_RESULTS_DB_URL")
	if influxURL == "" {
		logger.Error("You need to set the `PRAMANA_RESULTS_DB_URL` env variable to log cloud results")
		return
	}

	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     influxURL,
		Username: os.Getenv("PRAMANA_RESULTS_DB_USER"),
		Password: os.Getenv("PRAMANA_RESULTS_DB_PASSWORD"),
		Timeout:  time.Millisecond * 1000 * 10,
	})
	if err != nil {
		logger.Errorf("Error connecting to results db: %v\n", err)
		return
	}
	defer influx.Close()

	bp, _ := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "validation",
		Precision: "us",
	})

	tags := map[string]string{
		"run_id": result.RunID,
		"symbol": cfg.Symbol,
	}
	fields := map[string]interface{}{
		"count_total":   result.Summary.CountTotal,
		"count_defined": result.Summary.CountDefined,
		"failed":        result.Failures.Failed(),
	}
	if result.Summary.MeanAbsPctError.Defined {
		fields["mean_abs_pct_error"] = result.Summary.MeanAbsPctError.Value
	}
	if result.Summary.MedianAbsPctError.Defined {
		fields["median_abs_pct_error"] = result.Summary.MedianAbsPctError.Value
	}
	if result.Summary.StdDevSignedPctError.Defined {
		fields["stddev_signed_pct_error"] = result.Summary.StdDevSignedPctError.Value
	}
	if result.Summary.MeanSignedPctError.Defined {
		fields["mean_signed_pct_error"] = result.Summary.MeanSignedPctError.Value
	}

	pt, err := client.NewPoint("accuracy", tags, fields, time.Now())
	if err != nil {
		logger.Errorf("Error building accuracy point: %v\n", err)
		return
	}
	bp.AddPoint(pt)

	if err = influx.Write(bp); err != nil {
		logger.Errorf("Error writing run %v to results db: %v\n", result.RunID, err)
	}
}

// WriteRecordsCSV saves the per-record detail rows for a run.
func WriteRecordsCSV(fileName string, rows []*models.RecordRow) error {
	os.Remove(fileName)
	rowsFile, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE, os.ModePerm)
	if err != nil {
		return err
	}
	defer rowsFile.Close()
	return gocsv.MarshalFile(&rows, rowsFile)
}
