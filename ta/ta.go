// Package ta estimates historical volatility from underlying closes
// using github.com/markcheno/go-talib
package ta

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// TradingDays is the annualization base for close-to-close volatility.
const TradingDays = 252

// LogReturns computes log returns from a series of closes. The result is one
// element shorter than the input.
func LogReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = math.Log(closes[i] / closes[i-1])
	}
	return returns
}

// CloseToCloseVol computes rolling annualized close-to-close volatility over
// a window of log returns. The first window-1 return slots hold zero, the
// talib convention for the warmup period.
func CloseToCloseVol(closes []float64, window int) []float64 {
	returns := LogReturns(closes)
	if len(returns) < window {
		return nil
	}
	stddev := talib.StdDev(returns, window, 1.0)
	vol := make([]float64, len(stddev))
	for i, sd := range stddev {
		vol[i] = sd * math.Sqrt(TradingDays)
	}
	return vol
}

// LatestVol returns the most recent annualized close-to-close volatility, or
// 0 when there are not enough closes to fill one window.
func LatestVol(closes []float64, window int) float64 {
	vol := CloseToCloseVol(closes, window)
	if len(vol) == 0 {
		return 0
	}
	return vol[len(vol)-1]
}
