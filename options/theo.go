// Package options prices European options with the Black-Scholes model.
package options

import (
	"fmt"
	"math"

	"github.com/chobie/go-gaussian"

	"github.com/pramanalabs/pramana/models"
)

// Price returns the Black-Scholes theoretical value of a European option.
//
// timeToExpiry is in years; a value <= 0 short-circuits to intrinsic value
// so the formula never sees log(spot/strike)/0. Zero volatility with time
// left on the clock is reported as models.ErrDegenerateVolatility instead of
// letting d1 go infinite. Negative volatility is deliberately not rejected;
// it flows through the formula the same way the reference dataset pipeline
// left it unchecked.
//
// Price is pure and safe to call from any number of goroutines.
func Price(spot, strike, timeToExpiry, rate, volatility float64, kind models.OptionKind) (float64, error) {
	if !finite(spot) || !finite(strike) || !finite(timeToExpiry) || !finite(rate) || !finite(volatility) {
		return 0, fmt.Errorf("pricing %v option: %w", kind, models.ErrInvalidInput)
	}
	if kind != models.Call && kind != models.Put {
		return 0, fmt.Errorf("pricing option: %w: %q", models.ErrInvalidOptionKind, kind)
	}
	if timeToExpiry <= 0 {
		return Intrinsic(spot, strike, kind), nil
	}
	if volatility == 0 {
		return 0, fmt.Errorf("pricing %v option with %.4f years left: %w", kind, timeToExpiry, models.ErrDegenerateVolatility)
	}

	norm := gaussian.NewGaussian(0, 1)
	d1 := (math.Log(spot/strike) + (rate+0.5*math.Pow(volatility, 2))*timeToExpiry) / (volatility * math.Sqrt(timeToExpiry))
	d2 := d1 - volatility*math.Sqrt(timeToExpiry)

	if kind == models.Call {
		return spot*norm.Cdf(d1) - strike*math.Exp(-rate*timeToExpiry)*norm.Cdf(d2), nil
	}
	return strike*math.Exp(-rate*timeToExpiry)*norm.Cdf(-d2) - spot*norm.Cdf(-d1), nil
}

// Intrinsic is the payoff of the option if exercised immediately.
func Intrinsic(spot, strike float64, kind models.OptionKind) float64 {
	if kind == models.Call {
		return math.Max(0, spot-strike)
	}
	return math.Max(0, strike-spot)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
