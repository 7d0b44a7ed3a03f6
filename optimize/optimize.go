// Package optimize searches for the flat rate and volatility that minimize
// the model's mean absolute percentage error over a historical quote set.
package optimize

import (
	"fmt"
	"log"
	"math/rand"

	eaopt "github.com/MaxHalford/eaopt"

	"github.com/pramanalabs/pramana"
	"github.com/pramanalabs/pramana/models"
)

// DiffEvoOptimize minimizes Evaluate over the box [min, max] with
// differential evolution. The RNG is seeded so calibration runs are
// reproducible.
func DiffEvoOptimize(Evaluate func([]float64) float64, min, max []float64) ([]float64, float64) {
	var ga, err = eaopt.NewDiffEvo(400, 100, 0.5, 0.2, min, max, true, nil)
	if err != nil {
		fmt.Println(err)
		return nil, 0
	}
	ga.GA.RNG = rand.New(rand.NewSource(13))
	// Run minimization
	x, y, err := ga.Minimize(Evaluate, uint(len(min)))
	if err != nil {
		fmt.Println(err)
		return nil, 0
	}
	var best = ga.GA.HallOfFame[0]
	log.Println(best)
	fmt.Printf("Found minimum of %.5f\n", y)
	return x, y
}

// CalibrateParams finds the (rate, volatility) pair that best fits the
// observed prices in quotes, searching rate in [0, 0.20] and volatility in
// (0, 1]. It returns the fitted config and the mean absolute percentage
// error it achieves.
func CalibrateParams(quotes []*models.OptionQuote, cfg models.Config) (models.Config, float64) {
	min := []float64{0.0, 0.0001}
	max := []float64{0.20, 1.0}
	x, y := DiffEvoOptimize(func(x []float64) float64 {
		return pramana.MeanAbsoluteError(quotes, x[0], x[1])
	}, min, max)
	if x == nil {
		return cfg, pramana.MeanAbsoluteError(quotes, cfg.RiskFreeRate, cfg.Volatility)
	}
	cfg.RiskFreeRate = x[0]
	cfg.Volatility = x[1]
	return cfg, y
}
