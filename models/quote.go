package models

// OptionKind is the exercise side of an option contract.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// An OptionQuote is one validated historical observation of an option
// contract. The data adapter owns all parsing and cleaning; by the time a
// quote reaches the engine, Spot and Strike are finite positive reals,
// TimeToExpiry is a finite real in years (may be <= 0 on expiry day) and
// ObservedPrice is a finite real (may be 0 in thin markets).
type OptionQuote struct {
	Symbol        string     `csv:"symbol" db:"symbol"`
	Timestamp     int64      `csv:"timestamp" db:"timestamp"`
	Expiry        int64      `csv:"expiry" db:"expiry"`
	Spot          float64    `csv:"spot" db:"spot"`
	Strike        float64    `csv:"strike" db:"strike"`
	TimeToExpiry  float64    `csv:"time_to_expiry" db:"timetoexpiry"`
	Rate          float64    `csv:"rate" db:"rate"`
	Volatility    float64    `csv:"volatility" db:"volatility"`
	Kind          OptionKind `csv:"kind" db:"kind"`
	ObservedPrice float64    `csv:"observed_price" db:"observedprice"`
}

// A PricingResult holds the model price for a single quote.
type PricingResult struct {
	TheoPrice float64
}

// An ErrorSample is the per-quote deviation of the model price from the
// observed market price. Defined is false when the observed price was zero;
// the percentage fields then hold no usable value and must never enter an
// aggregate.
type ErrorSample struct {
	SignedError        float64
	PercentageError    float64
	AbsPercentageError float64
	Defined            bool
}

// A KindedSample pairs an error sample with the option kind it came from so
// the aggregator can break statistics down per side.
type KindedSample struct {
	Sample ErrorSample
	Kind   OptionKind
}
