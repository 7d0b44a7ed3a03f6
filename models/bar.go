package models

// A Bar is one close of the underlying index, used to estimate historical
// volatility for the constant-volatility model input.
type Bar struct {
	Timestamp int64   `csv:"timestamp" db:"timestamp"`
	Close     float64 `csv:"close" db:"close"`
}
