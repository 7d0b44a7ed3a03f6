package models

import "errors"

// Per-record failure reasons. Any of these is fatal to the record it came
// from and recoverable for the run: the engine tags the record and keeps
// going. A zero observed price is not in this list; it is an expected,
// defined outcome carried by ErrorSample.Defined.
var (
	// ErrInvalidOptionKind means the kind value was neither Call nor Put.
	// The record must not be silently treated as either side.
	ErrInvalidOptionKind = errors.New("invalid option kind")

	// ErrDegenerateVolatility means volatility was zero with positive time
	// to expiry, which makes d1 and d2 divide by zero.
	ErrDegenerateVolatility = errors.New("degenerate volatility")

	// ErrInvalidInput means a non-finite value reached a function that
	// assumes finite inputs.
	ErrInvalidInput = errors.New("invalid input")
)

// FailureReason maps a per-record error onto its taxonomy name, or "" for
// nil errors.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidOptionKind):
		return "invalid-option-kind"
	case errors.Is(err, ErrDegenerateVolatility):
		return "degenerate-volatility"
	case errors.Is(err, ErrInvalidInput):
		return "invalid-input"
	default:
		return "unknown"
	}
}
