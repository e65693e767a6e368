package stock

import "github.com/shopspring/decimal"

// Level classifies a remaining balance. The levels are mutually exclusive.
type Level string

const (
	LevelNormal   Level = "normal"
	LevelLow      Level = "low"
	LevelDepleted Level = "depleted"
)

// DefaultLowThreshold is the balance, in liters, under which a batch is
// reported as running low.
var DefaultLowThreshold = decimal.NewFromInt(5)

// Classify returns depleted when remaining <= 0 and low when
// 0 < remaining < threshold.
func Classify(remaining, threshold decimal.Decimal) Level {
	switch {
	case !remaining.IsPositive():
		return LevelDepleted
	case remaining.LessThan(threshold):
		return LevelLow
	default:
		return LevelNormal
	}
}

// IsLow reports whether the balance is positive but below threshold.
func IsLow(remaining, threshold decimal.Decimal) bool {
	return Classify(remaining, threshold) == LevelLow
}

// IsDepleted reports whether nothing is left of the batch.
func IsDepleted(remaining decimal.Decimal) bool {
	return !remaining.IsPositive()
}
