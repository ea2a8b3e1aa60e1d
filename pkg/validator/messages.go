package validator

import (
	"fmt"
	"math"
	"strconv"
)

// Default messages used when a rule is invoked without a custom message.
const (
	MessageRequired      = "Field is required"
	MessageGroupRequired = "Select at least one option"
	MessageEmail         = "Invalid email"
	MessageURL           = "Invalid URL"
	MessageInteger       = "Must be an integer"
	MessagePositive      = "Must be a positive number"
	MessageCustom        = "Invalid value"
)

func minLengthMessage(n int) string { return fmt.Sprintf("Minimum %d characters", n) }
func maxLengthMessage(n int) string { return fmt.Sprintf("Maximum %d characters", n) }
func minMessage(n float64) string   { return "Minimum " + formatNumber(n) }
func maxMessage(n float64) string   { return "Maximum " + formatNumber(n) }

// pick returns the first non-empty override or fallback.
func pick(overrides []string, fallback string) string {
	for _, msg := range overrides {
		if msg != "" {
			return msg
		}
	}
	return fallback
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	case math.Abs(n) >= 1e21:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
