package services

import (
	"fmt"
	"math"
)

// Values below this magnitude are numerically insignificant for display;
// formatting them with a real exponent would render absurd precision.
const scaleUnderflow = 1e-100

// Seconds-per-band divisors for FormatTime. The year is exactly 365
// days; callers round-trip against this divisor, so it must not be
// swapped for a tropical or Julian year.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
)

// FormatScale renders a length in meters as scientific notation,
// "<sign><mantissa> × 10^<exponent> m" with a two-decimal mantissa.
// Zero renders as "0 m" and magnitudes below 1e-100 as "~0 m". The
// exact byte format is a display contract and must be preserved.
func FormatScale(value float64) string {
	if value == 0 {
		return "0 m"
	}

	abs := math.Abs(value)
	if abs < scaleUnderflow {
		return "~0 m"
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	exponent := int(math.Floor(math.Log10(abs)))
	mantissa := abs / math.Pow(10, float64(exponent))

	// Floating rounding at the band edge can push the mantissa to 10.00;
	// renormalize so it stays in [1, 10).
	if mantissa >= 9.995 {
		mantissa /= 10
		exponent++
	}

	return fmt.Sprintf("%s%.2f × 10^%d m", sign, mantissa, exponent)
}

// FormatTime renders a duration in seconds using the largest unit that
// keeps the value readable: seconds to three decimals, then minutes,
// hours, days and 365-day years to two.
func FormatTime(seconds float64) string {
	switch {
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.3f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	default:
		return fmt.Sprintf("%.2f years", seconds/secondsPerYear)
	}
}
