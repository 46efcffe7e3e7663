package utils

import (
	"math"
	"strings"
	"time"
)

// Day count conventions
const (
	ACT360  = "ACT/360"
	ACT365F = "ACT/365F"
	E30360  = "30E/360"
)

// NormalizeConvention maps aliases to a supported convention name, or returns "" if unknown
func NormalizeConvention(convention string) string {
	switch strings.ToUpper(strings.TrimSpace(convention)) {
	case "ACT/360", "A360":
		return ACT360
	case "ACT/365F", "ACT/365", "A365F", "A365":
		return ACT365F
	case "30E/360", "30/360":
		return E30360
	default:
		return ""
	}
}

// DayCount returns the number of days between start and end under the convention.
// Unknown conventions count actual days.
func DayCount(start, end time.Time, convention string) int64 {
	if NormalizeConvention(convention) == E30360 {
		// 30E/360 (Eurobond basis): D1 and D2 are capped at 30
		d1 := min(start.Day(), 30)
		d2 := min(end.Day(), 30)
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return int64(360*(y2-y1) + 30*(m2-m1) + (d2 - d1))
	}
	return int64(math.Round(end.Sub(start).Hours() / 24))
}

// YearBasis returns the days-per-year denominator of the convention
func YearBasis(convention string) int64 {
	switch NormalizeConvention(convention) {
	case ACT360, E30360:
		return 360
	default:
		return 365
	}
}
