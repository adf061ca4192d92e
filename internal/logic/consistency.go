package logic

import "math"

// ConsistencyScore turns an (average, high, low) triple into a bounded
// [0,100] figure rewarding low week-to-week spread. The scoring range is
// normalized by the mean and mapped linearly: a range equal to twice the
// mean (or more) scores 0, a zero range scores 100.
//
// This range-based formula is the canonical consistency definition for the
// whole service; the standard deviation of the weekly series is reported
// separately (see ConsistencyMetrics.StdDev), never substituted for it.
func ConsistencyScore(avg, high, low float64) float64 {
	if avg <= 0 {
		return 0
	}
	normalizedRange := (high - low) / avg
	score := 100 - normalizedRange*50
	return clamp(score, 0, 100)
}

// StdDev is the population standard deviation of a weekly score series.
// Returns 0 for series shorter than two entries.
func StdDev(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))

	var sq float64
	for _, v := range series {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(series)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
