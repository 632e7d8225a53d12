package noise

import "math"

// Gradient noise values are not uniformly distributed over [-1, 1]; they
// cluster around 0. Splitting the domain into intervals by linear width
// would therefore give the center intervals far more than their share of
// terrain. The helpers here model the value distribution as a raised
// cosine over [-1, 1] and convert between noise values and percentiles,
// so interval widths can be allocated as fractions of actual coverage.

// Percentile returns the fraction of noise values expected to fall below
// v. Percentile(-1) = 0 and Percentile(1) = 1, strictly increasing in
// between.
func Percentile(v float64) float64 {
	if v <= -1 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return (v+1)/2 + math.Sin(math.Pi*v)/(2*math.Pi)
}

// OffsetByPercent returns the noise value w >= v such that the interval
// [v, w) covers pct of the distribution. The result saturates at 1 when
// the requested coverage extends past the end of the domain.
func OffsetByPercent(v, pct float64) float64 {
	target := Percentile(v) + pct
	if target >= 1 {
		return 1
	}
	if target <= 0 {
		return -1
	}

	// Percentile is strictly increasing, so bisect.
	lo, hi := -1.0, 1.0
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if Percentile(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
