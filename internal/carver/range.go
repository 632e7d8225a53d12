package carver

import "fmt"

// Range binds a half-open interval [low, high) of the region-noise domain
// to one carver. Ranges are built once per generation session and are
// read-only afterward.
type Range struct {
	low    float64
	high   float64
	carver Carver

	// falloff is the width near each edge over which carving intensity
	// tapers to zero, so adjacent cavern regions blend instead of seaming.
	falloff float64
}

// falloffFraction of the range length is used as taper width on each
// side. A quarter guarantees full amplitude at the midpoint.
const falloffFraction = 0.25

func newRange(low, high float64, c Carver) *Range {
	return &Range{
		low:     low,
		high:    high,
		carver:  c,
		falloff: (high - low) * falloffFraction,
	}
}

// Contains reports whether the noise value falls inside the range.
// Membership is half-open: the high edge belongs to the next region.
func (r *Range) Contains(v float64) bool {
	return v >= r.low && v < r.high
}

// Carver returns the carver bound to this range.
func (r *Range) Carver() Carver { return r.carver }

// SmoothAmpAt returns a carving amplitude in [0, 1] for a noise value:
// 1 in the interior of the range, tapering to 0 as the value approaches
// either edge.
func (r *Range) SmoothAmpAt(v float64) float64 {
	dist := v - r.low
	if r.high-v < dist {
		dist = r.high - v
	}
	if dist <= 0 {
		return 0
	}
	if dist >= r.falloff {
		return 1
	}
	return dist / r.falloff
}

// String formats the range for the debug partition dump.
func (r *Range) String() string {
	return fmt.Sprintf("[%.4f, %.4f)", r.low, r.high)
}
