package noise

import "github.com/aquilax/go-perlin"

// Perlin parameters shared by all sources. Persistence 2 with 3 octaves
// gives smooth large features with enough detail for carving.
const (
	alpha = 2.0
	beta  = 2.0
	n     = 3
)

// Source produces deterministic gradient noise from a seed at a fixed
// frequency. Smaller frequency means larger contiguous features.
type Source struct {
	p    *perlin.Perlin
	freq float64
}

// NewSource creates a seeded noise source with the given sample frequency.
func NewSource(seed int64, freq float64) *Source {
	return &Source{
		p:    perlin.NewPerlin(alpha, beta, n, seed),
		freq: freq,
	}
}

// Sample2 returns 2D noise at the given world coordinates.
// Output is clamped to [-1, 1].
func (s *Source) Sample2(x, z float64) float64 {
	return clamp(s.p.Noise2D(x*s.freq, z*s.freq))
}

// Sample3 returns 3D noise at the given world coordinates.
// Output is clamped to [-1, 1].
func (s *Source) Sample3(x, y, z float64) float64 {
	return clamp(s.p.Noise3D(x*s.freq, y*s.freq, z*s.freq))
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
