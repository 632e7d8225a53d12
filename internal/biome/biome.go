package biome

import (
	"github.com/deepstone/cavegen/internal/noise"
	"github.com/deepstone/cavegen/internal/world"
)

// Category buckets biomes by the traits carving cares about. Flooded
// caverns spawn under Ocean columns; everything else carves dry.
type Category uint8

const (
	CategoryOcean Category = iota
	CategoryBeach
	CategoryLand
)

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case CategoryOcean:
		return "ocean"
	case CategoryBeach:
		return "beach"
	default:
		return "land"
	}
}

// Noise frequencies for the classifier fields. Temperature and rainfall
// vary at a much larger scale than terrain height.
const (
	climateFreq = 1.0 / 512.0
	terrainFreq = 1.0 / 128.0
)

// Classifier assigns a biome category to every column from seeded
// temperature, rainfall, and terrain-height noise fields. It is pure:
// the category at a position never depends on tile generation state.
type Classifier struct {
	tempNoise *noise.Source
	rainNoise *noise.Source
	terrain   *noise.Source
}

// NewClassifier creates a Classifier from a world seed.
func NewClassifier(seed int64) *Classifier {
	return &Classifier{
		tempNoise: noise.NewSource(seed+100, climateFreq),
		rainNoise: noise.NewSource(seed+200, climateFreq),
		terrain:   noise.NewSource(seed, terrainFreq),
	}
}

// CategoryAt returns the biome category at the given world column.
func (c *Classifier) CategoryAt(x, z int) Category {
	// Ocean and beach are decided by the large-scale terrain base height,
	// matching how the terrain pass decides where water ends up.
	height := BaseHeight(c.terrain.Sample2(float64(x), float64(z)))
	if height < world.SeaLevel-8 {
		return CategoryOcean
	}
	if height < world.SeaLevel-2 {
		return CategoryBeach
	}
	return CategoryLand
}

// BaseHeight maps a terrain-base noise sample to a surface altitude. The
// classifier and the terrain pass share it so water ends up exactly where
// ocean columns are classified.
func BaseHeight(base float64) float64 {
	return 62.0 + base*24.0
}

// TerrainBase returns the raw large-scale terrain noise used for both
// category selection and heightmap shaping, so the two stay consistent.
func (c *Classifier) TerrainBase(x, z int) float64 {
	return c.terrain.Sample2(float64(x), float64(z))
}

// Climate returns the temperature and rainfall samples for a column,
// each mapped into [0, 1].
func (c *Classifier) Climate(x, z int) (temp, rain float64) {
	temp = c.tempNoise.Sample2(float64(x), float64(z))*0.5 + 0.5
	rain = c.rainNoise.Sample2(float64(x)+100, float64(z)+100)*0.5 + 0.5
	return temp, rain
}

// Climate thresholds for arid land.
const (
	aridTempMin = 0.65
	aridRainMax = 0.35
)

// Arid reports whether a land column is hot and dry enough for a desert
// surface instead of grass.
func (c *Classifier) Arid(x, z int) bool {
	temp, rain := c.Climate(x, z)
	return temp > aridTempMin && rain < aridRainMax
}

// Predicate is a category test evaluated by plain comparison. Using a
// value instead of a closure keeps column processing allocation-free and
// trivially comparable in tests.
type Predicate struct {
	category Category
	negate   bool
}

// Match returns a predicate that is true for columns of the category.
func Match(c Category) Predicate { return Predicate{category: c} }

// Not returns a predicate that is true for columns of any other category.
func Not(c Category) Predicate { return Predicate{category: c, negate: true} }

// Matches evaluates the predicate against a category.
func (p Predicate) Matches(c Category) bool {
	return (c == p.category) != p.negate
}
