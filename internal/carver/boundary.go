package carver

import (
	"github.com/deepstone/cavegen/internal/biome"
	"github.com/deepstone/cavegen/internal/world"
)

// BoundsCheck reports whether a tile lies inside the known world extent.
// Probes outside it are treated as "no information", never as a match.
type BoundsCheck interface {
	Exists(tileX, tileZ int) bool
}

// BiomeSource classifies columns by biome category.
type BiomeSource interface {
	CategoryAt(x, z int) biome.Category
}

// The four cardinal directions, in search order.
var cardinals = [4]world.ColPos{
	{X: 0, Z: -1}, // north
	{X: 1, Z: 0},  // east
	{X: 0, Z: 1},  // south
	{X: -1, Z: 0}, // west
}

// rotateCW returns the direction rotated 90° clockwise.
func rotateCW(d world.ColPos) world.ColPos { return world.ColPos{X: -d.Z, Z: d.X} }

// rotateCCW returns the direction rotated 90° counter-clockwise.
func rotateCCW(d world.ColPos) world.ColPos { return world.ColPos{X: d.Z, Z: -d.X} }

// DistFactor returns an amplifier in [0, 1] indicating how close the
// nearest column matching pred is to pos. The search expands ring by ring
// out to radius, so the common case of no nearby match stops at the
// smallest ring first. The first match at ring i, perpendicular offset j,
// yields (i+j)/(2*radius): closer matches suppress carving harder. If no
// column within the radius matches, the factor is exactly 1.
//
// This is a cheap radially incremental metric, not a Euclidean distance.
// It is used to fade carving near biome-category transitions so flooded
// and dry caverns never meet in an open wall of water.
func DistFactor(bounds BoundsCheck, biomes BiomeSource, pos world.ColPos, radius int, pred biome.Predicate) float64 {
	for i := 1; i <= radius; i++ {
		for j := 0; j <= i; j++ {
			for _, dir := range cardinals {
				perp := rotateCW(dir)
				check := pos.Offset(dir.X*i+perp.X*j, dir.Z*i+perp.Z*j)
				if probe(bounds, biomes, check, pred) {
					return float64(i+j) / float64(2*radius)
				}
				if j != 0 && i != j {
					perp = rotateCCW(dir)
					check = pos.Offset(dir.X*i+perp.X*j, dir.Z*i+perp.Z*j)
					if probe(bounds, biomes, check, pred) {
						return float64(i+j) / float64(2*radius)
					}
				}
			}
		}
	}
	return 1
}

func probe(bounds BoundsCheck, biomes BiomeSource, pos world.ColPos, pred biome.Predicate) bool {
	if !bounds.Exists(pos.TileX(), pos.TileZ()) {
		return false
	}
	return pred.Matches(biomes.CategoryAt(pos.X, pos.Z))
}
