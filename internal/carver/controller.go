package carver

import (
	"log/slog"

	"github.com/deepstone/cavegen/internal/biome"
	"github.com/deepstone/cavegen/internal/config"
	"github.com/deepstone/cavegen/internal/noise"
	"github.com/deepstone/cavegen/internal/world"
)

// SubTileSize is the edge length of the square sub-tiles a tile is swept
// in. Every column in a sub-tile shares one noise cube per carver.
const SubTileSize = 2

// regionSeedOffset decorrelates the region field from other noise uses of
// the same world seed.
const regionSeedOffset = 333

// floodedSearchRadius is how far the boundary search looks for the
// opposite biome category around a column.
const floodedSearchRadius = 2

// Controller decides, for every column of a tile, whether and how caverns
// are carved. It is read-only after construction; Carve keeps its scratch
// state on the stack, so one Controller may carve tiles concurrently.
type Controller struct {
	log    *slog.Logger
	region *noise.Source
	ranges []*Range
	bounds BoundsCheck
	biomes BiomeSource

	debugView       bool
	overrideSurface bool
	flooded         bool
}

// NewController builds the default carvers and the region partition from
// config.
func NewController(cfg *config.Config, bounds BoundsCheck, biomes BiomeSource, log *slog.Logger) *Controller {
	carvers := []Carver{
		NewCavernBuilder(cfg.Seed).
			OfType(CavernLiquid, cfg).
			DebugBlock(world.State(world.BlockRedstone)).
			Build(),
		NewCavernBuilder(cfg.Seed).
			OfType(CavernFloored, cfg).
			DebugBlock(world.State(world.BlockGoldBlock)).
			Build(),
	}
	return NewControllerWithCarvers(cfg, carvers, bounds, biomes, log)
}

// NewControllerWithCarvers builds the region partition over the given
// carvers, in registration order.
func NewControllerWithCarvers(cfg *config.Config, carvers []Carver, bounds BoundsCheck, biomes BiomeSource, log *slog.Logger) *Controller {
	c := &Controller{
		log:             log,
		region:          noise.NewSource(cfg.Seed+regionSeedOffset, regionFrequency(cfg.RegionSize, cfg.RegionCustomFreq)),
		bounds:          bounds,
		biomes:          biomes,
		debugView:       cfg.DebugVisualizer,
		overrideSurface: cfg.OverrideSurface,
		flooded:         cfg.FloodedUnderground,
	}

	spawnChance := cfg.SpawnChance / 100
	c.ranges = BuildRanges(carvers, spawnChance)

	log.Debug("cavern partition built",
		"spawn_chance", spawnChance,
		"ranges", len(c.ranges))
	for _, r := range c.ranges {
		log.Debug("cavern range", "interval", r.String(), "priority", r.Carver().Priority())
	}
	return c
}

// regionFrequency maps a region size preset to the region field frequency.
func regionFrequency(size string, custom float64) float64 {
	switch size {
	case config.RegionSmall:
		return 0.01
	case config.RegionLarge:
		return 0.005
	case config.RegionExtraLarge:
		return 0.001
	case config.RegionCustom:
		return custom
	default: // medium
		return 0.007
	}
}

// Carve runs the cavern pass over one tile. surfaceAltitudes and
// liquidBlocks are per-column grids precomputed by the terrain pass. The
// tile is swept in SubTileSize squares; within a sub-tile each active
// carver's noise cube is built at most once and shared by every column
// that resolves to it.
func (c *Controller) Carve(t *world.Tile, tileX, tileZ int, surfaceAltitudes *[world.TileSize][world.TileSize]int, liquidBlocks *[world.TileSize][world.TileSize]uint16) {
	// Caverns disabled entirely: nothing to do for a solid tile.
	if len(c.ranges) == 0 {
		return
	}

	// Noise cubes for the current sub-tile, one slot per range. Owned by
	// the sub-tile iteration; rebuilt from scratch after each advance.
	cubes := make([]*noise.Cube, len(c.ranges))

	for subX := 0; subX < world.TileSize/SubTileSize; subX++ {
		for subZ := 0; subZ < world.TileSize/SubTileSize; subZ++ {
			startX := subX * SubTileSize
			startZ := subZ * SubTileSize
			endX := startX + SubTileSize - 1
			endZ := startZ + SubTileSize - 1

			for i := range cubes {
				cubes[i] = nil
			}

			// Shared ceiling for noise cube construction: every column and
			// every carver in the sub-tile must fit under it.
			maxHeight := 0
			if !c.overrideSurface {
				for x := startX; x <= endX; x++ {
					for z := startZ; z <= endZ; z++ {
						if h := surfaceAltitudes[x][z]; h > maxHeight {
							maxHeight = h
						}
					}
				}
				for _, r := range c.ranges {
					if top := r.Carver().TopY(); top > maxHeight {
						maxHeight = top
					}
				}
			}

			for offsetX := 0; offsetX < SubTileSize; offsetX++ {
				for offsetZ := 0; offsetZ < SubTileSize; offsetZ++ {
					localX := startX + offsetX
					localZ := startZ + offsetZ
					colPos := world.ColPos{X: tileX*world.TileSize + localX, Z: tileZ*world.TileSize + localZ}

					flooded := false
					smoothAmpFactor := 1.0
					if c.flooded && !c.debugView {
						flooded = c.biomes.CategoryAt(colPos.X, colPos.Z) == biome.CategoryOcean
						pred := biome.Match(biome.CategoryOcean)
						if flooded {
							pred = biome.Not(biome.CategoryOcean)
						}
						smoothAmpFactor = DistFactor(c.bounds, c.biomes, colPos, floodedSearchRadius, pred)
						if smoothAmpFactor <= 0 {
							// Wall between flooded and dry caverns.
							continue
						}
					}

					surfaceAltitude := surfaceAltitudes[localX][localZ]
					liquidBlock := liquidBlocks[localX][localZ]

					regionNoise := c.region.Sample2(float64(colPos.X), float64(colPos.Z))

					// First matching range wins; a value in no range is
					// deadzone and the column stays solid.
					for i, r := range c.ranges {
						if !r.Contains(regionNoise) {
							continue
						}
						cv := r.Carver()
						bottomY := cv.BottomY()
						topY := cv.TopY()
						if !c.debugView && surfaceAltitude < topY {
							topY = surfaceAltitude
						}
						if c.overrideSurface {
							topY = cv.TopY()
							maxHeight = cv.TopY()
						}

						smoothAmp := r.SmoothAmpAt(regionNoise) * smoothAmpFactor
						if cubes[i] == nil {
							cubes[i] = cv.NoiseCube(
								tileX*world.TileSize+startX,
								tileZ*world.TileSize+startZ,
								SubTileSize, SubTileSize,
								bottomY, maxHeight)
						}
						col := cubes[i].Column(offsetX, offsetZ)
						cv.CarveColumn(t, colPos, topY, smoothAmp, col, liquidBlock, flooded)
						break
					}
				}
			}
		}
	}
}

// Enabled reports whether any carver survived partitioning.
func (c *Controller) Enabled() bool { return len(c.ranges) > 0 }

// Ranges exposes the partition for inspection.
func (c *Controller) Ranges() []*Range { return c.ranges }
