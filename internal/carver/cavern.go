package carver

import (
	"github.com/deepstone/cavegen/internal/config"
	"github.com/deepstone/cavegen/internal/noise"
	"github.com/deepstone/cavegen/internal/world"
)

// Carver is one cavern style. A carver declares its share weight and
// vertical span, produces the noise volume its carving reads from, and
// mutates single columns in place.
type Carver interface {
	// Priority is the carver's share weight in the region partition.
	// Zero disables the carver.
	Priority() int
	BottomY() int
	TopY() int

	// NoiseCube samples the carver's noise field over a horizontal box
	// and vertical span.
	NoiseCube(minX, minZ, sizeX, sizeZ, bottomY, topY int) *noise.Cube

	// CarveColumn digs one column from topY down to the carver's bottom,
	// using the column's slice of the shared noise cube. smoothAmp scales
	// carving intensity; 0 leaves the column solid. liquid is the state
	// placed below the liquid altitude, and flooded marks columns under
	// ocean biomes.
	CarveColumn(t *world.Tile, pos world.ColPos, topY int, smoothAmp float64, col noise.Column, liquid uint16, flooded bool)
}

// CavernType selects the carving rule for a Cavern.
type CavernType uint8

const (
	// CavernLiquid carves open caverns that fill with liquid below the
	// liquid altitude.
	CavernLiquid CavernType = iota
	// CavernFloored carves caverns that keep a solid floor near their
	// bottom instead of opening into liquid.
	CavernFloored
)

// Per-type noise parameters. Seed offsets decorrelate the carvers from
// each other and from every other noise field in the session.
const (
	liquidSeedOffset  = 300
	flooredSeedOffset = 400

	cavernNoiseFreq = 0.03

	// Perlin samples cluster well inside [-1, 1]; thresholds sit in the
	// upper tail so caverns stay bounded voids, not open seas.
	liquidThreshold  = 0.2
	flooredThreshold = 0.25

	// flooredFloorDepth is how many blocks above bottomY the floored
	// carver tapers over to leave a solid floor.
	flooredFloorDepth = 5
)

// Cavern is a configured cavern style.
type Cavern struct {
	typ      CavernType
	priority int
	bottomY  int
	topY     int

	liquidAltitude int
	threshold      float64
	noise          *noise.Source

	debugView  bool
	debugBlock uint16
}

// CavernBuilder assembles a Cavern from configuration.
type CavernBuilder struct {
	seed   int64
	cavern Cavern
}

// NewCavernBuilder creates a builder for carvers of a world seed.
func NewCavernBuilder(seed int64) *CavernBuilder {
	return &CavernBuilder{seed: seed}
}

// OfType configures the builder for a cavern type, taking the type's
// section from the config.
func (b *CavernBuilder) OfType(typ CavernType, cfg *config.Config) *CavernBuilder {
	var cc config.CavernConfig
	switch typ {
	case CavernLiquid:
		cc = cfg.LiquidCavern
		b.cavern.threshold = liquidThreshold
		b.cavern.noise = noise.NewSource(cfg.Seed+liquidSeedOffset, cavernNoiseFreq)
	case CavernFloored:
		cc = cfg.FlooredCavern
		b.cavern.threshold = flooredThreshold
		b.cavern.noise = noise.NewSource(cfg.Seed+flooredSeedOffset, cavernNoiseFreq)
	}
	b.cavern.typ = typ
	b.cavern.priority = cc.Priority
	b.cavern.bottomY = cc.BottomY
	b.cavern.topY = cc.TopY
	b.cavern.liquidAltitude = cfg.LiquidAltitude
	b.cavern.debugView = cfg.DebugVisualizer
	return b
}

// DebugBlock sets the block placed for this carver in debug view.
func (b *CavernBuilder) DebugBlock(state uint16) *CavernBuilder {
	b.cavern.debugBlock = state
	return b
}

// Build returns the configured Cavern.
func (b *CavernBuilder) Build() *Cavern {
	c := b.cavern
	return &c
}

func (c *Cavern) Priority() int { return c.priority }
func (c *Cavern) BottomY() int  { return c.bottomY }
func (c *Cavern) TopY() int     { return c.topY }

// NoiseCube samples this carver's noise field over the given box.
func (c *Cavern) NoiseCube(minX, minZ, sizeX, sizeZ, bottomY, topY int) *noise.Cube {
	return noise.BuildCube(c.noise, minX, minZ, sizeX, sizeZ, bottomY, topY)
}

// CarveColumn digs a single column. A block is dug where its noise sample,
// scaled by smoothAmp, exceeds the carver's threshold. Dug blocks below
// the liquid altitude become liquid; flooded columns fill with water up to
// sea level instead of opening into air.
func (c *Cavern) CarveColumn(t *world.Tile, pos world.ColPos, topY int, smoothAmp float64, col noise.Column, liquid uint16, flooded bool) {
	localX := pos.X & 0xF
	localZ := pos.Z & 0xF
	bottomY := c.bottomY

	for y := topY; y >= bottomY; y-- {
		sample := col.At(y)

		if c.typ == CavernFloored && y < bottomY+flooredFloorDepth {
			// Taper toward the floor so the cavern bottoms out in stone.
			sample *= float64(y-bottomY) / flooredFloorDepth
		}

		if c.debugView {
			if sample > c.threshold {
				t.SetBlock(localX, y, localZ, c.debugBlock)
			} else {
				t.SetBlock(localX, y, localZ, world.BlockAir)
			}
			continue
		}

		if sample*smoothAmp <= c.threshold {
			continue
		}

		switch {
		case y <= c.liquidAltitude:
			if flooded {
				t.SetBlock(localX, y, localZ, world.State(world.BlockWater))
			} else {
				t.SetBlock(localX, y, localZ, liquid)
			}
		case flooded && y <= world.SeaLevel:
			t.SetBlock(localX, y, localZ, world.State(world.BlockWater))
		default:
			t.SetBlock(localX, y, localZ, world.BlockAir)
		}
	}
}
