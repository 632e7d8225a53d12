package terrain

import (
	"log/slog"

	"github.com/deepstone/cavegen/internal/biome"
	"github.com/deepstone/cavegen/internal/carver"
	"github.com/deepstone/cavegen/internal/config"
	"github.com/deepstone/cavegen/internal/noise"
	"github.com/deepstone/cavegen/internal/world"
)

const detailFreq = 1.0 / 32.0

// Generator produces solid terrain with biome-dependent surfaces and then
// runs the cavern carve pass over it. It implements world.Generator.
type Generator struct {
	detail     *noise.Source
	classifier *biome.Classifier
	carvers    *carver.Controller
}

// New creates a Generator from configuration. All noise fields derive
// from cfg.Seed, so equal configs generate equal worlds.
func New(cfg *config.Config, log *slog.Logger) *Generator {
	classifier := biome.NewClassifier(cfg.Seed)
	bounds := world.Bounds{Radius: cfg.WorldRadius}
	return &Generator{
		detail:     noise.NewSource(cfg.Seed+1, detailFreq),
		classifier: classifier,
		carvers:    carver.NewController(cfg, bounds, classifier, log),
	}
}

// Generate builds one tile: heightmap and column fill first, then the
// carve pass with the surface-altitude and liquid-placeholder grids it
// needs. Surface altitudes come from scanning the filled tile, not the
// heightmap, so water and surface blocks are accounted for.
func (g *Generator) Generate(tileX, tileZ int) *world.Tile {
	t := &world.Tile{}

	var liquidBlocks [world.TileSize][world.TileSize]uint16

	for x := 0; x < world.TileSize; x++ {
		for z := 0; z < world.TileSize; z++ {
			bx := tileX*world.TileSize + x
			bz := tileZ*world.TileSize + z

			cat := g.classifier.CategoryAt(bx, bz)
			height := g.HeightAt(bx, bz)

			// Caverns under oceans fill with water; elsewhere the deep
			// liquid is lava.
			if cat == biome.CategoryOcean {
				liquidBlocks[x][z] = world.State(world.BlockWater)
			} else {
				liquidBlocks[x][z] = world.State(world.BlockLava)
			}

			g.fillColumn(t, x, z, height, cat, g.classifier.Arid(bx, bz))
		}
	}

	g.carvers.Carve(t, tileX, tileZ, scanSurfaces(t), &liquidBlocks)
	return t
}

// scanSurfaces builds the per-column surface altitude grid from the
// filled tile. Water counts as surface, so ocean floors report the first
// water block above them rather than the heightmap value.
func scanSurfaces(t *world.Tile) *[world.TileSize][world.TileSize]int {
	var grid [world.TileSize][world.TileSize]int
	for x := 0; x < world.TileSize; x++ {
		for z := 0; z < world.TileSize; z++ {
			grid[x][z] = world.SurfaceAltitude(t, x, z)
		}
	}
	return &grid
}

// HeightAt computes the terrain height at a world block coordinate.
func (g *Generator) HeightAt(blockX, blockZ int) int {
	base := biome.BaseHeight(g.classifier.TerrainBase(blockX, blockZ))
	detail := g.detail.Sample2(float64(blockX), float64(blockZ)) * 4.0

	h := int(base + detail)
	if h < 1 {
		h = 1
	}
	if h > world.MaxHeight-6 {
		h = world.MaxHeight - 6
	}
	return h
}

// fillColumn fills a single block column with terrain blocks.
func (g *Generator) fillColumn(t *world.Tile, x, z, height int, cat biome.Category, arid bool) {
	// Bedrock at y=0, randomized bedrock/stone for y=1..3.
	t.SetBlock(x, 0, z, world.State(world.BlockBedrock))
	for y := 1; y <= 3; y++ {
		if g.detail.Sample2(float64(x+y*7)*0.5, float64(z)*0.5) > 0 {
			t.SetBlock(x, y, z, world.State(world.BlockBedrock))
		} else {
			t.SetBlock(x, y, z, world.State(world.BlockStone))
		}
	}

	// Stone fill up to the surface layers.
	stoneTop := height - 4
	if stoneTop < 4 {
		stoneTop = 4
	}
	for y := 4; y <= stoneTop && y <= height; y++ {
		t.SetBlock(x, y, z, world.State(world.BlockStone))
	}

	applySurface(t, x, z, height, cat, arid)

	// Water fill up to sea level where terrain is below it.
	if height < world.SeaLevel {
		for y := height + 1; y <= world.SeaLevel; y++ {
			t.SetBlock(x, y, z, world.State(world.BlockWater))
		}
	}
}

// applySurface places the category-specific surface blocks on top of the
// stone column. Arid land gets a desert surface instead of grass.
func applySurface(t *world.Tile, x, z, height int, cat biome.Category, arid bool) {
	switch cat {
	case biome.CategoryOcean:
		// Gravel on the ocean floor, dirt beneath.
		for y := height; y > height-3 && y > 3; y-- {
			t.SetBlock(x, y, z, world.State(world.BlockGravel))
		}
		for y := height - 3; y > height-5 && y > 3; y-- {
			t.SetBlock(x, y, z, world.State(world.BlockDirt))
		}

	case biome.CategoryBeach:
		// Sand with a sandstone base.
		for y := height; y > height-4 && y > 3; y-- {
			t.SetBlock(x, y, z, world.State(world.BlockSand))
		}
		if height-4 > 3 {
			t.SetBlock(x, height-4, z, world.State(world.BlockSandstone))
		}

	default:
		if height <= 3 {
			return
		}
		if arid && height > world.SeaLevel {
			// Hot and dry: sand over a sandstone base.
			for y := height; y > height-3 && y > 3; y-- {
				t.SetBlock(x, y, z, world.State(world.BlockSand))
			}
			if height-3 > 3 {
				t.SetBlock(x, height-3, z, world.State(world.BlockSandstone))
			}
			return
		}
		if height > world.SeaLevel {
			t.SetBlock(x, height, z, world.State(world.BlockGrass))
		} else {
			// Underwater: dirt instead of grass.
			t.SetBlock(x, height, z, world.State(world.BlockDirt))
		}
		for y := height - 1; y > height-4 && y > 3; y-- {
			t.SetBlock(x, y, z, world.State(world.BlockDirt))
		}
	}
}
