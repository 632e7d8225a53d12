package terrain

import "github.com/deepstone/cavegen/internal/world"

// FlatGenerator generates a superflat world with no carving:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4. Useful for
// exercising the pipeline without noise.
type FlatGenerator struct{}

// NewFlatGenerator creates a FlatGenerator.
func NewFlatGenerator() *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) Generate(_, _ int) *world.Tile {
	t := &world.Tile{}
	for x := 0; x < world.TileSize; x++ {
		for z := 0; z < world.TileSize; z++ {
			t.SetBlock(x, 0, z, world.State(world.BlockBedrock))
			t.SetBlock(x, 1, z, world.State(world.BlockStone))
			t.SetBlock(x, 2, z, world.State(world.BlockStone))
			t.SetBlock(x, 3, z, world.State(world.BlockDirt))
			t.SetBlock(x, 4, z, world.State(world.BlockGrass))
		}
	}
	return t
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return 4 // top solid block is at y=4 (grass)
}
