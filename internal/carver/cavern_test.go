package carver

import (
	"testing"

	"github.com/deepstone/cavegen/internal/config"
	"github.com/deepstone/cavegen/internal/noise"
	"github.com/deepstone/cavegen/internal/world"
)

func constColumn(bottomY, topY int, v float64) noise.Column {
	vals := make([]float64, topY-bottomY+1)
	for i := range vals {
		vals[i] = v
	}
	return noise.NewColumn(bottomY, vals)
}

func stoneColumn(top int) *world.Tile {
	t := &world.Tile{}
	for y := 0; y <= top; y++ {
		t.SetBlock(0, y, 0, world.State(world.BlockStone))
	}
	return t
}

func TestLiquidCavernCarvesAirAndLiquid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	c := NewCavernBuilder(cfg.Seed).OfType(CavernLiquid, cfg).Build()

	tile := stoneColumn(40)
	col := constColumn(c.BottomY(), c.TopY(), 1) // always above threshold
	c.CarveColumn(tile, world.ColPos{X: 0, Z: 0}, c.TopY(), 1, col, world.State(world.BlockLava), false)

	for y := c.BottomY(); y <= cfg.LiquidAltitude; y++ {
		if got := tile.GetBlock(0, y, 0); got != world.State(world.BlockLava) {
			t.Errorf("block at y=%d = %d, want lava below liquid altitude", y, got)
		}
	}
	for y := cfg.LiquidAltitude + 1; y <= c.TopY(); y++ {
		if got := tile.GetBlock(0, y, 0); got != world.BlockAir {
			t.Errorf("block at y=%d = %d, want air above liquid altitude", y, got)
		}
	}
	// Nothing above the ceiling is touched.
	if got := tile.GetBlock(0, c.TopY()+1, 0); got != world.State(world.BlockStone) {
		t.Errorf("block above ceiling = %d, want untouched stone", got)
	}
}

func TestCavernZeroAmplitudeLeavesSolid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	c := NewCavernBuilder(cfg.Seed).OfType(CavernLiquid, cfg).Build()

	tile := stoneColumn(40)
	col := constColumn(c.BottomY(), c.TopY(), 1)
	c.CarveColumn(tile, world.ColPos{X: 0, Z: 0}, c.TopY(), 0, col, world.State(world.BlockLava), false)

	for y := 0; y <= 40; y++ {
		if got := tile.GetBlock(0, y, 0); got != world.State(world.BlockStone) {
			t.Fatalf("block at y=%d = %d, zero amplitude should carve nothing", y, got)
		}
	}
}

func TestFlooredCavernKeepsFloor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	c := NewCavernBuilder(cfg.Seed).OfType(CavernFloored, cfg).Build()

	tile := stoneColumn(40)
	col := constColumn(c.BottomY(), c.TopY(), 1)
	c.CarveColumn(tile, world.ColPos{X: 0, Z: 0}, c.TopY(), 1, col, world.State(world.BlockLava), false)

	// The taper keeps the lowest blocks solid even with maximal noise.
	if got := tile.GetBlock(0, c.BottomY(), 0); got != world.State(world.BlockStone) {
		t.Error("floored cavern dug out its own floor")
	}
	// Well above the floor the cavern is open.
	if got := tile.GetBlock(0, c.TopY(), 0); got != world.BlockAir {
		t.Errorf("block at cavern top = %d, want air", got)
	}
}

func TestFloodedCavernFillsWithWater(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	c := NewCavernBuilder(cfg.Seed).OfType(CavernLiquid, cfg).Build()

	tile := stoneColumn(40)
	col := constColumn(c.BottomY(), c.TopY(), 1)
	c.CarveColumn(tile, world.ColPos{X: 0, Z: 0}, c.TopY(), 1, col, world.State(world.BlockWater), true)

	for y := c.BottomY(); y <= c.TopY(); y++ {
		if got := tile.GetBlock(0, y, 0); got != world.State(world.BlockWater) {
			t.Errorf("block at y=%d = %d, flooded cavern below sea level should be water", y, got)
		}
	}
}

func TestDebugVisualizerPlacesMarkerBlocks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	cfg.DebugVisualizer = true
	c := NewCavernBuilder(cfg.Seed).
		OfType(CavernLiquid, cfg).
		DebugBlock(world.State(world.BlockRedstone)).
		Build()

	tile := stoneColumn(40)
	col := constColumn(c.BottomY(), c.TopY(), 1)
	c.CarveColumn(tile, world.ColPos{X: 0, Z: 0}, c.TopY(), 1, col, world.State(world.BlockLava), false)

	if got := tile.GetBlock(0, 20, 0); got != world.State(world.BlockRedstone) {
		t.Errorf("debug view block = %d, want marker block", got)
	}
}
