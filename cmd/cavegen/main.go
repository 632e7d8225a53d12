package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deepstone/cavegen/internal/config"
	"github.com/deepstone/cavegen/internal/terrain"
	"github.com/deepstone/cavegen/internal/world"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		configPath = flag.String("config", "", "YAML config file path")
		tiles      = flag.Int("tiles", 4, "generate a square of tiles from -N to N-1 on both axes")
		section    = flag.Bool("cross-section", false, "print an ASCII cross-section of tile (0,0)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.IntVar(&cfg.WorldRadius, "world-radius", cfg.WorldRadius, "world boundary in tiles (0 = infinite)")
	flag.StringVar(&cfg.RegionSize, "region-size", cfg.RegionSize, "cavern region size: small, medium, large, extra-large, custom")
	flag.Float64Var(&cfg.SpawnChance, "spawn-chance", cfg.SpawnChance, "percent of terrain that carves caverns")
	flag.BoolVar(&cfg.DebugVisualizer, "debug-visualizer", cfg.DebugVisualizer, "place marker blocks instead of carving")
	flag.BoolVar(&cfg.OverrideSurface, "override-surface", cfg.OverrideSurface, "ignore surface altitude when carving")
	flag.BoolVar(&cfg.FloodedUnderground, "flooded-underground", cfg.FloodedUnderground, "flood caverns under ocean biomes")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	gen := terrain.New(cfg, log)
	w := world.New(gen, world.Bounds{Radius: cfg.WorldRadius})

	// One worker per tile; tiles are independent.
	start := time.Now()
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	n := *tiles
	for tx := -n; tx < n; tx++ {
		for tz := -n; tz < n; tz++ {
			tx, tz := tx, tz
			eg.Go(func() error {
				w.GetOrGenerateTile(tx, tz)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}

	var air, water, lava int
	for tx := -n; tx < n; tx++ {
		for tz := -n; tz < n; tz++ {
			// Nil when -tiles reaches past the world radius.
			t := w.GetOrGenerateTile(tx, tz)
			if t == nil {
				continue
			}
			a, wt, l := countVoids(t)
			air += a
			water += wt
			lava += l
		}
	}
	log.Info("generation complete",
		"tiles", 4*n*n,
		"seed", cfg.Seed,
		"elapsed", time.Since(start),
		"carved_air", air,
		"carved_water", water,
		"carved_lava", lava)

	if *section {
		printCrossSection(w.GetOrGenerateTile(0, 0))
	}
}

// countVoids counts non-solid blocks in the underground span of a tile.
// A nil tile, outside the world boundary, counts nothing.
func countVoids(t *world.Tile) (air, water, lava int) {
	if t == nil {
		return 0, 0, 0
	}
	for x := 0; x < world.TileSize; x++ {
		for z := 0; z < world.TileSize; z++ {
			for y := 1; y < 40; y++ {
				switch t.GetBlock(x, y, z) {
				case world.BlockAir:
					air++
				case world.State(world.BlockWater):
					water++
				case world.State(world.BlockLava):
					lava++
				}
			}
		}
	}
	return air, water, lava
}

// printCrossSection dumps the z=8 plane of a tile, sea level down to
// bedrock, one character per block.
func printCrossSection(t *world.Tile) {
	const z = world.TileSize / 2
	for y := world.SeaLevel + 8; y >= 0; y-- {
		row := make([]byte, world.TileSize)
		for x := 0; x < world.TileSize; x++ {
			switch t.GetBlock(x, y, z) {
			case world.BlockAir:
				row[x] = ' '
			case world.State(world.BlockWater):
				row[x] = '~'
			case world.State(world.BlockLava):
				row[x] = '!'
			case world.State(world.BlockBedrock):
				row[x] = 'X'
			default:
				row[x] = '#'
			}
		}
		fmt.Printf("%3d %s\n", y, row)
	}
}
