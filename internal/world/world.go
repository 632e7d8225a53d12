package world

import "sync"

// Generator produces tile terrain deterministically from tile coordinates.
type Generator interface {
	Generate(tileX, tileZ int) *Tile
	HeightAt(blockX, blockZ int) int
}

// Bounds is the known extent of the world in tiles. Radius 0 means
// unbounded. The boundary search uses it to skip probes into columns that
// will never exist.
type Bounds struct {
	Radius int
}

// Exists reports whether the given tile lies inside the world bounds.
func (b Bounds) Exists(tileX, tileZ int) bool {
	if b.Radius <= 0 {
		return true
	}
	return tileX >= -b.Radius && tileX < b.Radius && tileZ >= -b.Radius && tileZ < b.Radius
}

// World caches generated tiles. Generation itself runs outside the lock so
// independent tiles can be produced concurrently by separate workers.
type World struct {
	mu        sync.RWMutex
	tiles     map[TilePos]*Tile
	generator Generator
	bounds    Bounds
}

// New creates a World with the given generator and bounds.
func New(generator Generator, bounds Bounds) *World {
	return &World{
		tiles:     make(map[TilePos]*Tile),
		generator: generator,
		bounds:    bounds,
	}
}

// Bounds returns the world's tile bounds.
func (w *World) Bounds() Bounds { return w.bounds }

// GetOrGenerateTile returns the Tile at the given tile coordinates,
// generating and caching it if needed. Returns nil outside the bounds.
func (w *World) GetOrGenerateTile(tx, tz int) *Tile {
	if !w.bounds.Exists(tx, tz) {
		return nil
	}
	pos := TilePos{X: tx, Z: tz}

	w.mu.RLock()
	if t, ok := w.tiles[pos]; ok {
		w.mu.RUnlock()
		return t
	}
	w.mu.RUnlock()

	t := w.generator.Generate(tx, tz)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.tiles[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.tiles[pos] = t
	w.mu.Unlock()
	return t
}

// GetBlock returns the block state at a world position, generating the
// containing tile on demand. Out-of-bounds positions read as air.
func (w *World) GetBlock(x, y, z int) uint16 {
	if y < 0 || y >= MaxHeight {
		return BlockAir
	}
	t := w.GetOrGenerateTile(x>>4, z>>4)
	if t == nil {
		return BlockAir
	}
	return t.GetBlock(x&0xF, y, z&0xF)
}
