package world

// TileSize is the horizontal extent of a tile in columns.
const TileSize = 16

// MaxHeight is the exclusive upper bound on block heights.
const MaxHeight = 256

// SeaLevel is the altitude water rises to in generated terrain.
const SeaLevel = 62

// Block state values, encoded as blockID<<4 | metadata.
const (
	BlockAir       = 0
	BlockStone     = 1
	BlockGrass     = 2
	BlockDirt      = 3
	BlockBedrock   = 7
	BlockWater     = 9 // stationary water
	BlockLava      = 11
	BlockSand      = 12
	BlockGravel    = 13
	BlockSandstone = 24
	BlockGoldBlock = 41
	BlockRedstone  = 152 // block of redstone
)

// State encodes a block ID into its state value.
func State(blockID uint16) uint16 { return blockID << 4 }

// TilePos identifies a tile by its X and Z coordinates.
type TilePos struct{ X, Z int }

// ColPos is a column position in tile-absolute (world) coordinates.
type ColPos struct{ X, Z int }

// Offset returns the column position shifted by (dx, dz).
func (p ColPos) Offset(dx, dz int) ColPos {
	return ColPos{X: p.X + dx, Z: p.Z + dz}
}

// TileX returns the X coordinate of the tile containing the column.
func (p ColPos) TileX() int { return p.X >> 4 }

// TileZ returns the Z coordinate of the tile containing the column.
func (p ColPos) TileZ() int { return p.Z >> 4 }

// section holds block data for a 16×16×16 vertical slice of a tile.
// Index = y*256 + z*16 + x.
type section struct {
	blocks [4096]uint16
}

// Tile holds the generated terrain for one 16×16 column of the world.
type Tile struct {
	sections [MaxHeight / 16]*section // nil = all-air
}

// SetBlock sets a block state at the given local coordinates.
// x, z must be in [0,16), y in [0,256).
func (t *Tile) SetBlock(x, y, z int, state uint16) {
	sec := y >> 4
	if t.sections[sec] == nil {
		if state == 0 {
			return
		}
		t.sections[sec] = &section{}
	}
	t.sections[sec].blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (t *Tile) GetBlock(x, y, z int) uint16 {
	sec := y >> 4
	if t.sections[sec] == nil {
		return 0
	}
	return t.sections[sec].blocks[(y&0xF)*256+z*16+x]
}

// Equal reports whether two tiles hold identical block data.
func (t *Tile) Equal(o *Tile) bool {
	for i := range t.sections {
		a, b := t.sections[i], o.sections[i]
		if a == nil && b == nil {
			continue
		}
		if a == nil || b == nil {
			// A nil section equals an allocated all-air one.
			filled := a
			if filled == nil {
				filled = b
			}
			for _, s := range filled.blocks {
				if s != 0 {
					return false
				}
			}
			continue
		}
		if a.blocks != b.blocks {
			return false
		}
	}
	return true
}
