package world

// SurfaceAltitude returns the y-coordinate of the surface for a column,
// scanning the full build height. Water counts as surface.
func SurfaceAltitude(t *Tile, localX, localZ int) int {
	return SearchSurfaceAltitude(t, localX, localZ, MaxHeight-1, 0)
}

// SearchSurfaceAltitude returns the y-coordinate of the first air or water
// block scanning upward from bottomY to topY. Returns topY when the column
// is solid all the way up, and 1 when no surface is found.
func SearchSurfaceAltitude(t *Tile, localX, localZ, topY, bottomY int) int {
	// Edge case: blocks go all the way up to build height.
	if topY == MaxHeight-1 {
		top := t.GetBlock(localX, topY, localZ)
		if top != BlockAir && top != State(BlockWater) {
			return topY
		}
	}

	for y := bottomY; y <= topY; y++ {
		state := t.GetBlock(localX, y, localZ)
		if state == BlockAir || state == State(BlockWater) {
			return y
		}
	}

	return 1 // surface somehow not found
}
