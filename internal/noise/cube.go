package noise

// Cube is a 3D grid of noise samples spanning a horizontal box and a
// vertical span. It is built once per sub-tile and shared by every column
// in that sub-tile.
type Cube struct {
	bottomY int
	sizeX   int
	sizeZ   int
	vals    [][][]float64 // [localX][localZ][y-bottomY]
}

// BuildCube samples the source over the box [minX, minX+sizeX) ×
// [bottomY, topY] × [minZ, minZ+sizeZ) in world coordinates.
func BuildCube(s *Source, minX, minZ, sizeX, sizeZ, bottomY, topY int) *Cube {
	height := topY - bottomY + 1
	if height < 0 {
		height = 0
	}

	c := &Cube{bottomY: bottomY, sizeX: sizeX, sizeZ: sizeZ}
	c.vals = make([][][]float64, sizeX)
	for x := 0; x < sizeX; x++ {
		c.vals[x] = make([][]float64, sizeZ)
		for z := 0; z < sizeZ; z++ {
			col := make([]float64, height)
			for y := 0; y < height; y++ {
				col[y] = s.Sample3(float64(minX+x), float64(bottomY+y), float64(minZ+z))
			}
			c.vals[x][z] = col
		}
	}
	return c
}

// Column returns the vertical slice of samples for a local column offset.
func (c *Cube) Column(offsetX, offsetZ int) Column {
	return Column{bottomY: c.bottomY, vals: c.vals[offsetX][offsetZ]}
}

// Column is one column's slice of a Cube.
type Column struct {
	bottomY int
	vals    []float64
}

// NewColumn builds a standalone column; vals[0] is the sample at bottomY.
func NewColumn(bottomY int, vals []float64) Column {
	return Column{bottomY: bottomY, vals: vals}
}

// At returns the sample at world height y. Heights outside the column's
// span read as 0.
func (c Column) At(y int) float64 {
	i := y - c.bottomY
	if i < 0 || i >= len(c.vals) {
		return 0
	}
	return c.vals[i]
}

// Len returns the number of samples in the column.
func (c Column) Len() int { return len(c.vals) }
