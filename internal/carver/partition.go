package carver

import "github.com/deepstone/cavegen/internal/noise"

// BuildRanges partitions the region-noise domain [-1, 1] among the given
// carvers. Each carver receives a share of the domain proportional to its
// priority, scaled by spawnChance (the fraction of the domain that carves
// at all). The remaining fraction is spread as deadzone gaps between
// consecutive ranges, where no carving occurs.
//
// Shares are allocated in distribution percentiles, not linear noise
// widths, so a 10% share covers 10% of terrain. Carvers with priority 0
// are excluded; iteration order is the order carvers were registered, so
// equal priorities keep a deterministic allocation.
func BuildRanges(carvers []Carver, spawnChance float64) []*Range {
	active := make([]Carver, 0, len(carvers))
	totalPriority := 0
	for _, c := range carvers {
		if c.Priority() == 0 {
			continue
		}
		active = append(active, c)
		totalPriority += c.Priority()
	}
	if len(active) == 0 {
		return nil
	}

	totalDeadzone := 1 - spawnChance
	deadzonePercent := totalDeadzone
	if len(active) > 1 {
		deadzonePercent = totalDeadzone / float64(len(active)-1)
	}

	ranges := make([]*Range, 0, len(active))
	currNoise := -1.0
	for _, c := range active {
		rangePercent := float64(c.Priority()) / float64(totalPriority) * spawnChance
		topNoise := noise.OffsetByPercent(currNoise, rangePercent)
		ranges = append(ranges, newRange(currNoise, topNoise, c))

		// Skip past the deadzone before the next range starts.
		currNoise = noise.OffsetByPercent(topNoise, deadzonePercent)
	}
	return ranges
}
