package worldgen

import "sort"

// Exit selection shared by the surface and underground generators. Two rules
// are absolute and come before any flavor: a neighbor that already has an
// exit pointing at us gets a reciprocal exit, and a traveler always gets a
// way back to the room they came from. Everything after that is seeded fill.

// forcedDirections returns the exits that must exist regardless of biome:
// reciprocal exits toward neighbors that link to us, plus the direction back
// to the coordinate the traveler arrived from. All six directions are
// checked, so vertical arrivals get a return path too.
func forcedDirections(coords Coordinate, ctx GenerationContext) map[Direction]bool {
	forced := make(map[Direction]bool)
	for dir, info := range ctx.Neighbors {
		if info.HasExitToUs {
			forced[dir] = true
		}
	}
	if ctx.CameFrom != nil {
		for _, dir := range AllDirections {
			if coords.Step(dir) == *ctx.CameFrom {
				forced[dir] = true
				break
			}
		}
	}
	return forced
}

// rankedCardinals orders the cardinal directions not already selected by a
// seed-derived key, so the fill order is stable per coordinate but varies
// across the map.
func rankedCardinals(seed uint32, selected map[Direction]bool) []Direction {
	remaining := make([]Direction, 0, len(Cardinals))
	for _, dir := range Cardinals {
		if !selected[dir] {
			remaining = append(remaining, dir)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		ki := (seed + directionSalt(remaining[i])) % 1000
		kj := (seed + directionSalt(remaining[j])) % 1000
		if ki != kj {
			return ki < kj
		}
		return remaining[i] < remaining[j]
	})
	return remaining
}

func exitMap(coords Coordinate, selected map[Direction]bool) map[Direction]Coordinate {
	exits := make(map[Direction]Coordinate, len(selected))
	for dir := range selected {
		exits[dir] = coords.Step(dir)
	}
	return exits
}
