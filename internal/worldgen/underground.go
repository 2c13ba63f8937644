package worldgen

import "strings"

// undergroundGenerator produces blueprints for cave biomes (z < 0). Caves are
// more restrictive than the surface: two to three exits, cramped scale more
// often than not, and no distant features since nothing is visible far off.
// Its seed salt is distinct from the surface salt, so a cave at (x, y, -1)
// never mirrors the room at (x, y, 0).
type undergroundGenerator struct{}

func (undergroundGenerator) Generate(coords Coordinate, sample BiomeSample, ctx GenerationContext) RoomBlueprint {
	seed := coordSeed("dungeon:", coords)
	biome := sample.Name
	if biome == "" {
		biome = "shallow_cave"
	}

	exits := undergroundExits(coords, seed, ctx)

	count := 1 + int(seed%2)
	terrain := seededSample(seed, caveTerrain, count)

	tags := []string{"underground", "dark", "damp", "echoing"}
	switch biome {
	case "crystal_cavern":
		tags = append(tags, "glowing", "mystical")
	case "underground_river":
		tags = append(tags, "water", "rushing")
	}

	hintParts := []string{strings.ReplaceAll(biome, "_", " ")}
	if ctx.CameFromBiome != "" {
		hintParts = append(hintParts, "descended from "+ctx.CameFromBiome)
	}

	scale := ScaleCramped
	if seed%3 == 0 {
		scale = ScaleRoom
	}

	return RoomBlueprint{
		Exits:           exits,
		Biome:           biome,
		Terrain:         terrain,
		DescriptionHint: strings.Join(hintParts, "; "),
		Scale:           scale,
		Tags:            tags,
	}
}

func undergroundExits(coords Coordinate, seed uint32, ctx GenerationContext) map[Direction]Coordinate {
	selected := forcedDirections(coords, ctx)

	target := 2 + int(seed%2)
	for _, dir := range rankedCardinals(seed, selected) {
		if len(selected) >= target {
			break
		}
		selected[dir] = true
	}

	// Occasionally the cave continues vertically. Going up is always
	// possible underground; going further down needs depth below -1.
	if (seed>>12)%3 == 0 {
		if coords.Z < -1 {
			selected[Down] = true
		}
		if coords.Z < 0 {
			selected[Up] = true
		}
	}

	return exitMap(coords, selected)
}
