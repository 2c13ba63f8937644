package worldgen

import "strings"

// The fallback description assembler. Callers that plug in a richer writer
// (an LLM, hand-authored text) may replace Description on the blueprint, but
// the structural fields, exits above all, stay authoritative.

var scaleAdjectives = map[Scale]string{
	ScaleCramped: "narrow",
	ScaleRoom:    "modest",
	ScaleWide:    "broad",
	ScaleVast:    "vast",
}

// FallbackDescription renders a deterministic room description from the
// blueprint alone. Template choice is seeded from the description hint, so
// rooms that feel the same read the same.
func FallbackDescription(bp RoomBlueprint) string {
	templates, ok := biomeTemplates[stripWeirdness(bp.Biome)]
	if !ok {
		templates = defaultTemplates
	}
	tmpl := templates[int(stringSeed(bp.DescriptionHint))%len(templates)]

	text := strings.NewReplacer(
		"{scale}", scaleAdjectives[bp.Scale],
		"{terrain_ref}", terrainRef(bp),
		"{distant_ref}", distantRef(bp),
	).Replace(tmpl)

	if bp.Landmark != "" {
		text += " You are " + bp.Landmark + "."
	}

	if strings.HasPrefix(bp.Biome, "eldritch_") {
		text += " The air shimmers with an unsettling, unnatural energy."
	} else if strings.HasPrefix(bp.Biome, "ancient_") {
		text += " There is a palpable sense of age to this place."
	}

	return strings.TrimSpace(text)
}

func terrainRef(bp RoomBlueprint) string {
	if len(bp.Terrain) == 0 {
		return ""
	}
	return "You notice " + bp.Terrain[0].Name + " nearby."
}

func distantRef(bp RoomBlueprint) string {
	if len(bp.DistantFeatures) == 0 {
		return ""
	}
	return bp.DistantFeatures[0]
}
