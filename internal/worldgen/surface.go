package worldgen

import "strings"

// exitProfile controls how connected a biome feels: how many cardinal exits
// a room typically has and the chance of a vertical exit appearing.
type exitProfile struct {
	baseExits    int
	upDownChance float64
}

var exitProfiles = map[string]exitProfile{
	// Open terrain, many paths.
	"plains":               {baseExits: 4, upDownChance: 0.0},
	"grassland":            {baseExits: 4, upDownChance: 0.0},
	"road":                 {baseExits: 2, upDownChance: 0.0},
	"settlement_outskirts": {baseExits: 3, upDownChance: 0.0},
	// Forests, paths wind.
	"forest":       {baseExits: 3, upDownChance: 0.0},
	"dense_forest": {baseExits: 2, upDownChance: 0.0},
	// Elevated, restricted, vertical possible.
	"rocky_hills":     {baseExits: 3, upDownChance: 0.3},
	"misty_highlands": {baseExits: 3, upDownChance: 0.2},
	"mountain_peak":   {baseExits: 2, upDownChance: 0.5},
	"hilltop_ruins":   {baseExits: 3, upDownChance: 0.3},
	// Wet terrain.
	"swamp":      {baseExits: 3, upDownChance: 0.1},
	"lake_shore": {baseExits: 3, upDownChance: 0.0},
	// Dry terrain.
	"desert":    {baseExits: 3, upDownChance: 0.0},
	"scrubland": {baseExits: 3, upDownChance: 0.0},
	// Low terrain.
	"ravine": {baseExits: 2, upDownChance: 0.4},
}

// defaultExitProfile covers biomes without an entry, including ones added by
// external generator registrations.
var defaultExitProfile = exitProfile{baseExits: 3, upDownChance: 0.1}

var biomeScales = map[string]Scale{
	"plains":               ScaleVast,
	"grassland":            ScaleWide,
	"desert":               ScaleVast,
	"forest":               ScaleRoom,
	"dense_forest":         ScaleCramped,
	"swamp":                ScaleRoom,
	"rocky_hills":          ScaleWide,
	"mountain_peak":        ScaleRoom,
	"road":                 ScaleWide,
	"settlement_outskirts": ScaleWide,
	"lake_shore":           ScaleWide,
	"ravine":               ScaleCramped,
	"hilltop_ruins":        ScaleRoom,
	"misty_highlands":      ScaleWide,
	"scrubland":            ScaleWide,
}

// Ambient tags carried on the blueprint, not placed as terrain.
var biomeTags = map[string][]string{
	"plains":               {"open", "windy", "grass"},
	"grassland":            {"open", "gentle", "grass"},
	"forest":               {"wooded", "shaded", "birdsong"},
	"dense_forest":         {"dark", "overgrown", "damp", "quiet"},
	"swamp":                {"wet", "murky", "insects", "stench"},
	"rocky_hills":          {"exposed", "rocky", "windy"},
	"mountain_peak":        {"cold", "windy", "exposed", "high"},
	"desert":               {"hot", "dry", "sand", "glare"},
	"scrubland":            {"dry", "dusty", "sparse"},
	"lake_shore":           {"water", "breeze", "pebbles"},
	"road":                 {"dusty", "flat", "worn"},
	"settlement_outskirts": {"civilization", "fences", "smoke"},
	"hilltop_ruins":        {"ancient", "crumbling", "overgrown"},
	"ravine":               {"narrow", "echoing", "damp", "shadowed"},
	"misty_highlands":      {"misty", "heather", "windy", "damp"},
}

// surfaceGenerator produces blueprints for every surface biome. Exit count,
// terrain, scale, tags, and distant features all derive from the coordinate
// seed and the biome sample, never from shared mutable state.
type surfaceGenerator struct{}

func (surfaceGenerator) Generate(coords Coordinate, sample BiomeSample, ctx GenerationContext) RoomBlueprint {
	// Weirdness-prefixed biomes share the base biome's catalogs.
	lookup := stripWeirdness(sample.Name)
	seed := coordSeed("", coords)

	exits := surfaceExits(coords, lookup, seed, sample, ctx)

	catalog := terrainCatalog[lookup]
	count := 1 + int(seed%3)
	terrain := seededSample(seed, catalog, count)

	scale, ok := biomeScales[lookup]
	if !ok {
		scale = ScaleRoom
	}

	var tags []string
	if known, ok := biomeTags[lookup]; ok {
		tags = append(tags, known...)
	} else {
		tags = append(tags, "unknown")
	}
	if sample.Weirdness > 0.35 {
		tags = append(tags, "ancient")
	}
	if sample.Weirdness > 0.6 {
		tags = append(tags, "eldritch")
	}

	distant := distantFeatures(coords, exits, lookup)

	hintParts := []string{strings.ReplaceAll(lookup, "_", " ")}
	if ctx.CameFromBiome != "" {
		hintParts = append(hintParts, "arrived from "+ctx.CameFromBiome)
	}
	if len(tags) > 0 {
		feel := tags
		if len(feel) > 3 {
			feel = feel[:3]
		}
		hintParts = append(hintParts, "feels "+strings.Join(feel, ", "))
	}

	return RoomBlueprint{
		Exits:           exits,
		Biome:           sample.Name,
		Terrain:         terrain,
		DescriptionHint: strings.Join(hintParts, "; "),
		Scale:           scale,
		Tags:            tags,
		DistantFeatures: distant,
	}
}

func surfaceExits(coords Coordinate, lookup string, seed uint32, sample BiomeSample, ctx GenerationContext) map[Direction]Coordinate {
	profile, ok := exitProfiles[lookup]
	if !ok {
		profile = defaultExitProfile
	}

	selected := forcedDirections(coords, ctx)
	for _, dir := range rankedCardinals(seed, selected) {
		if len(selected) >= profile.baseExits {
			break
		}
		selected[dir] = true
	}

	if profile.upDownChance > 0 {
		if float64((seed>>16)%100)/100.0 < profile.upDownChance {
			if sample.Elevation > 0.3 {
				selected[Up] = true
			} else {
				selected[Down] = true
			}
		}
	}

	return exitMap(coords, selected)
}

// distantFeatures probes the biome field a few tiles out along each open
// cardinal exit and reports visible transitions. Directions are walked in a
// fixed order so the sentence list is stable per coordinate. At most one
// feature per direction, three per room, duplicates dropped.
func distantFeatures(coords Coordinate, exits map[Direction]Coordinate, current string) []string {
	var features []string

	for _, dir := range Cardinals {
		if _, open := exits[dir]; !open {
			continue
		}
		delta := directionDeltas[dir]
		for _, distance := range []int{3, 5} {
			far := Coordinate{
				X: coords.X + delta[0]*distance,
				Y: coords.Y + delta[1]*distance,
				Z: coords.Z,
			}
			farName := stripWeirdness(Classify(far).Name)
			if farName == current {
				continue
			}
			templates, ok := distantTemplates[farName]
			if !ok {
				continue
			}
			tmpl, ok := seededChoice(coordSeed("", far), templates, 0)
			if ok {
				feature := strings.ReplaceAll(tmpl, "{dir}", string(dir))
				if !containsString(features, feature) {
					features = append(features, feature)
				}
			}
			break
		}
		if len(features) >= 3 {
			break
		}
	}

	return features
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
