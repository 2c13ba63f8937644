package worldgen

import "github.com/everwildmud/everwild/internal/logger"

// Generator registry. Populated at init and optionally extended through
// RegisterGenerator during startup; read-only once generation begins, which
// keeps GenerateRoom safe to call from any number of goroutines.
var generators = map[GeneratorKind]Generator{
	KindSurface:     surfaceGenerator{},
	KindUnderground: undergroundGenerator{},
}

// RegisterGenerator installs a generator for a kind, replacing any existing
// one. Call it during startup only; the registry is not synchronized.
func RegisterGenerator(kind GeneratorKind, g Generator) {
	generators[kind] = g
}

func generatorFor(kind GeneratorKind) Generator {
	g, ok := generators[kind]
	if !ok {
		logger.Warning("No generator registered, falling back to surface", "kind", string(kind))
		return generators[KindSurface]
	}
	return g
}

// GenerateRoom runs the full pipeline for a coordinate: classify the biome,
// route to the matching generator, overlay landmark influence, and attach
// the fallback description. It is pure with respect to its inputs; the same
// coordinate and context always produce an identical blueprint.
func GenerateRoom(coords Coordinate, ctx GenerationContext) RoomBlueprint {
	sample := Classify(coords)

	blueprint := generatorFor(sample.Kind).Generate(coords, sample, ctx)

	if lm := NearestLandmark(coords); lm != nil {
		blueprint.Landmark = lm.DescriptionModifier
		for _, feature := range lm.Terrain {
			if !hasTerrain(blueprint.Terrain, feature) {
				blueprint.Terrain = append(blueprint.Terrain, feature)
			}
		}
		// The override applies only at the center tile itself; rooms in
		// the influence radius keep their natural biome.
		if lm.BiomeOverride != "" && lm.Center == coords {
			blueprint.Biome = lm.BiomeOverride
		}
	}

	blueprint.Description = FallbackDescription(blueprint)

	return blueprint
}

func hasTerrain(terrain []TerrainFeature, feature TerrainFeature) bool {
	for _, t := range terrain {
		if t.Name == feature.Name && t.Type == feature.Type {
			return true
		}
	}
	return false
}
