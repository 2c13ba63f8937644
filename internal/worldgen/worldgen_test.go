package worldgen

import (
	"reflect"
	"testing"
)

func TestGenerateRoom(t *testing.T) {
	bp := GenerateRoom(Coordinate{X: 10, Y: 10, Z: 0}, GenerationContext{})

	if len(bp.Exits) == 0 {
		t.Error("Pipeline produced no exits")
	}
	if bp.Biome == "" {
		t.Error("Pipeline produced no biome")
	}
	if bp.Description == "" {
		t.Error("Pipeline produced no description")
	}
	switch bp.Scale {
	case ScaleCramped, ScaleRoom, ScaleWide, ScaleVast:
	default:
		t.Errorf("Unexpected scale %q", bp.Scale)
	}
}

func TestGenerateRoomUnderground(t *testing.T) {
	bp := GenerateRoom(Coordinate{X: 5, Y: 5, Z: -1}, GenerationContext{})

	if len(bp.Exits) == 0 {
		t.Error("Underground pipeline produced no exits")
	}
	if !containsString(bp.Tags, "underground") && !containsString(bp.Tags, "dark") {
		t.Errorf("Underground room missing expected tags, got %v", bp.Tags)
	}
}

func TestGenerateRoomDeterminism(t *testing.T) {
	bp1 := GenerateRoom(Coordinate{X: 42, Y: 42, Z: 0}, GenerationContext{})
	bp2 := GenerateRoom(Coordinate{X: 42, Y: 42, Z: 0}, GenerationContext{})

	if !reflect.DeepEqual(bp1.Exits, bp2.Exits) {
		t.Errorf("Exits differ: %v vs %v", bp1.Exits, bp2.Exits)
	}
	if bp1.Biome != bp2.Biome {
		t.Errorf("Biome differs: %q vs %q", bp1.Biome, bp2.Biome)
	}
	if bp1.Scale != bp2.Scale {
		t.Errorf("Scale differs: %q vs %q", bp1.Scale, bp2.Scale)
	}
	if bp1.Description != bp2.Description {
		t.Errorf("Description differs:\n%q\n%q", bp1.Description, bp2.Description)
	}
}

func TestGenerateRoomWithContext(t *testing.T) {
	cameFrom := Coordinate{X: 5, Y: 5, Z: 0}
	ctx := GenerationContext{
		CameFrom:            &cameFrom,
		CameFromDescription: "A dense forest clearing.",
		CameFromBiome:       "forest",
	}
	bp := GenerateRoom(Coordinate{X: 5, Y: 6, Z: 0}, ctx)

	if _, ok := bp.Exits[South]; !ok {
		t.Error("Pipeline must keep the exit back to the arrival coordinate")
	}
}

func TestLandmarkInfluenceInPipeline(t *testing.T) {
	lm := findLandmarkCenter(t)

	bp := GenerateRoom(lm.Center, GenerationContext{})

	if bp.Landmark == "" {
		t.Fatal("Blueprint at a landmark center should carry the landmark modifier")
	}
	if bp.Landmark != lm.DescriptionModifier {
		t.Errorf("Landmark = %q, want %q", bp.Landmark, lm.DescriptionModifier)
	}

	// Landmark terrain merges into the blueprint without duplicates.
	for _, feature := range lm.Terrain {
		count := 0
		for _, terrain := range bp.Terrain {
			if terrain.Name == feature.Name {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Landmark terrain %q appears %d times, want exactly 1", feature.Name, count)
		}
	}

	// The biome override applies at the center when the entry declares one.
	if lm.BiomeOverride != "" && bp.Biome != lm.BiomeOverride {
		t.Errorf("Biome at center = %q, want override %q", bp.Biome, lm.BiomeOverride)
	}
}

func TestDefaultGeneratorsRegistered(t *testing.T) {
	if _, ok := generators[KindSurface]; !ok {
		t.Error("Surface generator not registered")
	}
	if _, ok := generators[KindUnderground]; !ok {
		t.Error("Underground generator not registered")
	}
}

type stubGenerator struct{}

func (stubGenerator) Generate(coords Coordinate, sample BiomeSample, ctx GenerationContext) RoomBlueprint {
	return RoomBlueprint{
		Exits: map[Direction]Coordinate{North: coords.Step(North)},
		Biome: "test_biome",
		Scale: ScaleRoom,
	}
}

func TestRegisterCustomGenerator(t *testing.T) {
	kind := GeneratorKind("test")
	RegisterGenerator(kind, stubGenerator{})
	defer delete(generators, kind)

	got := generatorFor(kind)
	if _, ok := got.(stubGenerator); !ok {
		t.Errorf("generatorFor(%q) = %T, want stubGenerator", kind, got)
	}
}

func TestUnknownKindFallsBackToSurface(t *testing.T) {
	got := generatorFor(GeneratorKind("nonexistent"))
	if _, ok := got.(surfaceGenerator); !ok {
		t.Errorf("Unknown kind returned %T, want the surface generator", got)
	}
}
