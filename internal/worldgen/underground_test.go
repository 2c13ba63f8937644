package worldgen

import (
	"reflect"
	"testing"
)

func TestUndergroundGenerate(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 5, Y: 5, Z: -1}
	sample := Classify(coords)

	bp := gen.Generate(coords, sample, GenerationContext{})

	if len(bp.Exits) == 0 {
		t.Error("Cave blueprint has no exits")
	}
	if !containsString(bp.Tags, "underground") {
		t.Errorf("Cave missing underground tag, got %v", bp.Tags)
	}
	if bp.Scale != ScaleCramped && bp.Scale != ScaleRoom {
		t.Errorf("Cave scale = %q, want cramped or room", bp.Scale)
	}
	if len(bp.DistantFeatures) != 0 {
		t.Errorf("Caves cannot see distant features, got %v", bp.DistantFeatures)
	}
}

func TestUndergroundExitCount(t *testing.T) {
	gen := undergroundGenerator{}
	for x := 0; x < 25; x++ {
		coords := Coordinate{X: x, Y: 5, Z: -1}
		bp := gen.Generate(coords, Classify(coords), GenerationContext{})
		if len(bp.Exits) < 2 || len(bp.Exits) > 6 {
			t.Errorf("Cave exits at %+v = %d, want 2..6", coords, len(bp.Exits))
		}
	}
}

func TestUndergroundCameFromForced(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 5, Y: 6, Z: -1}
	cameFrom := Coordinate{X: 5, Y: 5, Z: -1}

	bp := gen.Generate(coords, Classify(coords), GenerationContext{CameFrom: &cameFrom})

	if _, ok := bp.Exits[South]; !ok {
		t.Error("Cave must keep the exit back to the arrival coordinate")
	}
}

func TestUndergroundDescentFromSurfaceForced(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 8, Y: 8, Z: -1}
	cameFrom := Coordinate{X: 8, Y: 8, Z: 0} // entered from the surface above

	bp := gen.Generate(coords, Classify(coords), GenerationContext{CameFrom: &cameFrom})

	if _, ok := bp.Exits[Up]; !ok {
		t.Error("Descending into a cave must leave a way back up")
	}
}

func TestUndergroundVerticalExitsRespectDepth(t *testing.T) {
	gen := undergroundGenerator{}
	// z = -1 never gains a down exit from the vertical roll: descent
	// requires depth below -1.
	for x := 0; x < 50; x++ {
		coords := Coordinate{X: x, Y: 9, Z: -1}
		bp := gen.Generate(coords, Classify(coords), GenerationContext{})
		if _, ok := bp.Exits[Down]; ok {
			t.Errorf("Cave at z=-1 grew a down exit at %+v", coords)
		}
	}
}

func TestUndergroundTerrainFromCaveCatalog(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 5, Y: 5, Z: -2}
	bp := gen.Generate(coords, Classify(coords), GenerationContext{})

	if len(bp.Terrain) < 1 || len(bp.Terrain) > 2 {
		t.Errorf("Cave terrain count = %d, want 1..2", len(bp.Terrain))
	}
	for _, terrain := range bp.Terrain {
		found := false
		for _, entry := range caveTerrain {
			if entry.Name == terrain.Name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Terrain %q not in the cave catalog", terrain.Name)
		}
	}
}

func TestUndergroundBiomeTags(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 5, Y: 5, Z: -2}

	crystal := BiomeSample{Name: "crystal_cavern", Kind: KindUnderground}
	bp := gen.Generate(coords, crystal, GenerationContext{})
	if !containsString(bp.Tags, "glowing") || !containsString(bp.Tags, "mystical") {
		t.Errorf("Crystal cavern tags = %v, want glowing and mystical", bp.Tags)
	}

	river := BiomeSample{Name: "underground_river", Kind: KindUnderground}
	bp = gen.Generate(coords, river, GenerationContext{})
	if !containsString(bp.Tags, "water") || !containsString(bp.Tags, "rushing") {
		t.Errorf("Underground river tags = %v, want water and rushing", bp.Tags)
	}
}

func TestUndergroundDeterminism(t *testing.T) {
	gen := undergroundGenerator{}
	coords := Coordinate{X: 13, Y: -4, Z: -3}
	sample := Classify(coords)

	bp1 := gen.Generate(coords, sample, GenerationContext{})
	bp2 := gen.Generate(coords, sample, GenerationContext{})

	if !reflect.DeepEqual(bp1, bp2) {
		t.Errorf("Cave generation not deterministic:\n%+v\n%+v", bp1, bp2)
	}
}

func TestUndergroundSeedDiffersFromSurface(t *testing.T) {
	c := Coordinate{X: 7, Y: 7, Z: 0}
	if coordSeed("", c) == coordSeed("dungeon:", c) {
		t.Error("Surface and underground seeds must not collide for the same tile")
	}
}
