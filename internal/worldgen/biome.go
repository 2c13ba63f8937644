package worldgen

// Four independent noise layers drive biome classification. Each layer reads
// the same underlying noise function at its own frequency and large constant
// offset, which decorrelates the layers without needing four gradient tables.

type noiseLayer struct {
	scale  float64
	offset float64
}

var layers = struct {
	elevation    noiseLayer
	moisture     noiseLayer
	civilization noiseLayer
	weirdness    noiseLayer
}{
	elevation:    noiseLayer{scale: 0.03, offset: 0.0},
	moisture:     noiseLayer{scale: 0.05, offset: 100.0},
	civilization: noiseLayer{scale: 0.02, offset: 200.0},
	weirdness:    noiseLayer{scale: 0.08, offset: 300.0},
}

func (l noiseLayer) sample(x, y int) float64 {
	return noise2D(float64(x)*l.scale+l.offset, float64(y)*l.scale+l.offset)
}

// Underground biome names by depth. Deeper than the table is "deep_underground".
var undergroundBiomes = map[int]string{
	-1: "shallow_cave",
	-2: "underground_passage",
	-3: "deep_cavern",
}

// Classify derives the biome sample for a coordinate. Pure math, no
// randomness: the same coordinate always classifies identically.
func Classify(c Coordinate) BiomeSample {
	elev := layers.elevation.sample(c.X, c.Y)
	moist := layers.moisture.sample(c.X, c.Y)
	civ := layers.civilization.sample(c.X, c.Y)
	weird := layers.weirdness.sample(c.X, c.Y)

	// Higher z means higher effective elevation.
	elev = clamp(elev+float64(c.Z)*0.3, -1.0, 1.0)

	var name string
	kind := KindSurface
	if c.Z < 0 {
		name = classifyUnderground(c.Z, moist, weird)
		kind = KindUnderground
	} else {
		name = applyWeirdness(classifySurface(elev, moist, civ), weird)
	}

	return BiomeSample{
		Elevation:    elev,
		Moisture:     moist,
		Civilization: civ,
		Weirdness:    weird,
		Name:         name,
		Kind:         kind,
	}
}

// classifySurface maps noise values to a surface biome. Civilization
// dominates, then elevation extremes, then moisture bands.
func classifySurface(elev, moist, civ float64) string {
	if civ > 0.4 {
		if civ > 0.7 {
			return "road"
		}
		if elev > 0.3 {
			return "hilltop_ruins"
		}
		return "settlement_outskirts"
	}

	if elev > 0.6 {
		return "mountain_peak"
	}
	if elev > 0.35 {
		if moist > 0.2 {
			return "misty_highlands"
		}
		return "rocky_hills"
	}

	if elev < -0.5 {
		if moist > 0.3 {
			return "lake_shore"
		}
		return "ravine"
	}

	if moist > 0.5 {
		if elev < 0.0 {
			return "swamp"
		}
		return "dense_forest"
	}
	if moist > 0.15 {
		return "forest"
	}
	if moist > -0.2 {
		if elev > 0.1 {
			return "grassland"
		}
		return "plains"
	}

	if moist < -0.4 {
		return "desert"
	}
	return "scrubland"
}

// applyWeirdness prefixes the biome name when the weirdness layer runs high.
func applyWeirdness(name string, weird float64) string {
	if weird > 0.6 {
		return "eldritch_" + name
	}
	if weird > 0.35 {
		return "ancient_" + name
	}
	return name
}

func classifyUnderground(z int, moist, weird float64) string {
	name, ok := undergroundBiomes[z]
	if !ok {
		if z < -3 {
			name = "deep_underground"
		} else {
			name = "shallow_cave"
		}
	}

	if moist > 0.4 {
		name = "underground_river"
	}
	if weird > 0.5 {
		name = "crystal_cavern"
	}
	return name
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stripWeirdness removes the weirdness prefix for catalog lookups, returning
// the base biome name.
func stripWeirdness(name string) string {
	for _, prefix := range []string{"eldritch_", "ancient_"} {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			return name[len(prefix):]
		}
	}
	return name
}
