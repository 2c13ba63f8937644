package worldgen

// Landmarks are implicit in the coordinate space rather than pre-placed: a
// coordinate-seeded hash decides whether a tile is a landmark center, and the
// same hash picks the catalog entry. No storage, no registry. The same
// coordinates always discover the same landmark.

const (
	// landmarkRarity gives roughly one landmark center per this many tiles.
	landmarkRarity = 150
	// maxLandmarkRadius bounds the neighborhood scan; no catalog entry may
	// declare a larger influence radius.
	maxLandmarkRadius = 5
)

// Landmark is a discovered point of interest with a radius of thematic
// influence on surrounding rooms.
type Landmark struct {
	Name                string
	Type                string // ruin, nature, settlement, mystical, danger
	Center              Coordinate
	Radius              int
	DescriptionModifier string
	Terrain             []TerrainFeature
	// BiomeOverride replaces the room biome, but only exactly at the center.
	BiomeOverride string
}

func landmarkSeed(c Coordinate) uint32 {
	return coordSeed("landmark:", c)
}

// IsLandmarkCenter reports whether the coordinate is a landmark center.
func IsLandmarkCenter(c Coordinate) bool {
	return landmarkSeed(c)%landmarkRarity == 0
}

// LandmarkAt returns the landmark centered exactly at c, or nil.
func LandmarkAt(c Coordinate) *Landmark {
	seed := landmarkSeed(c)
	if seed%landmarkRarity != 0 {
		return nil
	}

	entry := landmarkCatalog[int(seed)%len(landmarkCatalog)]
	return &Landmark{
		Name:                entry.Name,
		Type:                entry.Type,
		Center:              c,
		Radius:              entry.Radius,
		DescriptionModifier: entry.Modifier,
		Terrain:             entry.Terrain,
		BiomeOverride:       entry.BiomeOverride,
	}
}

// NearestLandmark returns the closest landmark whose influence radius reaches
// c, or nil. Distance is Manhattan; on equal distance the first center in
// scan order (dx ascending, then dy ascending) wins. The tie-break is load
// bearing: changing it would reshuffle influence zones in live worlds.
func NearestLandmark(c Coordinate) *Landmark {
	// Fast path: the queried tile is itself a center.
	if direct := LandmarkAt(c); direct != nil {
		return direct
	}

	var best *Landmark
	bestDist := maxLandmarkRadius + 1

	for dx := -maxLandmarkRadius; dx <= maxLandmarkRadius; dx++ {
		for dy := -maxLandmarkRadius; dy <= maxLandmarkRadius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			lm := LandmarkAt(Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z})
			if lm == nil {
				continue
			}
			dist := abs(dx) + abs(dy)
			if dist <= lm.Radius && dist < bestDist {
				best = lm
				bestDist = dist
			}
		}
	}

	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
