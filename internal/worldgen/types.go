// Package worldgen generates room blueprints for the infinite overworld from
// integer grid coordinates alone. Everything here is pure, seeded computation:
// the same coordinates and context always produce the same blueprint, no matter
// which process or goroutine asks. The caller (the room materialization layer)
// resolves exit coordinates to persistent room records.
package worldgen

// Direction is a named exit direction.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Cardinals lists the four horizontal directions in canonical scan order.
var Cardinals = []Direction{North, South, East, West}

// AllDirections lists every direction, cardinals first.
var AllDirections = []Direction{North, South, East, West, Up, Down}

var directionDeltas = map[Direction][3]int{
	North: {0, 1, 0},
	South: {0, -1, 0},
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	Up:    {0, 0, 1},
	Down:  {0, 0, -1},
}

var opposites = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Up:    Down,
	Down:  Up,
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Coordinate identifies a room on the world grid. Z < 0 is underground.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Step returns the coordinate one tile away in the given direction.
func (c Coordinate) Step(d Direction) Coordinate {
	delta := directionDeltas[d]
	return Coordinate{X: c.X + delta[0], Y: c.Y + delta[1], Z: c.Z + delta[2]}
}

// GeneratorKind selects which generator handles a biome.
type GeneratorKind string

const (
	KindSurface     GeneratorKind = "surface"
	KindUnderground GeneratorKind = "underground"
)

// Scale is a coarse room-size classification used to modulate description tone.
type Scale string

const (
	ScaleCramped Scale = "cramped"
	ScaleRoom    Scale = "room"
	ScaleWide    Scale = "wide"
	ScaleVast    Scale = "vast"
)

// BiomeSample is the noise-derived biome information for a coordinate.
// It is recomputed on every call and never cached.
type BiomeSample struct {
	Elevation    float64 // -1..1: ocean, lowland, hills, mountains
	Moisture     float64 // -1..1: desert, dry, wet, swamp
	Civilization float64 // -1..1: wilderness, ruins, settled, roads
	Weirdness    float64 // -1..1: mundane, unusual, magical, eldritch
	Name         string  // resolved name: "dense_forest", "rocky_hills", ...
	Kind         GeneratorKind
}

// NeighborInfo describes an already-existing adjacent room.
type NeighborInfo struct {
	Coordinates Coordinate
	// HasExitToUs is true when the neighbor already has an exit pointing
	// back at the room being generated. Reciprocity then forces the
	// matching exit on our side.
	HasExitToUs bool
	Description string
	Biome       string
}

// GenerationContext carries what the caller already knows when a room is
// generated. It influences exits (reciprocity, return path) and descriptive
// coherence, never the underlying noise.
type GenerationContext struct {
	CameFrom            *Coordinate
	CameFromDescription string
	CameFromBiome       string
	Neighbors           map[Direction]NeighborInfo
}

// TerrainFeature is one entry from a biome's terrain catalog. A Weight at or
// above ImmovableWeight marks scenery that cannot be picked up.
type TerrainFeature struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
	Weight      int      `json:"weight" yaml:"weight"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// ImmovableWeight is the sentinel weight for scenery terrain.
const ImmovableWeight = 999

// RoomBlueprint is everything needed to materialize a room. Exits map
// directions to destination coordinates, not room identifiers; the caller
// resolves those.
type RoomBlueprint struct {
	Exits           map[Direction]Coordinate `json:"exits"`
	Biome           string                   `json:"biome"`
	Terrain         []TerrainFeature         `json:"terrain"`
	DescriptionHint string                   `json:"description_hint"`
	Description     string                   `json:"description"`
	Scale           Scale                    `json:"scale"`
	Tags            []string                 `json:"tags"`
	DistantFeatures []string                 `json:"distant_features"`
	Landmark        string                   `json:"landmark,omitempty"`
}

// Generator produces a partial blueprint for one coordinate; the pipeline
// fills in landmark influence and the final description afterwards.
type Generator interface {
	Generate(coords Coordinate, sample BiomeSample, ctx GenerationContext) RoomBlueprint
}
