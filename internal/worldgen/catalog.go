package worldgen

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The flavor catalogs (terrain features, landmarks, description templates)
// ship as YAML embedded in the binary and are parsed exactly once at package
// init. They are read-only afterwards, which is what makes lock-free
// concurrent generation safe. A parse failure is a build defect, so loading
// panics rather than returning an error.

//go:embed data/terrain.yaml data/landmarks.yaml data/templates.yaml
var catalogFS embed.FS

type terrainFile struct {
	Biomes map[string][]TerrainFeature `yaml:"biomes"`
	Cave   []TerrainFeature            `yaml:"cave"`
}

type landmarkEntry struct {
	Name          string           `yaml:"name"`
	Type          string           `yaml:"type"`
	Radius        int              `yaml:"radius"`
	BiomeOverride string           `yaml:"biome_override"`
	Modifier      string           `yaml:"modifier"`
	Terrain       []TerrainFeature `yaml:"terrain"`
}

type landmarkFile struct {
	Landmarks []landmarkEntry `yaml:"landmarks"`
}

type templateFile struct {
	Biomes  map[string][]string `yaml:"biomes"`
	Default []string            `yaml:"default"`
	Distant map[string][]string `yaml:"distant"`
}

var (
	terrainCatalog   map[string][]TerrainFeature
	caveTerrain      []TerrainFeature
	landmarkCatalog  []landmarkEntry
	biomeTemplates   map[string][]string
	defaultTemplates []string
	distantTemplates map[string][]string
)

func init() {
	var terrain terrainFile
	mustLoadCatalog("data/terrain.yaml", &terrain)
	terrainCatalog = terrain.Biomes
	caveTerrain = terrain.Cave

	var landmarks landmarkFile
	mustLoadCatalog("data/landmarks.yaml", &landmarks)
	landmarkCatalog = landmarks.Landmarks
	if len(landmarkCatalog) == 0 {
		panic("worldgen: landmark catalog is empty")
	}

	var templates templateFile
	mustLoadCatalog("data/templates.yaml", &templates)
	biomeTemplates = templates.Biomes
	defaultTemplates = templates.Default
	distantTemplates = templates.Distant
	if len(defaultTemplates) == 0 {
		panic("worldgen: default description templates missing")
	}
}

func mustLoadCatalog(path string, out any) {
	data, err := catalogFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("worldgen: missing embedded catalog %s: %v", path, err))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("worldgen: malformed catalog %s: %v", path, err))
	}
}
