package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/everwildmud/everwild/internal/worldgen"
)

// biomeSymbols maps every biome the classifier can emit to one map glyph.
var biomeSymbols = map[string]rune{
	"plains":               '.',
	"grassland":            ',',
	"forest":               't',
	"dense_forest":         'T',
	"swamp":                's',
	"rocky_hills":          'h',
	"mountain_peak":        '^',
	"desert":               'd',
	"scrubland":            ':',
	"lake_shore":           '~',
	"road":                 '=',
	"settlement_outskirts": 'o',
	"hilltop_ruins":        'r',
	"ravine":               'v',
	"misty_highlands":      'm',
	"shallow_cave":         'c',
	"underground_passage":  'p',
	"deep_cavern":          'C',
	"underground_river":    'w',
	"crystal_cavern":       'x',
	"deep_underground":     'D',
}

var biomeNames = map[rune]string{}

func init() {
	for name, symbol := range biomeSymbols {
		biomeNames[symbol] = name
	}
}

// baseBiome strips the weirdness prefix so prefixed biomes share the base
// biome's glyph.
func baseBiome(name string) string {
	for _, prefix := range []string{"eldritch_", "ancient_"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

func symbolFor(name string) rune {
	if symbol, ok := biomeSymbols[baseBiome(name)]; ok {
		return symbol
	}
	return '?'
}

func main() {
	centerX := flag.Int("cx", 0, "Center X coordinate")
	centerY := flag.Int("cy", 0, "Center Y coordinate")
	z := flag.Int("z", 0, "Z level (negative for underground)")
	width := flag.Int("width", 60, "Map width in tiles")
	height := flag.Int("height", 30, "Map height in tiles")
	showLandmarks := flag.Bool("landmarks", true, "Mark landmark centers with *")
	showLegend := flag.Bool("legend", true, "Show legend")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	flag.Parse()

	var output strings.Builder
	output.WriteString(fmt.Sprintf("World map centered on (%d, %d, %d), %dx%d tiles\n",
		*centerX, *centerY, *z, *width, *height))
	output.WriteString(strings.Repeat("=", 60) + "\n")

	seen := make(map[rune]bool)
	landmarks := 0

	// Render north at the top: rows walk y downward.
	for row := 0; row < *height; row++ {
		y := *centerY + *height/2 - row
		for col := 0; col < *width; col++ {
			x := *centerX - *width/2 + col
			coords := worldgen.Coordinate{X: x, Y: y, Z: *z}

			if *showLandmarks && worldgen.IsLandmarkCenter(coords) {
				output.WriteRune('*')
				landmarks++
				continue
			}

			symbol := symbolFor(worldgen.Classify(coords).Name)
			seen[symbol] = true
			output.WriteRune(symbol)
		}
		output.WriteRune('\n')
	}

	if *showLegend {
		output.WriteString("\nLegend:\n")
		symbols := make([]rune, 0, len(seen))
		for symbol := range seen {
			symbols = append(symbols, symbol)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, symbol := range symbols {
			name := biomeNames[symbol]
			if name == "" {
				name = "unknown"
			}
			output.WriteString(fmt.Sprintf("  %c  %s\n", symbol, strings.ReplaceAll(name, "_", " ")))
		}
		if *showLandmarks {
			output.WriteString(fmt.Sprintf("  *  landmark center (%d in view)\n", landmarks))
		}
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}
