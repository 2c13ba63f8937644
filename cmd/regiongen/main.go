package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/everwildmud/everwild/internal/atlas"
	"github.com/everwildmud/everwild/internal/logger"
	"github.com/everwildmud/everwild/internal/worldgen"
)

func main() {
	x1 := flag.Int("x1", -20, "West edge of the region")
	y1 := flag.Int("y1", -20, "South edge of the region")
	x2 := flag.Int("x2", 20, "East edge of the region")
	y2 := flag.Int("y2", 20, "North edge of the region")
	z := flag.Int("z", 0, "Z level to generate")
	dialect := flag.String("dialect", "sqlite", "Atlas dialect (sqlite or postgres)")
	dsn := flag.String("dsn", "data/atlas.db", "Atlas DSN (file path for sqlite)")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if *x2 < *x1 || *y2 < *y1 {
		logger.Error("Region bounds are inverted", "x1", *x1, "y1", *y1, "x2", *x2, "y2", *y2)
		os.Exit(1)
	}

	store, err := atlas.Open(atlas.DialectType(*dialect), *dsn)
	if err != nil {
		logger.Error("Failed to open atlas", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	total := (*x2 - *x1 + 1) * (*y2 - *y1 + 1)
	logger.Info("Generating region", "x1", *x1, "y1", *y1, "x2", *x2, "y2", *y2, "z", *z, "tiles", total)

	generated := 0
	for x := *x1; x <= *x2; x++ {
		for y := *y1; y <= *y2; y++ {
			coords := worldgen.Coordinate{X: x, Y: y, Z: *z}
			blueprint := worldgen.GenerateRoom(coords, worldgen.GenerationContext{})
			if err := store.SaveBlueprint(coords, blueprint); err != nil {
				logger.Error("Failed to save blueprint", "coords", coords, "error", err)
				os.Exit(1)
			}
			generated++
			if generated%500 == 0 {
				logger.Info("Progress", "generated", generated, "total", total)
			}
		}
	}

	count, err := store.RoomCount()
	if err != nil {
		logger.Error("Failed to count rooms", "error", err)
		os.Exit(1)
	}
	logger.Info("Region complete", "generated", generated, "rooms_in_atlas", count)
}
