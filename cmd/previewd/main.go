package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/everwildmud/everwild/internal/atlas"
	"github.com/everwildmud/everwild/internal/config"
	"github.com/everwildmud/everwild/internal/logger"
	"github.com/everwildmud/everwild/internal/preview"
)

func main() {
	serverConfigFile := flag.String("config", "data/server.yaml", "Path to server config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	noAtlas := flag.Bool("no-atlas", false, "Run without persisting visited rooms")
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

	cfg, err := config.LoadConfig(*serverConfigFile)
	if err != nil {
		logger.Error("Failed to load server config, using defaults", "error", err)
	}

	var store *atlas.Atlas
	if !*noAtlas {
		store, err = atlas.Open(atlas.DialectType(cfg.Atlas.Dialect), cfg.Atlas.DSN)
		if err != nil {
			logger.Error("Failed to open atlas", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		logger.Info("Atlas open", "dialect", cfg.Atlas.Dialect, "dsn", cfg.Atlas.DSN)
	}

	server := preview.NewServer(cfg, store)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Preview server failed", "error", err)
		os.Exit(1)
	}
}
