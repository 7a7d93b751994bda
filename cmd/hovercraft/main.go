// cmd/hovercraft/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
	engorender "github.com/opd-ai/go-hovercraft/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	controller := flag.String("controller", "player", "Controller name of the craft to steer")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := context.Background()

	var simConfig *config.SimConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "configuration file not found, using defaults", "path", *configPath)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "failed to load configuration", err, "path", *configPath)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "invalid environment override", err)
		os.Exit(1)
	}

	game := engine.NewGame(simConfig)
	scene := engorender.NewGameScene(game, simConfig, *controller, logger)

	opts := engo.RunOptions{
		Title:      "Hovercraft",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}

	logger.Info(ctx, "starting client",
		"controller", *controller,
		"world_size", simConfig.WorldSize,
	)
	engo.Run(opts, scene)
}
