// cmd/sim/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-hovercraft/pkg/bot"
	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/input"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
	"github.com/opd-ai/go-hovercraft/pkg/render"
)

// sim runs the navigation core headless: every craft flagged as a bot
// steers itself, and the world is drawn to the terminal each frame.
func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Write the default configuration file and exit")
	viewController := flag.String("view", "bot-1", "Controller whose craft centers the view")
	ticks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 runs until interrupted)")
	quiet := flag.Bool("quiet", false, "Disable terminal drawing")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := context.Background()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "failed to write configuration", err, "path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "wrote default configuration", "path", *configPath)
		return
	}

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
	dispatcher := input.NewDispatcher(game, simConfig.Input.CyclesPerSecond)

	var bots []*bot.Bot
	for _, craftCfg := range simConfig.Crafts {
		if craftCfg.Bot {
			bots = append(bots, bot.New(
				craftCfg.Controller,
				game,
				dispatcher,
				simConfig.Nav.BotThinkInterval,
				simConfig.Nav.BotOrbitRadius,
				logger,
			))
		}
	}

	// One row/column per scale meters; 80 columns span the whole world.
	terminal := render.NewTerminalRenderer(80, 24, simConfig.WorldSize/80)

	game.Start()
	logger.Info(ctx, "simulation started",
		"crafts", len(simConfig.Crafts),
		"beacons", len(simConfig.Beacons),
		"bots", len(bots),
		"time_step", simConfig.TimeStep,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(simConfig.TimeStep * float64(time.Second)))
	defer ticker.Stop()

loop:
	for {
		select {
		case <-sigChan:
			break loop
		case <-ticker.C:
			for _, b := range bots {
				b.Update(simConfig.TimeStep)
			}
			game.Update()

			state := game.Snapshot()
			if !*quiet {
				for _, cs := range state.Crafts {
					if cs.Controller == *viewController {
						terminal.SetCenter(cs.Position)
						break
					}
				}
				terminal.DrawState(state, *viewController)
				terminal.Present()
			}
			if *ticks > 0 && state.Tick >= *ticks {
				break loop
			}
		}
	}

	logger.Info(ctx, "shutting down")
	game.Stop()
}
