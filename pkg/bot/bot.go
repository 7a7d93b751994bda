// Package bot implements computer-controlled pilots. A bot is just another
// producer of the same commands a player issues: it picks a target through
// the registry and steers by issuing approach and orbit commands, never by
// touching spatial state directly.
package bot

import (
	"context"

	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/input"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
	"github.com/opd-ai/go-hovercraft/pkg/nav"
)

// Bot is a computer pilot for one craft. It re-decides at a fixed cadence
// rather than every tick; the command it issued keeps steering the craft
// between decisions.
type Bot struct {
	Controller string

	game       *engine.Game
	dispatcher *input.Dispatcher
	logger     *logging.Logger

	thinkInterval float64 // seconds between decisions
	orbitRadius   float64
	clockwise     bool
	sinceThink    float64
}

// New creates a bot for the given controller
func New(controller string, game *engine.Game, dispatcher *input.Dispatcher, thinkInterval, orbitRadius float64, logger *logging.Logger) *Bot {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Bot{
		Controller:    controller,
		game:          game,
		dispatcher:    dispatcher,
		logger:        logger,
		thinkInterval: thinkInterval,
		orbitRadius:   orbitRadius,
		clockwise:     true,
	}
}

// Update accumulates simulation time and thinks when the cadence elapses
func (b *Bot) Update(dt float64) {
	b.sinceThink += dt
	if b.sinceThink < b.thinkInterval {
		return
	}
	b.sinceThink = 0
	b.think()
}

// think picks a target if none is selected, then closes to orbit range.
// Far targets get an approach, near ones an orbit at the preferred radius.
func (b *Bot) think() {
	ctx := context.Background()

	craft, ok := b.game.CraftByController(b.Controller)
	if !ok {
		return
	}

	selected, ok := b.game.SelectedTarget(b.Controller)
	if !ok {
		selected, ok = b.dispatcher.CycleTarget(b.Controller)
		if !ok {
			// Nothing to hunt; stand down if we were doing anything.
			if nav.StateOf(craft.Command) != nav.StateIdle {
				b.issueIdle(ctx)
			}
			return
		}
	}

	targetPos, ok := b.game.TargetPosition(selected)
	if !ok {
		return
	}

	distance := craft.Body.Position.Distance(targetPos)
	var err error
	switch {
	case distance > 2*b.orbitRadius:
		if craft.Command.Kind != entity.CommandApproach || craft.Command.TargetID != selected {
			err = b.dispatcher.Approach(b.Controller, selected)
		}
	default:
		if craft.Command.Kind != entity.CommandOrbit || craft.Command.TargetID != selected {
			err = b.dispatcher.Orbit(b.Controller, selected, b.orbitRadius, b.clockwise)
		}
	}
	if err != nil {
		b.logger.Warn(ctx, "bot command rejected",
			"controller", b.Controller,
			"target", uint64(selected),
			"error", err.Error(),
		)
	}
}

// issueIdle stands the craft down, logging rejections
func (b *Bot) issueIdle(ctx context.Context) {
	if err := b.dispatcher.Idle(b.Controller); err != nil {
		b.logger.Warn(ctx, "bot idle rejected",
			"controller", b.Controller,
			"error", err.Error(),
		)
	}
}
