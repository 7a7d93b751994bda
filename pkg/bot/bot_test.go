// pkg/bot/bot_test.go
package bot

import (
	"testing"

	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/input"
)

func newBotGame(t *testing.T, botX float64) (*engine.Game, *Bot) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Crafts = []config.CraftConfig{
		{Name: "Hunter", Class: "Gnat", Controller: "bot-1", Bot: true, X: botX, Y: 0},
		{Name: "Prey", Class: "Freighter", Controller: "player", X: 0, Y: 0},
	}
	cfg.Beacons = nil

	game := engine.NewGame(cfg)
	dispatcher := input.NewDispatcher(game, 0)
	b := New("bot-1", game, dispatcher, cfg.Nav.BotThinkInterval, cfg.Nav.BotOrbitRadius, nil)
	return game, b
}

func TestBot_Update_RespectsThinkCadence(t *testing.T) {
	game, b := newBotGame(t, 500)

	// Below the think interval nothing happens.
	b.Update(0.05)
	if _, ok := game.SelectedTarget("bot-1"); ok {
		t.Fatal("bot selected a target before its think cadence elapsed")
	}

	// Crossing the interval triggers exactly one decision.
	b.Update(0.05)
	if _, ok := game.SelectedTarget("bot-1"); !ok {
		t.Fatal("bot never selected a target after think cadence elapsed")
	}
}

func TestBot_ApproachesFarTarget(t *testing.T) {
	game, b := newBotGame(t, 500)

	// Two thinks: first selects, second issues the range-based command.
	b.Update(0.1)
	b.Update(0.1)

	craft, _ := game.CraftByController("bot-1")
	if craft.Command.Kind != entity.CommandApproach {
		t.Errorf("command = %v, expected approach at range 500", craft.Command.Kind)
	}
}

func TestBot_OrbitsNearTarget(t *testing.T) {
	game, b := newBotGame(t, 60)

	b.Update(0.1)
	b.Update(0.1)

	craft, _ := game.CraftByController("bot-1")
	if craft.Command.Kind != entity.CommandOrbit {
		t.Errorf("command = %v, expected orbit at range 60", craft.Command.Kind)
	}
	if craft.Command.Radius != 50 {
		t.Errorf("orbit radius = %v, expected the preferred 50", craft.Command.Radius)
	}
}

func TestBot_SwitchesApproachToOrbitOnClosing(t *testing.T) {
	game, b := newBotGame(t, 500)

	// Run the full loop: bot thinks at cadence, game ticks every step.
	const dt = 1.0 / 60
	for i := 0; i < 60*60; i++ {
		b.Update(dt)
		game.Update()
	}

	craft, _ := game.CraftByController("bot-1")
	if craft.Command.Kind != entity.CommandOrbit {
		t.Errorf("command after closing = %v, expected orbit", craft.Command.Kind)
	}
}

func TestBot_IdlesWhenNothingToHunt(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Crafts = []config.CraftConfig{
		{Name: "Hunter", Class: "Gnat", Controller: "bot-1", Bot: true, X: 0, Y: 0},
	}
	cfg.Beacons = nil

	game := engine.NewGame(cfg)
	dispatcher := input.NewDispatcher(game, 0)
	b := New("bot-1", game, dispatcher, 0.1, 50, nil)

	b.Update(0.1)

	craft, _ := game.CraftByController("bot-1")
	if craft.Command.Kind != entity.CommandIdle {
		t.Errorf("command = %v, expected idle with no eligible targets", craft.Command.Kind)
	}
}

func TestBot_RecoversAfterTargetDestroyed(t *testing.T) {
	game, b := newBotGame(t, 60)

	b.Update(0.1)
	b.Update(0.1)

	prey, _ := game.CraftByController("player")
	if err := game.DestroyCraft(prey.ID); err != nil {
		t.Fatalf("DestroyCraft: %v", err)
	}
	game.Update() // tick reverts the orbit to idle via target-lost

	craft, _ := game.CraftByController("bot-1")
	if craft.Command.Kind != entity.CommandIdle {
		t.Errorf("command = %v, expected idle after target destroyed", craft.Command.Kind)
	}

	// With nothing left to hunt the next think keeps the craft idle.
	b.Update(0.1)
	if craft.Command.Kind != entity.CommandIdle {
		t.Errorf("command = %v, expected to stay idle", craft.Command.Kind)
	}
}
