// pkg/engine/game_test.go
package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/event"
)

func testConfig() *config.SimConfig {
	cfg := config.DefaultConfig()
	cfg.Crafts = []config.CraftConfig{
		{Name: "Protagonist", Class: "Gnat", Controller: "player", X: 0, Y: 0},
		{Name: "Antagonist", Class: "Gubbins", Controller: "bot-1", X: 100, Y: 0},
	}
	cfg.Beacons = []config.BeaconConfig{
		{Name: "Planet1", X: -50, Y: 50, Radius: 15},
	}
	return cfg
}

func TestNewGame_SpawnsConfiguredEntities(t *testing.T) {
	game := NewGame(testConfig())

	if len(game.Crafts) != 2 {
		t.Errorf("crafts = %d, expected 2", len(game.Crafts))
	}
	if len(game.Beacons) != 1 {
		t.Errorf("beacons = %d, expected 1", len(game.Beacons))
	}
	if _, ok := game.CraftByController("player"); !ok {
		t.Error("player controller has no craft")
	}
	// Every craft and beacon is an eligible target.
	if got := len(game.Registry.Eligible()); got != 3 {
		t.Errorf("eligible targets = %d, expected 3", got)
	}
}

func TestGame_StartStop(t *testing.T) {
	game := NewGame(testConfig())

	var mu sync.Mutex
	var received []event.Type
	for _, et := range []event.Type{event.SimulationStarted, event.SimulationStopped} {
		eventType := et
		game.EventBus.Subscribe(eventType, func(e event.Event) {
			mu.Lock()
			received = append(received, eventType)
			mu.Unlock()
		})
	}

	game.Start()
	if !game.Running {
		t.Error("Running = false after Start")
	}
	game.Stop()
	if game.Running {
		t.Error("Running = true after Stop")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 || received[0] != event.SimulationStarted || received[1] != event.SimulationStopped {
		t.Errorf("events = %v, expected started then stopped", received)
	}
}

func TestGame_CycleAndIssueCommand(t *testing.T) {
	game := NewGame(testConfig())

	selected, ok := game.CycleTarget("player")
	if !ok {
		t.Fatal("CycleTarget() found nothing to select")
	}
	if stored, _ := game.SelectedTarget("player"); stored != selected {
		t.Errorf("SelectedTarget() = %v, expected %v", stored, selected)
	}

	if err := game.IssueCommand("player", entity.NewApproach(selected)); err != nil {
		t.Fatalf("IssueCommand(approach) error: %v", err)
	}
	craft, _ := game.CraftByController("player")
	if craft.Command.Kind != entity.CommandApproach {
		t.Errorf("command = %v, expected approach", craft.Command.Kind)
	}
}

func TestGame_IssueCommand_UnknownController(t *testing.T) {
	game := NewGame(testConfig())

	err := game.IssueCommand("ghost", entity.NewIdle())
	if !errors.Is(err, ErrUnknownController) {
		t.Errorf("error = %v, expected ErrUnknownController", err)
	}
}

func TestGame_IssueCommand_InvalidKeepsPrior(t *testing.T) {
	game := NewGame(testConfig())
	selected, _ := game.CycleTarget("player")
	if err := game.IssueCommand("player", entity.NewApproach(selected)); err != nil {
		t.Fatalf("IssueCommand(approach) error: %v", err)
	}

	err := game.IssueCommand("player", entity.NewOrbit(selected, -5, false))
	if !errors.Is(err, entity.ErrInvalidCommand) {
		t.Fatalf("error = %v, expected ErrInvalidCommand", err)
	}
	craft, _ := game.CraftByController("player")
	if craft.Command.Kind != entity.CommandApproach {
		t.Errorf("command = %v, expected prior approach intact", craft.Command.Kind)
	}
}

func TestGame_Update_MovesApproachingCraft(t *testing.T) {
	game := NewGame(testConfig())
	player, _ := game.CraftByController("player")
	other, _ := game.CraftByController("bot-1")

	if err := game.IssueCommand("player", entity.NewApproach(other.ID)); err != nil {
		t.Fatalf("IssueCommand: %v", err)
	}

	start := player.Body.Position
	startDist := start.Distance(other.Body.Position)
	for i := 0; i < 120; i++ {
		game.Update()
	}

	if game.CurrentTick != 120 {
		t.Errorf("tick = %d, expected 120", game.CurrentTick)
	}
	endDist := player.Body.Position.Distance(other.Body.Position)
	if endDist >= startDist {
		t.Errorf("distance after approach = %v, expected less than %v", endDist, startDist)
	}
}

func TestGame_Update_StaysInsideWorld(t *testing.T) {
	cfg := testConfig()
	cfg.WorldSize = 100
	cfg.Beacons = []config.BeaconConfig{{Name: "Edge", X: 500, Y: 0, Radius: 5}}
	game := NewGame(cfg)

	var target entity.ID
	for id := range game.Beacons {
		target = id
	}
	if err := game.IssueCommand("player", entity.NewApproach(target)); err != nil {
		t.Fatalf("IssueCommand: %v", err)
	}

	for i := 0; i < 600; i++ {
		game.Update()
	}

	player, _ := game.CraftByController("player")
	half := cfg.WorldSize / 2
	if player.Body.Position.X > half || player.Body.Position.X < -half ||
		player.Body.Position.Y > half || player.Body.Position.Y < -half {
		t.Errorf("position %v escaped world of size %v", player.Body.Position, cfg.WorldSize)
	}
}

func TestGame_DestroyCraft_ScrubsTargeting(t *testing.T) {
	game := NewGame(testConfig())
	victim, _ := game.CraftByController("bot-1")

	// player selects and approaches the victim.
	var selected entity.ID
	for {
		id, ok := game.CycleTarget("player")
		if !ok {
			t.Fatal("nothing to select")
		}
		if id == victim.ID {
			selected = id
			break
		}
	}
	if err := game.IssueCommand("player", entity.NewApproach(selected)); err != nil {
		t.Fatalf("IssueCommand: %v", err)
	}

	var mu sync.Mutex
	var lost []string
	game.EventBus.Subscribe(event.TargetLost, func(e event.Event) {
		if te, ok := e.(*event.TargetEvent); ok {
			mu.Lock()
			lost = append(lost, te.Controller)
			mu.Unlock()
		}
	})

	if err := game.DestroyCraft(victim.ID); err != nil {
		t.Fatalf("DestroyCraft: %v", err)
	}

	if _, ok := game.SelectedTarget("player"); ok {
		t.Error("selection survived target destruction")
	}
	mu.Lock()
	clearedPlayer := false
	for _, c := range lost {
		if c == "player" {
			clearedPlayer = true
		}
	}
	mu.Unlock()
	if !clearedPlayer {
		t.Errorf("TargetLost events = %v, expected one for player", lost)
	}

	// Next tick recovers the approaching craft to idle.
	game.Update()
	player, _ := game.CraftByController("player")
	if player.Command.Kind != entity.CommandIdle {
		t.Errorf("command = %v, expected idle after target lost", player.Command.Kind)
	}
}

func TestGame_ArrivalEvent_EdgeTriggered(t *testing.T) {
	cfg := testConfig()
	// Spawn the two crafts nearly on top of each other so the approach
	// arrives almost immediately.
	cfg.Crafts[1].X = 3
	game := NewGame(cfg)
	other, _ := game.CraftByController("bot-1")

	if err := game.IssueCommand("player", entity.NewApproach(other.ID)); err != nil {
		t.Fatalf("IssueCommand: %v", err)
	}

	var mu sync.Mutex
	arrivals := 0
	game.EventBus.Subscribe(event.CraftArrived, func(e event.Event) {
		mu.Lock()
		arrivals++
		mu.Unlock()
	})

	for i := 0; i < 30; i++ {
		game.Update()
	}

	mu.Lock()
	defer mu.Unlock()
	if arrivals == 0 {
		t.Fatal("no arrival event for an approach starting within epsilon")
	}
	// Staying within epsilon must not re-fire the event every tick.
	if arrivals > 3 {
		t.Errorf("arrival fired %d times, expected edge-triggered behavior", arrivals)
	}
}

func TestGame_Snapshot(t *testing.T) {
	game := NewGame(testConfig())
	game.CycleTarget("player")
	game.Update()

	state := game.Snapshot()
	if state.Tick != 1 {
		t.Errorf("snapshot tick = %d, expected 1", state.Tick)
	}
	if len(state.Crafts) != 2 || len(state.Beacons) != 1 {
		t.Errorf("snapshot has %d crafts and %d beacons, expected 2 and 1",
			len(state.Crafts), len(state.Beacons))
	}
	if _, ok := state.Selections["player"]; !ok {
		t.Error("snapshot missing player selection")
	}

	// Mutating the snapshot must not touch the live world.
	for id := range state.Crafts {
		cs := state.Crafts[id]
		cs.Position.X += 1000
		state.Crafts[id] = cs
	}
	live, _ := game.CraftByController("player")
	if live.Body.Position.X >= 1000 {
		t.Error("snapshot mutation leaked into live state")
	}
}
