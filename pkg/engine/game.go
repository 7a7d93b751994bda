// pkg/engine/game.go
package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/event"
	"github.com/opd-ai/go-hovercraft/pkg/nav"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
	"github.com/opd-ai/go-hovercraft/pkg/target"
)

// ErrUnknownController is returned for input referencing a controller that
// owns no craft.
var ErrUnknownController = errors.New("unknown controller")

// Game owns the simulation: every craft and beacon, the target registry,
// and the navigation pipeline that moves crafts each tick. All state
// transitions happen in a single pass per tick under one lock; renderers
// only ever see committed snapshots.
type Game struct {
	Config      *config.SimConfig
	Crafts      map[entity.ID]*entity.Craft
	Beacons     map[entity.ID]*entity.Beacon
	Registry    *target.Registry
	EventBus    *event.Bus
	EntityLock  sync.RWMutex
	Running     bool
	TimeStep    float64 // seconds per tick
	CurrentTick uint64
	StartTime   time.Time

	resolver    *nav.Resolver
	controller  *nav.Controller
	controllers map[string]entity.ID // controller id -> craft id
	arrived     map[entity.ID]bool   // edge detection for arrival events
}

// NewGame creates a game with the specified configuration and spawns its
// configured crafts and beacons.
func NewGame(cfg *config.SimConfig) *Game {
	g := &Game{
		Config:      cfg,
		Crafts:      make(map[entity.ID]*entity.Craft),
		Beacons:     make(map[entity.ID]*entity.Beacon),
		Registry:    target.NewRegistry(target.Policy{AllowSelfTarget: cfg.Targeting.AllowSelfTarget}),
		EventBus:    event.NewEventBus(),
		TimeStep:    cfg.TimeStep,
		resolver:    nav.NewResolver(cfg.Nav.OrbitStepRadians),
		controller:  nav.NewController(cfg.Nav.ArrivalEpsilon),
		controllers: make(map[string]entity.ID),
		arrived:     make(map[entity.ID]bool),
	}

	for _, craftCfg := range cfg.Crafts {
		g.spawnCraftLocked(craftCfg)
	}
	for _, beaconCfg := range cfg.Beacons {
		g.placeBeaconLocked(beaconCfg)
	}

	return g
}

// Start marks the simulation running
func (g *Game) Start() {
	g.Running = true
	g.StartTime = time.Now()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStarted,
		Source:    g,
	})
}

// Stop halts the simulation
func (g *Game) Stop() {
	g.Running = false
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStopped,
		Source:    g,
	})
}

// SpawnCraft adds a craft to the simulation and registers it as an
// eligible target for everyone.
func (g *Game) SpawnCraft(craftCfg config.CraftConfig) entity.ID {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.spawnCraftLocked(craftCfg)
}

// spawnCraftLocked creates and registers a craft. Callers hold EntityLock.
func (g *Game) spawnCraftLocked(craftCfg config.CraftConfig) entity.ID {
	craft := entity.NewCraft(
		entity.GenerateID(),
		craftCfg.Name,
		entity.CraftClassFromString(craftCfg.Class),
		craftCfg.Controller,
		physics.Vector2D{X: craftCfg.X, Y: craftCfg.Y},
	)
	g.Crafts[craft.ID] = craft
	g.Registry.AddTarget(craft.ID)
	if craft.Controller != "" {
		g.controllers[craft.Controller] = craft.ID
		g.Registry.Register(craft.Controller, craft.ID)
	}

	g.EventBus.Publish(event.NewCraftEvent(
		event.CraftSpawned, g, uint64(craft.ID), craft.Controller))
	return craft.ID
}

// PlaceBeacon adds a fixed navigation anchor to the world
func (g *Game) PlaceBeacon(beaconCfg config.BeaconConfig) entity.ID {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.placeBeaconLocked(beaconCfg)
}

// placeBeaconLocked creates and registers a beacon. Callers hold EntityLock.
func (g *Game) placeBeaconLocked(beaconCfg config.BeaconConfig) entity.ID {
	beacon := entity.NewBeacon(
		entity.GenerateID(),
		beaconCfg.Name,
		physics.Vector2D{X: beaconCfg.X, Y: beaconCfg.Y},
		beaconCfg.Radius,
	)
	g.Beacons[beacon.ID] = beacon
	g.Registry.AddTarget(beacon.ID)

	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.BeaconPlaced,
		Source:    beacon,
	})
	return beacon.ID
}

// DestroyCraft removes a craft from the simulation. The craft immediately
// stops being an eligible target and every selection pointing at it is
// cleared before the next tick can observe it.
func (g *Game) DestroyCraft(id entity.ID) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	craft, ok := g.Crafts[id]
	if !ok {
		return fmt.Errorf("craft %d not found", id)
	}
	craft.Active = false
	delete(g.Crafts, id)
	delete(g.arrived, id)
	if craft.Controller != "" {
		delete(g.controllers, craft.Controller)
		g.Registry.Unregister(craft.Controller)
	}

	cleared := g.Registry.RemoveTarget(id)
	for _, controller := range cleared {
		g.EventBus.Publish(event.NewTargetEvent(
			event.TargetLost, g, controller, uint64(id)))
	}

	g.EventBus.Publish(event.NewCraftEvent(
		event.CraftDestroyed, g, uint64(id), craft.Controller))
	return nil
}

// CycleTarget advances a controller's selection to the next eligible
// target. It implements input.Sink.
func (g *Game) CycleTarget(controller string) (entity.ID, bool) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	selected, ok := g.Registry.CycleTarget(controller)
	g.EventBus.Publish(event.NewTargetEvent(
		event.TargetSelected, g, controller, uint64(selected)))
	return selected, ok
}

// IssueCommand validates and installs a command on the controller's craft.
// It implements input.Sink. An invalid command is rejected whole; the
// craft's previous command stays in effect.
func (g *Game) IssueCommand(controller string, cmd entity.Command) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	craftID, ok := g.controllers[controller]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownController, controller)
	}
	craft := g.Crafts[craftID]

	if err := craft.SetCommand(cmd, g.Config.Targeting.AllowSelfTarget); err != nil {
		return err
	}

	g.EventBus.Publish(event.NewCommandEvent(
		g, uint64(craftID), cmd.Kind.String()))
	return nil
}

// SelectedTarget returns a controller's current selection for UI placement
func (g *Game) SelectedTarget(controller string) (entity.ID, bool) {
	return g.Registry.Selected(controller)
}

// Update advances the simulation by one fixed tick: resolve every craft's
// goal, steer and integrate, then commit. Craft order is ascending ID so
// ticks are deterministic.
func (g *Game) Update() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	for _, id := range g.craftOrder() {
		g.tickCraft(g.Crafts[id])
	}
	g.CurrentTick++
}

// craftOrder returns craft IDs in ascending order. Callers hold EntityLock.
func (g *Game) craftOrder() []entity.ID {
	ids := make([]entity.ID, 0, len(g.Crafts))
	for id := range g.Crafts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// tickCraft runs the resolve/steer/integrate pipeline for one craft.
// Callers hold EntityLock.
func (g *Game) tickCraft(craft *entity.Craft) {
	goal, err := g.resolver.Resolve(craft, g.lookupTarget)
	if errors.Is(err, nav.ErrTargetLost) {
		// Recover by reverting to idle; the craft keeps ticking.
		lostID := craft.Command.TargetID
		craft.Command = entity.NewIdle()
		g.EventBus.Publish(event.NewTargetEvent(
			event.TargetLost, g, craft.Controller, uint64(lostID)))
		goal = nav.Goal{}
	}

	reached := g.controller.Step(craft, goal, g.TimeStep)
	physics.ClampToWorld(&craft.Body, g.Config.WorldSize)

	// Arrival is edge-triggered and advisory: subscribers decide whether
	// an approach is finished, the craft keeps steering either way.
	if craft.Command.Kind == entity.CommandApproach {
		if reached && !g.arrived[craft.ID] {
			g.EventBus.Publish(event.NewArrivalEvent(
				g, uint64(craft.ID), uint64(goal.TargetID)))
		}
		g.arrived[craft.ID] = reached
	} else {
		g.arrived[craft.ID] = false
	}
}

// lookupTarget resolves an ID to a live craft or beacon. Held under
// EntityLock via Update.
func (g *Game) lookupTarget(id entity.ID) (entity.Targetable, bool) {
	if craft, ok := g.Crafts[id]; ok {
		return craft, true
	}
	if beacon, ok := g.Beacons[id]; ok {
		return beacon, true
	}
	return nil, false
}

// TargetPosition returns the current position of a live craft or beacon
func (g *Game) TargetPosition(id entity.ID) (physics.Vector2D, bool) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	t, ok := g.lookupTarget(id)
	if !ok || !t.IsActive() {
		return physics.Vector2D{}, false
	}
	return t.GetPosition(), true
}

// CraftByController returns the craft a controller owns
func (g *Game) CraftByController(controller string) (*entity.Craft, bool) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	id, ok := g.controllers[controller]
	if !ok {
		return nil, false
	}
	craft, ok := g.Crafts[id]
	return craft, ok
}
