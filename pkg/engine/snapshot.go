// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/nav"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// GameState is an immutable snapshot of a completed tick. Rendering reads
// these, never live entities, so a render pass on another goroutine can
// never observe a partially updated tick.
type GameState struct {
	Tick       uint64
	Crafts     map[entity.ID]CraftState
	Beacons    map[entity.ID]BeaconState
	Selections map[string]entity.ID // controller -> selected target
}

// CraftState is a snapshot of one craft's committed state
type CraftState struct {
	ID              entity.ID
	Name            string
	Controller      string
	Class           entity.CraftClass
	Position        physics.Vector2D
	Velocity        physics.Vector2D
	Facing          float64
	AngularVelocity float64
	State           nav.State
}

// BeaconState is a snapshot of one beacon
type BeaconState struct {
	ID       entity.ID
	Name     string
	Position physics.Vector2D
	Radius   float64
}

// Snapshot returns the committed state of the most recent completed tick
func (g *Game) Snapshot() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	state := &GameState{
		Tick:       g.CurrentTick,
		Crafts:     make(map[entity.ID]CraftState, len(g.Crafts)),
		Beacons:    make(map[entity.ID]BeaconState, len(g.Beacons)),
		Selections: make(map[string]entity.ID, len(g.controllers)),
	}

	for id, craft := range g.Crafts {
		state.Crafts[id] = CraftState{
			ID:              id,
			Name:            craft.Name,
			Controller:      craft.Controller,
			Class:           craft.Class,
			Position:        craft.Body.Position,
			Velocity:        craft.Body.Velocity,
			Facing:          craft.Body.Facing,
			AngularVelocity: craft.Body.AngularVelocity,
			State:           nav.StateOf(craft.Command),
		}
	}
	for id, beacon := range g.Beacons {
		state.Beacons[id] = BeaconState{
			ID:       id,
			Name:     beacon.Name,
			Position: beacon.Position,
			Radius:   beacon.Radius,
		}
	}
	for controller := range g.controllers {
		if selected, ok := g.Registry.Selected(controller); ok {
			state.Selections[controller] = selected
		}
	}

	return state
}
