// pkg/nav/resolver.go

// Package nav implements the shared movement abstraction for player and bot
// controlled craft: per-tick destination resolution for the approach and
// orbit commands, and the motion controller that steers toward the resolved
// goal within each craft's kinematic limits.
package nav

import (
	"errors"
	"math"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// ErrTargetLost is reported when a command's target no longer exists or has
// been destroyed. The caller reverts the craft to idle; this is a recovered
// condition, not a failure of the simulation.
var ErrTargetLost = errors.New("target lost")

// DefaultOrbitStep is how far ahead of the craft's current bearing the
// orbit waypoint is placed each tick. Fewer steps per revolution means a
// rougher circle chased less often.
const DefaultOrbitStep = 2 * math.Pi / 40

// Goal is the kinematic goal a craft should steer toward this tick.
// Idle resolves to a goal with HasPoint false.
type Goal struct {
	Point    physics.Vector2D
	HasPoint bool
	TargetID entity.ID
}

// Lookup resolves a target ID to a live entity. Resolution happens through
// IDs every tick; goals are never cached across ticks, so a moving target
// is tracked with at most one tick of lag.
type Lookup func(entity.ID) (entity.Targetable, bool)

// Resolver computes per-tick goals from craft commands
type Resolver struct {
	// OrbitStep is the angular advance of the orbit waypoint per tick,
	// in radians. Zero means DefaultOrbitStep.
	OrbitStep float64
}

// NewResolver creates a resolver with the given orbit step
func NewResolver(orbitStep float64) *Resolver {
	if orbitStep <= 0 {
		orbitStep = DefaultOrbitStep
	}
	return &Resolver{OrbitStep: orbitStep}
}

// Resolve computes the craft's goal for this tick from its current command.
// It returns ErrTargetLost if the command references a target that is gone;
// the craft's command is left untouched for the caller to revert.
func (r *Resolver) Resolve(craft *entity.Craft, lookup Lookup) (Goal, error) {
	cmd := craft.Command
	switch cmd.Kind {
	case entity.CommandIdle:
		return Goal{}, nil

	case entity.CommandApproach:
		target, err := r.liveTarget(cmd.TargetID, lookup)
		if err != nil {
			return Goal{}, err
		}
		return Goal{
			Point:    target.GetPosition(),
			HasPoint: true,
			TargetID: cmd.TargetID,
		}, nil

	case entity.CommandOrbit:
		target, err := r.liveTarget(cmd.TargetID, lookup)
		if err != nil {
			return Goal{}, err
		}
		return Goal{
			Point:    r.orbitPoint(craft, target, cmd),
			HasPoint: true,
			TargetID: cmd.TargetID,
		}, nil

	default:
		return Goal{}, nil
	}
}

// liveTarget looks up a target and checks it is still alive
func (r *Resolver) liveTarget(id entity.ID, lookup Lookup) (entity.Targetable, error) {
	target, ok := lookup(id)
	if !ok || !target.IsActive() {
		return nil, ErrTargetLost
	}
	return target, nil
}

// orbitPoint places the orbit waypoint: take the craft's current bearing
// around the target, advance it by the orbit step in the command's fixed
// direction, and project out to the commanded radius. Chasing that waypoint
// every tick produces continuous revolution that never completes.
func (r *Resolver) orbitPoint(craft *entity.Craft, target entity.Targetable, cmd entity.Command) physics.Vector2D {
	center := target.GetPosition()
	polar := craft.Body.Position.ToPolar(center)

	step := r.OrbitStep
	if cmd.Clockwise {
		step = -step
	}
	return physics.Polar{
		R:     cmd.Radius,
		Theta: physics.NormalizeAngle(polar.Theta + step),
	}.Cartesian(center)
}
