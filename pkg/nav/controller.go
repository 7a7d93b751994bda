// pkg/nav/controller.go
package nav

import (
	"math"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// State is a craft's motion state. It mirrors the craft's command; the
// transitions are driven by command changes and target-lost signals, never
// by the controller itself.
type State int

const (
	StateIdle State = iota
	StateApproaching
	StateOrbiting
)

// String returns a readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateApproaching:
		return "approaching"
	case StateOrbiting:
		return "orbiting"
	default:
		return "unknown"
	}
}

// StateOf returns the motion state a command puts a craft in
func StateOf(cmd entity.Command) State {
	switch cmd.Kind {
	case entity.CommandApproach:
		return StateApproaching
	case entity.CommandOrbit:
		return StateOrbiting
	default:
		return StateIdle
	}
}

// Controller converts a resolved goal into turn and thrust commands bounded
// by the craft's limits, and integrates them into new spatial state. It is
// stateless; all per-craft state lives on the craft itself.
type Controller struct {
	// ArrivalEpsilon is the distance at which Step reports the goal as
	// reached. Reaching a goal never stops the craft by itself; arrival
	// semantics belong to the caller.
	ArrivalEpsilon float64
}

// NewController creates a motion controller with the given arrival epsilon
func NewController(arrivalEpsilon float64) *Controller {
	return &Controller{ArrivalEpsilon: arrivalEpsilon}
}

// Step advances one craft by one tick. With a goal it turns toward the
// goal's bearing and thrusts along the current facing; without one it
// applies the idle policy: spin down and decelerate to rest. It returns
// whether the craft is within the arrival epsilon of its goal.
func (c *Controller) Step(craft *entity.Craft, goal Goal, dt float64) bool {
	if dt <= 0 {
		return false
	}
	body := &craft.Body
	limits := craft.Limits

	if !goal.HasPoint {
		c.stepIdle(body, limits, dt)
		return false
	}

	// Desired heading is the bearing to the goal, re-derived every tick.
	desired := body.Position.AngleTo(goal.Point)
	headingErr := physics.AngleDiff(desired, body.Facing)

	// Aim for the turn rate that would close the error this tick, then let
	// the limits bound how quickly the craft can actually get there.
	desiredRate := physics.Clamp(headingErr/dt, limits.MaxTurnRate())
	angAccel := (desiredRate - body.AngularVelocity) / dt

	// Cap speed at what the craft can shed again over the remaining
	// distance. Without this a craft slingshots past the goal at full
	// speed; an orbit waypoint sits only a short arc ahead, so the cap
	// also pins orbital speed near the ring's pace instead of letting
	// the craft carve wide ovals around it.
	dist := body.Position.Distance(goal.Point)
	allowed := math.Min(limits.MaxSpeed, math.Sqrt(2*limits.Acceleration*dist))

	// Thrust along the current facing, tapering off as the nose swings
	// away from the goal. Pointing backwards produces no thrust; running
	// hot produces a retro burn instead.
	thrust := 0.0
	speed := body.Velocity.Length()
	switch {
	case speed > allowed:
		thrust = -physics.Clamp((speed-allowed)/dt, limits.Acceleration)
	case math.Abs(headingErr) < math.Pi/2:
		thrust = limits.Acceleration * math.Cos(headingErr)
	}

	physics.Advance(body, limits, angAccel, thrust, dt)

	return body.Position.Distance(goal.Point) <= c.ArrivalEpsilon
}

// stepIdle spins the craft down and brakes it to rest. Idle decelerates
// rather than coasting: a craft with no orders comes to a stop.
func (c *Controller) stepIdle(body *physics.Body, limits physics.Limits, dt float64) {
	angAccel := physics.Clamp(-body.AngularVelocity/dt, limits.MaxTurnAccel())
	body.AngularVelocity = physics.Clamp(
		body.AngularVelocity+angAccel*dt, limits.MaxTurnRate())
	body.Facing = physics.NormalizeAngle(body.Facing + body.AngularVelocity*dt)
	physics.Brake(body, limits, dt)
}
