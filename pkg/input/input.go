// Package input translates controller input events into simulation calls.
// Both the rendering client's keyboard handling and bot decision code go
// through the same dispatcher, so every command path is validated and rate
// limited identically.
package input

import (
	"fmt"
	"time"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
)

// Sink receives validated input events. The engine implements this.
type Sink interface {
	CycleTarget(controller string) (entity.ID, bool)
	IssueCommand(controller string, cmd entity.Command) error
}

// Dispatcher validates and forwards input events for all controllers
type Dispatcher struct {
	sink         Sink
	cycleLimiter *RateLimiter
}

// NewDispatcher creates a dispatcher. cyclesPerSecond bounds how often any
// single controller may cycle targets; zero disables the bound.
func NewDispatcher(sink Sink, cyclesPerSecond int) *Dispatcher {
	d := &Dispatcher{sink: sink}
	if cyclesPerSecond > 0 {
		d.cycleLimiter = NewRateLimiter(cyclesPerSecond, time.Second)
	}
	return d
}

// CycleTarget advances the controller's target selection. Events arriving
// faster than the configured rate are dropped, debouncing key repeat.
func (d *Dispatcher) CycleTarget(controller string) (entity.ID, bool) {
	if d.cycleLimiter != nil && !d.cycleLimiter.Allow(controller) {
		return 0, false
	}
	return d.sink.CycleTarget(controller)
}

// Approach commands the controller's craft to approach its selected target
func (d *Dispatcher) Approach(controller string, target entity.ID) error {
	return d.sink.IssueCommand(controller, entity.NewApproach(target))
}

// Orbit commands the controller's craft to orbit its selected target.
// A non-positive radius is rejected before it reaches the simulation.
func (d *Dispatcher) Orbit(controller string, target entity.ID, radius float64, clockwise bool) error {
	if radius <= 0 {
		return fmt.Errorf("%w: orbit radius %v must be positive",
			entity.ErrInvalidCommand, radius)
	}
	return d.sink.IssueCommand(controller, entity.NewOrbit(target, radius, clockwise))
}

// Idle commands the controller's craft to stand down
func (d *Dispatcher) Idle(controller string) error {
	return d.sink.IssueCommand(controller, entity.NewIdle())
}
