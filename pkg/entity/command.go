// pkg/entity/command.go
package entity

import (
	"errors"
	"fmt"
)

// CommandKind identifies a craft's current motion intent
type CommandKind int

const (
	CommandIdle CommandKind = iota
	CommandApproach
	CommandOrbit
)

// String returns a readable name for the command kind
func (k CommandKind) String() string {
	switch k {
	case CommandIdle:
		return "idle"
	case CommandApproach:
		return "approach"
	case CommandOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// ErrInvalidCommand is returned when a command is rejected at issue time.
// The craft's previous command stays in effect.
var ErrInvalidCommand = errors.New("invalid command")

// Command is the motion intent of a craft. The same value type is produced
// by player input and bot decisions and consumed identically by the motion
// controller.
type Command struct {
	Kind      CommandKind
	TargetID  ID      // approach and orbit only
	Radius    float64 // orbit only, meters
	Clockwise bool    // orbit revolution direction, fixed at issue time
}

// NewIdle returns the idle command
func NewIdle() Command {
	return Command{Kind: CommandIdle}
}

// NewApproach returns a command to track and close on the given target
func NewApproach(target ID) Command {
	return Command{Kind: CommandApproach, TargetID: target}
}

// NewOrbit returns a command to revolve around the target at the given
// radius. Clockwise fixes the direction for the lifetime of the command.
func NewOrbit(target ID, radius float64, clockwise bool) Command {
	return Command{
		Kind:      CommandOrbit,
		TargetID:  target,
		Radius:    radius,
		Clockwise: clockwise,
	}
}

// Validate checks a command at issue time. owner is the craft the command is
// being issued to; allowSelfTarget is the targeting policy in effect.
// A command that fails validation is never partially applied.
func (c Command) Validate(owner ID, allowSelfTarget bool) error {
	switch c.Kind {
	case CommandIdle:
		return nil
	case CommandApproach, CommandOrbit:
		if c.TargetID == 0 {
			return fmt.Errorf("%w: %s requires a target", ErrInvalidCommand, c.Kind)
		}
		if !allowSelfTarget && c.TargetID == owner {
			return fmt.Errorf("%w: craft %d cannot target itself", ErrInvalidCommand, owner)
		}
		if c.Kind == CommandOrbit && c.Radius <= 0 {
			return fmt.Errorf("%w: orbit radius %v must be positive", ErrInvalidCommand, c.Radius)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidCommand, c.Kind)
	}
}
