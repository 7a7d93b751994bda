// pkg/entity/craft.go
package entity

import (
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// CraftClass defines the type of craft and its drive capabilities
type CraftClass int

const (
	Gnat CraftClass = iota
	Gubbins
	Freighter
)

// ClassLimits contains the kinematic limits for a craft class
type ClassLimits struct {
	Acceleration float64 // m/s^2
	TurnTime     float64 // seconds per full rotation
	MaxSpeed     float64 // m/s
}

// Craft represents a simulated vehicle: a craft's spatial state plus the
// limits its drive must respect and the command it is currently executing.
type Craft struct {
	ID         ID
	Name       string
	Controller string // owning controller, empty for uncontrolled craft
	Class      CraftClass
	Body       physics.Body
	Limits     physics.Limits
	Command    Command
	Active     bool
}

// NewCraft creates a craft of the given class at the given position,
// idle and at rest.
func NewCraft(id ID, name string, class CraftClass, controller string, position physics.Vector2D) *Craft {
	limits := getClassLimits(class)
	return &Craft{
		ID:         id,
		Name:       name,
		Controller: controller,
		Class:      class,
		Body: physics.Body{
			Position: position,
		},
		Limits: physics.Limits{
			Acceleration: limits.Acceleration,
			TurnTime:     limits.TurnTime,
			MaxSpeed:     limits.MaxSpeed,
		},
		Command: NewIdle(),
		Active:  true,
	}
}

// GetID returns the craft's unique identifier
func (c *Craft) GetID() ID {
	return c.ID
}

// GetPosition returns the craft's position
func (c *Craft) GetPosition() physics.Vector2D {
	return c.Body.Position
}

// IsActive reports whether the craft is still alive in the simulation
func (c *Craft) IsActive() bool {
	return c.Active
}

// Render implements Targetable
func (c *Craft) Render(r Renderer) {
	r.RenderCraft(c)
}

// SetCommand validates and installs a new command, replacing the previous
// one atomically. On validation failure the previous command is unchanged.
func (c *Craft) SetCommand(cmd Command, allowSelfTarget bool) error {
	if err := cmd.Validate(c.ID, allowSelfTarget); err != nil {
		return err
	}
	c.Command = cmd
	return nil
}

// getClassLimits returns the kinematic limits for a craft class
func getClassLimits(class CraftClass) ClassLimits {
	switch class {
	case Gnat:
		return ClassLimits{
			Acceleration: 60,
			TurnTime:     1.5,
			MaxSpeed:     40,
		}
	case Gubbins:
		return ClassLimits{
			Acceleration: 100,
			TurnTime:     2.5,
			MaxSpeed:     20,
		}
	case Freighter:
		return ClassLimits{
			Acceleration: 25,
			TurnTime:     6,
			MaxSpeed:     12,
		}
	default:
		return ClassLimits{
			Acceleration: 50,
			TurnTime:     2,
			MaxSpeed:     30,
		}
	}
}

// CraftClassFromString converts a string to a CraftClass value.
func CraftClassFromString(s string) CraftClass {
	switch s {
	case "Gnat":
		return Gnat
	case "Gubbins":
		return Gubbins
	case "Freighter":
		return Freighter
	default:
		return Gnat
	}
}
