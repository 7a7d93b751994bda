// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Targetable is anything another controller can select, approach or orbit.
// Targeting is read-only: holding a target confers no ownership, so a craft
// may be targeted by the craft it is itself targeting.
type Targetable interface {
	GetID() ID
	GetPosition() physics.Vector2D
	IsActive() bool
	Render(r Renderer)
}

var idCounter uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}
