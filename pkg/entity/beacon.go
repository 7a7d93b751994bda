// pkg/entity/beacon.go
package entity

import (
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// Beacon is a fixed navigation anchor: a planet, station or marker that
// crafts can target, approach and orbit but that never moves itself.
type Beacon struct {
	ID       ID
	Name     string
	Position physics.Vector2D
	Radius   float64 // visual/physical radius, meters
	Active   bool
}

// NewBeacon creates a beacon at the given position
func NewBeacon(id ID, name string, position physics.Vector2D, radius float64) *Beacon {
	return &Beacon{
		ID:       id,
		Name:     name,
		Position: position,
		Radius:   radius,
		Active:   true,
	}
}

// GetID returns the beacon's unique identifier
func (b *Beacon) GetID() ID {
	return b.ID
}

// GetPosition returns the beacon's position
func (b *Beacon) GetPosition() physics.Vector2D {
	return b.Position
}

// IsActive reports whether the beacon is present in the world
func (b *Beacon) IsActive() bool {
	return b.Active
}

// Render implements Targetable
func (b *Beacon) Render(r Renderer) {
	r.RenderBeacon(b)
}
