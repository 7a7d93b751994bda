// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
)

// NullRenderer is a no-op implementation of entity.Renderer used by
// headless runs and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderCraft implements entity.Renderer
func (d *NullRenderer) RenderCraft(craft *entity.Craft) {
	ctx := context.Background()
	if craft == nil {
		d.logger.Debug(ctx, "RenderCraft called with nil craft")
		return
	}
	d.logger.Debug(ctx, "RenderCraft called",
		"craft_id", uint64(craft.ID),
		"x", craft.Body.Position.X,
		"y", craft.Body.Position.Y,
	)
}

// RenderBeacon implements entity.Renderer
func (d *NullRenderer) RenderBeacon(beacon *entity.Beacon) {
	ctx := context.Background()
	if beacon == nil {
		d.logger.Debug(ctx, "RenderBeacon called with nil beacon")
		return
	}
	d.logger.Debug(ctx, "RenderBeacon called", "beacon_id", uint64(beacon.ID))
}

// RenderReticle implements entity.Renderer
func (d *NullRenderer) RenderReticle(target entity.Targetable) {
	ctx := context.Background()
	if target == nil {
		d.logger.Debug(ctx, "RenderReticle called with nil target")
		return
	}
	d.logger.Debug(ctx, "RenderReticle called", "target_id", uint64(target.GetID()))
}
