// pkg/entity/renderer.go
package entity

// Renderer is implemented by rendering backends. The simulation core only
// ever hands out committed state; renderers never mutate entities.
type Renderer interface {
	Clear()
	Present()
	RenderCraft(craft *Craft)
	RenderBeacon(beacon *Beacon)
	// RenderReticle draws the target marker over the given entity. It is
	// called only for a controller's currently selected target.
	RenderReticle(target Targetable)
}
