// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// CameraSystem keeps the viewport framed on the player's craft. When a
// target is selected the camera instead frames the midpoint between the
// craft and the target, zooming out as the two separate so both stay on
// screen.
type CameraSystem struct {
	focus    physics.Vector2D
	focusSet bool

	zoom    float32
	minZoom float32
	maxZoom float32

	// World-unit separation at which the camera has zoomed out to half
	// the base zoom.
	zoomFalloff float64

	followSpeed float32
	smoothing   bool

	currentPos  physics.Vector2D
	currentZoom float32
}

// NewCameraSystem creates a camera at zoom 1 with smoothing enabled.
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     3.0,
		zoomFalloff: 300.0,
		followSpeed: 4.0,
		smoothing:   true,
		currentZoom: 1.0,
	}
}

// Add satisfies the ecs.System interface.
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the camera toward its focus point.
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if !cs.focusSet {
		return
	}

	if cs.smoothing {
		dx := cs.focus.X - cs.currentPos.X
		dy := cs.focus.Y - cs.currentPos.Y
		cs.currentPos.X += dx * float64(cs.followSpeed) * float64(dt)
		cs.currentPos.Y += dy * float64(cs.followSpeed) * float64(dt)

		dz := cs.zoom - cs.currentZoom
		cs.currentZoom += dz * cs.followSpeed * dt
	} else {
		cs.currentPos = cs.focus
		cs.currentZoom = cs.zoom
	}
}

// handleZoomInput applies manual zoom on top of the automatic framing.
func (cs *CameraSystem) handleZoomInput() {
	scrollY := engo.Input.Mouse.ScrollY
	if scrollY != 0 {
		cs.zoom = cs.clampZoom(cs.zoom * float32(1.0+scrollY*0.1))
	}
}

// Follow frames the craft alone, or the midpoint of craft and target when
// a target is given. Zoom falls off with separation so both endpoints fit.
func (cs *CameraSystem) Follow(craft physics.Vector2D, target physics.Vector2D, hasTarget bool) {
	if !hasTarget {
		cs.setFocus(craft)
		cs.zoom = cs.clampZoom(1.0)
		return
	}

	mid := craft.Add(target).Scale(0.5)
	cs.setFocus(mid)

	separation := craft.Distance(target)
	cs.zoom = cs.clampZoom(float32(1.0 / (1.0 + separation/cs.zoomFalloff)))
}

func (cs *CameraSystem) setFocus(p physics.Vector2D) {
	first := !cs.focusSet
	cs.focus = p
	cs.focusSet = true
	if first || !cs.smoothing {
		cs.currentPos = p
	}
}

// ClearFocus stops the camera from following anything.
func (cs *CameraSystem) ClearFocus() {
	cs.focusSet = false
}

func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// Zoom returns the zoom the camera is currently rendering at.
func (cs *CameraSystem) Zoom() float32 {
	return cs.currentZoom
}

// Position returns the world point under the center of the screen.
func (cs *CameraSystem) Position() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts a world position to screen coordinates using the
// camera's current position and zoom.
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	relX := worldPos.X - cs.currentPos.X
	relY := worldPos.Y - cs.currentPos.Y
	return physics.Vector2D{
		X: relX*float64(cs.currentZoom) + float64(engo.GameWidth())/2,
		Y: relY*float64(cs.currentZoom) + float64(engo.GameHeight())/2,
	}
}

// ScreenToWorld is the inverse of WorldToScreen.
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	relX := (screenPos.X - float64(engo.GameWidth())/2) / float64(cs.currentZoom)
	relY := (screenPos.Y - float64(engo.GameHeight())/2) / float64(cs.currentZoom)
	return physics.Vector2D{
		X: relX + cs.currentPos.X,
		Y: relY + cs.currentPos.Y,
	}
}
