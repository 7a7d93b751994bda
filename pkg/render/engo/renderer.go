// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
)

// spriteEntity bundles an ECS entity with the components the renderer
// updates every frame. Keeping the component pointers here avoids
// querying the world on each update.
type spriteEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// spriteSink is the slice of common.RenderSystem the renderer needs:
// registering sprites and dropping them again.
type spriteSink interface {
	Add(*ecs.BasicEntity, *common.RenderComponent, *common.SpaceComponent)
	Remove(ecs.BasicEntity)
}

// SceneRenderer implements entity.Renderer on top of the Engo render
// system. Each simulation entity maps to one ECS sprite entity; the
// reticle is a single sprite that is re-anchored to whichever target is
// currently selected.
type SceneRenderer struct {
	world        *ecs.World
	renderSystem spriteSink

	craftEntities  map[entity.ID]*spriteEntity
	beaconEntities map[entity.ID]*spriteEntity
	craftsDrawn    map[entity.ID]struct{}
	beaconsDrawn   map[entity.ID]struct{}
	reticleEntity  *spriteEntity
	reticleShown   bool
	reticleSize    float32

	camera *CameraSystem
	assets *AssetManager
}

// NewSceneRenderer creates a renderer drawing into the given world. The
// camera supplies the world-to-screen transform.
func NewSceneRenderer(world *ecs.World, assets *AssetManager, camera *CameraSystem, reticleSize float32) *SceneRenderer {
	return &SceneRenderer{
		world:          world,
		craftEntities:  make(map[entity.ID]*spriteEntity),
		beaconEntities: make(map[entity.ID]*spriteEntity),
		craftsDrawn:    make(map[entity.ID]struct{}),
		beaconsDrawn:   make(map[entity.ID]struct{}),
		reticleSize:    reticleSize,
		camera:         camera,
		assets:         assets,
	}
}

// Initialize registers the render system with the world.
func (r *SceneRenderer) Initialize() error {
	rs := &common.RenderSystem{}
	r.world.AddSystem(rs)
	r.renderSystem = rs
	return nil
}

// Clear starts a fresh frame: the reticle is hidden until RenderReticle
// re-shows it, and the per-frame census of drawn entities resets. Engo
// clears the backbuffer itself.
func (r *SceneRenderer) Clear() {
	r.reticleShown = false
	clear(r.craftsDrawn)
	clear(r.beaconsDrawn)
}

// Present finalizes the frame. Any sprite whose entity was not rendered
// since Clear belongs to something the simulation dropped, so it is
// removed rather than left frozen on screen.
func (r *SceneRenderer) Present() {
	if r.reticleEntity != nil && !r.reticleShown {
		r.reticleEntity.render.Hidden = true
	}

	for id := range r.craftEntities {
		if _, drawn := r.craftsDrawn[id]; !drawn {
			r.RemoveCraft(id)
		}
	}
	for id := range r.beaconEntities {
		if _, drawn := r.beaconsDrawn[id]; !drawn {
			r.RemoveBeacon(id)
		}
	}
}

// RenderCraft implements entity.Renderer.
func (r *SceneRenderer) RenderCraft(craft *entity.Craft) {
	se := r.getOrCreateCraftEntity(craft)
	pos := r.camera.WorldToScreen(craft.Body.Position)
	se.space.Position = engo.Point{
		X: float32(pos.X) - se.space.Width/2,
		Y: float32(pos.Y) - se.space.Height/2,
	}
	se.space.Rotation = float32(craft.Body.Facing * 180 / math.Pi)
	se.render.Drawable = r.assets.GetCraftSprite(craft.Class)
	se.render.Color = controllerColor(craft.Controller)
	r.craftsDrawn[craft.ID] = struct{}{}
}

// RenderBeacon implements entity.Renderer.
func (r *SceneRenderer) RenderBeacon(beacon *entity.Beacon) {
	se := r.getOrCreateBeaconEntity(beacon)
	pos := r.camera.WorldToScreen(beacon.Position)
	se.space.Position = engo.Point{
		X: float32(pos.X) - se.space.Width/2,
		Y: float32(pos.Y) - se.space.Height/2,
	}
	r.beaconsDrawn[beacon.ID] = struct{}{}
}

// RenderReticle implements entity.Renderer. The marker sprite is centered
// on the selected target and shown for this frame.
func (r *SceneRenderer) RenderReticle(target entity.Targetable) {
	se := r.getOrCreateReticleEntity()
	pos := r.camera.WorldToScreen(target.GetPosition())
	se.space.Position = engo.Point{
		X: float32(pos.X) - se.space.Width/2,
		Y: float32(pos.Y) - se.space.Height/2,
	}
	se.render.Hidden = false
	r.reticleShown = true
}

func (r *SceneRenderer) getOrCreateCraftEntity(craft *entity.Craft) *spriteEntity {
	if se, exists := r.craftEntities[craft.ID]; exists {
		return se
	}

	se := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: r.assets.GetCraftSprite(craft.Class),
			Color:    color.RGBA{255, 255, 255, 255},
		},
		space: common.SpaceComponent{
			Width:  24,
			Height: 24,
		},
	}
	r.craftEntities[craft.ID] = se
	r.renderSystem.Add(&se.basic, &se.render, &se.space)
	return se
}

func (r *SceneRenderer) getOrCreateBeaconEntity(beacon *entity.Beacon) *spriteEntity {
	if se, exists := r.beaconEntities[beacon.ID]; exists {
		return se
	}

	size := float32(beacon.Radius * 2)
	if size < 8 {
		size = 8
	}
	se := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: r.assets.GetBeaconSprite(),
			Color:    color.RGBA{120, 170, 255, 255},
		},
		space: common.SpaceComponent{
			Width:  size,
			Height: size,
		},
	}
	r.beaconEntities[beacon.ID] = se
	r.renderSystem.Add(&se.basic, &se.render, &se.space)
	return se
}

func (r *SceneRenderer) getOrCreateReticleEntity() *spriteEntity {
	if r.reticleEntity != nil {
		return r.reticleEntity
	}

	se := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: r.assets.GetReticleTexture(),
			Color:    color.RGBA{255, 255, 255, 255},
			Hidden:   true,
		},
		space: common.SpaceComponent{
			Width:  r.reticleSize,
			Height: r.reticleSize,
		},
	}
	r.reticleEntity = se
	r.renderSystem.Add(&se.basic, &se.render, &se.space)
	return se
}

// RemoveCraft drops a craft sprite after the simulation destroyed the
// craft.
func (r *SceneRenderer) RemoveCraft(id entity.ID) {
	if se, exists := r.craftEntities[id]; exists {
		r.renderSystem.Remove(se.basic)
		delete(r.craftEntities, id)
	}
}

// RemoveBeacon drops a beacon sprite.
func (r *SceneRenderer) RemoveBeacon(id entity.ID) {
	if se, exists := r.beaconEntities[id]; exists {
		r.renderSystem.Remove(se.basic)
		delete(r.beaconEntities, id)
	}
}

// controllerColor returns a stable tint per controller so the player can
// tell crafts apart without labels.
func controllerColor(controller string) color.Color {
	palette := []color.RGBA{
		{0, 220, 120, 255},
		{255, 90, 90, 255},
		{255, 200, 60, 255},
		{160, 120, 255, 255},
	}
	if controller == "" {
		return color.RGBA{160, 160, 160, 255}
	}
	var sum int
	for _, c := range controller {
		sum += int(c)
	}
	return palette[sum%len(palette)]
}
