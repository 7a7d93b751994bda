// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
)

// HUDSystem draws the navigation readout for one controller: the craft's
// current command state, its speed, and the selected target with the
// distance to it.
type HUDSystem struct {
	controller string

	hudEntities []*spriteEntity
	font        *common.Font

	// Latest snapshot data, written by the scene each tick.
	craft  *engine.CraftState
	target *targetReadout
	tick   uint64

	hudColor      color.Color
	selectedColor color.Color
}

// targetReadout is the HUD's view of the current selection.
type targetReadout struct {
	id       entity.ID
	name     string
	distance float64
}

// NewHUDSystem creates a HUD for the given controller.
func NewHUDSystem(controller string) *HUDSystem {
	return &HUDSystem{
		controller:    controller,
		hudColor:      color.RGBA{255, 255, 255, 255},
		selectedColor: color.RGBA{255, 80, 80, 255},
	}
}

// SetFont sets the font used for HUD text. Without a font the HUD stays
// blank but the rest of the scene still renders.
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}

// Add satisfies the ecs.System interface.
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// UpdateState feeds the HUD the latest simulation snapshot.
func (hud *HUDSystem) UpdateState(state *engine.GameState) {
	hud.tick = state.Tick
	hud.craft = nil
	hud.target = nil

	var craft *engine.CraftState
	for id := range state.Crafts {
		cs := state.Crafts[id]
		if cs.Controller == hud.controller {
			craft = &cs
			break
		}
	}
	if craft == nil {
		return
	}
	hud.craft = craft

	selected, ok := state.Selections[hud.controller]
	if !ok {
		return
	}
	if ts, exists := state.Crafts[selected]; exists {
		hud.target = &targetReadout{
			id:       selected,
			name:     ts.Name,
			distance: craft.Position.Distance(ts.Position),
		}
	} else if bs, exists := state.Beacons[selected]; exists {
		hud.target = &targetReadout{
			id:       selected,
			name:     bs.Name,
			distance: craft.Position.Distance(bs.Position),
		}
	}
}

// Update redraws the HUD text entities.
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()
	hud.renderCraftStatus()
	hud.renderTargetStatus()
}

func (hud *HUDSystem) clearHUDEntities() {
	hud.hudEntities = hud.hudEntities[:0]
}

// renderCraftStatus draws the craft's command state and speed, top left.
func (hud *HUDSystem) renderCraftStatus() {
	if hud.craft == nil {
		hud.renderText("no craft", 10, 10, hud.hudColor)
		return
	}

	speed := hud.craft.Velocity.Length()
	statusText := fmt.Sprintf(
		"%s\n%s\nspeed %.1f\npos %.0f, %.0f",
		hud.craft.Name,
		hud.craft.State,
		speed,
		hud.craft.Position.X,
		hud.craft.Position.Y,
	)
	hud.renderText(statusText, 10, 10, hud.hudColor)
}

// renderTargetStatus draws the selection readout, top right.
func (hud *HUDSystem) renderTargetStatus() {
	x := float32(engo.GameWidth()) - 180
	if hud.target == nil {
		hud.renderText("no target", x, 10, hud.hudColor)
		return
	}

	targetText := fmt.Sprintf(
		"target: %s\ndist %.1f",
		hud.target.name,
		hud.target.distance,
	)
	hud.renderText(targetText, x, 10, hud.selectedColor)
}

// renderText creates a transient text entity for this frame.
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	if hud.font == nil {
		return
	}

	se := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Text{
				Font: hud.font,
				Text: text,
			},
			Color: textColor,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
		},
	}
	se.render.SetShader(common.HUDShader)
	hud.hudEntities = append(hud.hudEntities, se)
}
