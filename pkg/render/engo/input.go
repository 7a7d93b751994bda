// pkg/render/engo/input.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/input"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
)

// Button names registered by RegisterButtons. Systems look buttons up by
// these names, never by raw key codes.
const (
	buttonCycleTarget = "cycleTarget"
	buttonApproach    = "approach"
	buttonOrbitCW     = "orbitClockwise"
	buttonOrbitCCW    = "orbitCounter"
	buttonIdle        = "idle"
)

// RegisterButtons binds the navigation keys. Must be called once before
// the scene starts, from the main goroutine.
func RegisterButtons() {
	engo.Input.RegisterButton(buttonCycleTarget, engo.KeyT)
	engo.Input.RegisterButton(buttonApproach, engo.KeyA)
	engo.Input.RegisterButton(buttonOrbitCW, engo.KeyO)
	engo.Input.RegisterButton(buttonOrbitCCW, engo.KeyP)
	engo.Input.RegisterButton(buttonIdle, engo.KeySpace)
}

// InputSystem translates key presses into navigation commands for the
// local player's craft. Commands go through the shared dispatcher so the
// player is debounced and validated exactly like a bot controller.
type InputSystem struct {
	game        *engine.Game
	dispatcher  *input.Dispatcher
	controller  string
	orbitRadius float64
	logger      *logging.Logger
}

// NewInputSystem wires key handling for the given controller.
func NewInputSystem(game *engine.Game, dispatcher *input.Dispatcher, controller string, orbitRadius float64, logger *logging.Logger) *InputSystem {
	return &InputSystem{
		game:        game,
		dispatcher:  dispatcher,
		controller:  controller,
		orbitRadius: orbitRadius,
		logger:      logger,
	}
}

// Add satisfies the ecs.System interface.
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update polls the navigation buttons once per frame.
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(buttonCycleTarget).JustPressed() {
		is.dispatcher.CycleTarget(is.controller)
	}
	if engo.Input.Button(buttonApproach).JustPressed() {
		is.commandSelected(func(target entity.ID) error {
			return is.dispatcher.Approach(is.controller, target)
		})
	}
	if engo.Input.Button(buttonOrbitCW).JustPressed() {
		is.commandSelected(func(target entity.ID) error {
			return is.dispatcher.Orbit(is.controller, target, is.orbitRadius, true)
		})
	}
	if engo.Input.Button(buttonOrbitCCW).JustPressed() {
		is.commandSelected(func(target entity.ID) error {
			return is.dispatcher.Orbit(is.controller, target, is.orbitRadius, false)
		})
	}
	if engo.Input.Button(buttonIdle).JustPressed() {
		is.dispatcher.Idle(is.controller)
	}
}

// commandSelected applies fn to the current selection, if any. A rejected
// command leaves the craft's prior command running, so failures are only
// logged.
func (is *InputSystem) commandSelected(fn func(target entity.ID) error) {
	target, ok := is.game.SelectedTarget(is.controller)
	if !ok {
		return
	}
	if err := fn(target); err != nil {
		is.logger.Warn(context.Background(), "command rejected",
			"controller", is.controller,
			"target", target,
			"error", err,
		)
	}
}
