// pkg/render/engo/scene.go
package engo

import (
	"sort"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-hovercraft/pkg/bot"
	"github.com/opd-ai/go-hovercraft/pkg/config"
	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/input"
	"github.com/opd-ai/go-hovercraft/pkg/logging"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
	"github.com/opd-ai/go-hovercraft/pkg/render"
)

// GameScene runs the local simulation and draws it through the Engo
// render system. The simulation advances on a fixed timestep inside the
// frame loop; rendering always draws the latest committed snapshot.
type GameScene struct {
	world *ecs.World

	game       *engine.Game
	cfg        *config.SimConfig
	controller string
	dispatcher *input.Dispatcher
	bots       []*bot.Bot
	logger     *logging.Logger

	renderer *SceneRenderer
	camera   *CameraSystem
	inputSys *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a scene for the given game. controller names the
// craft the local player steers; every craft config flagged Bot gets an
// autonomous controller.
func NewGameScene(game *engine.Game, cfg *config.SimConfig, controller string, logger *logging.Logger) *GameScene {
	return &GameScene{
		game:       game,
		cfg:        cfg,
		controller: controller,
		logger:     logger,
		world:      &ecs.World{},
	}
}

// Type returns the scene type (required by Engo).
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo). All
// assets are procedural, so there is nothing to load from disk.
func (scene *GameScene) Preload() {}

// Setup builds the world and its systems (required by Engo).
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}
	scene.world.AddSystem(&common.MouseSystem{})

	RegisterButtons()

	scene.camera = NewCameraSystem()

	assets := NewAssetManager()
	style := render.StyleFromConfig(scene.cfg.Reticle)
	if err := assets.LoadAssets(style, scene.cfg.Reticle.SizePixels); err != nil {
		panic("failed to load assets: " + err.Error())
	}

	scene.renderer = NewSceneRenderer(scene.world, assets, scene.camera, float32(scene.cfg.Reticle.SizePixels))
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	scene.dispatcher = input.NewDispatcher(scene.game, scene.cfg.Input.CyclesPerSecond)
	scene.inputSys = NewInputSystem(scene.game, scene.dispatcher, scene.controller, scene.cfg.Nav.BotOrbitRadius, scene.logger)
	scene.hud = NewHUDSystem(scene.controller)

	for _, craftCfg := range scene.cfg.Crafts {
		if craftCfg.Bot {
			scene.bots = append(scene.bots, bot.New(
				craftCfg.Controller,
				scene.game,
				scene.dispatcher,
				scene.cfg.Nav.BotThinkInterval,
				scene.cfg.Nav.BotOrbitRadius,
				scene.logger,
			))
		}
	}

	scene.world.AddSystem(scene.camera)
	scene.world.AddSystem(scene.inputSys)
	scene.world.AddSystem(scene.hud)
	scene.world.AddSystem(&simulationSystem{scene: scene})

	scene.game.Start()
}

// simulationSystem steps the game clock and redraws the frame. It runs
// after the input system so commands issued this frame take effect on the
// same tick.
type simulationSystem struct {
	scene       *GameScene
	accumulator float64
}

// Add satisfies the ecs.System interface.
func (ss *simulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (ss *simulationSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the simulation by as many fixed steps as the frame
// time covers, then renders the resulting snapshot.
func (ss *simulationSystem) Update(dt float32) {
	step := ss.scene.cfg.TimeStep
	ss.accumulator += float64(dt)
	for ss.accumulator >= step {
		for _, b := range ss.scene.bots {
			b.Update(step)
		}
		ss.scene.game.Update()
		ss.accumulator -= step
	}

	ss.scene.drawFrame(ss.scene.game.Snapshot())
}

// drawFrame pushes one snapshot through the renderer, camera and HUD.
func (scene *GameScene) drawFrame(state *engine.GameState) {
	scene.renderer.Clear()

	var playerPos physics.Vector2D
	var playerFound bool

	for _, id := range craftIDs(state) {
		cs := state.Crafts[id]
		scene.renderer.RenderCraft(craftFromState(cs))
		if cs.Controller == scene.controller {
			playerPos = cs.Position
			playerFound = true
		}
	}
	for _, bs := range state.Beacons {
		scene.renderer.RenderBeacon(beaconFromState(bs))
	}

	targetPos, hasTarget := scene.reticleTarget(state)
	if playerFound {
		scene.camera.Follow(playerPos, targetPos, hasTarget)
	}

	scene.hud.UpdateState(state)
	scene.renderer.Present()
}

// reticleTarget draws the marker over the local selection and reports its
// position for camera framing.
func (scene *GameScene) reticleTarget(state *engine.GameState) (physics.Vector2D, bool) {
	selected, ok := state.Selections[scene.controller]
	if !ok {
		return physics.Vector2D{}, false
	}

	if cs, exists := state.Crafts[selected]; exists {
		craft := craftFromState(cs)
		scene.renderer.RenderReticle(craft)
		return cs.Position, true
	}
	if bs, exists := state.Beacons[selected]; exists {
		beacon := beaconFromState(bs)
		scene.renderer.RenderReticle(beacon)
		return bs.Position, true
	}
	return physics.Vector2D{}, false
}

// craftIDs returns the snapshot's craft IDs in ascending order so sprite
// creation order is stable.
func craftIDs(state *engine.GameState) []entity.ID {
	ids := make([]entity.ID, 0, len(state.Crafts))
	for id := range state.Crafts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// craftFromState builds a render-only craft from snapshot data.
func craftFromState(cs engine.CraftState) *entity.Craft {
	return &entity.Craft{
		ID:         cs.ID,
		Name:       cs.Name,
		Controller: cs.Controller,
		Class:      cs.Class,
		Body: physics.Body{
			Position:        cs.Position,
			Velocity:        cs.Velocity,
			Facing:          cs.Facing,
			AngularVelocity: cs.AngularVelocity,
		},
		Active: true,
	}
}

// beaconFromState builds a render-only beacon from snapshot data.
func beaconFromState(bs engine.BeaconState) *entity.Beacon {
	return &entity.Beacon{
		ID:       bs.ID,
		Name:     bs.Name,
		Position: bs.Position,
		Radius:   bs.Radius,
		Active:   true,
	}
}
