package scenes

import (
	"errors"
	"log"
	"sync"

	"github.com/automoto/walkabout/assets"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/automoto/walkabout/systems"
	"github.com/automoto/walkabout/systems/factory"
	"github.com/automoto/walkabout/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is anything the game loop can drive.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Closer is a scene that holds something the next scene must not inherit.
type Closer interface {
	Close()
}

// WorldScene is the walkable arena. It owns the controller registry for its
// world, so a new scene starts with an empty slot.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	registry     locomotion.Registry
	owner        *donburi.Entry
	cursor       locomotion.Cursor
	tuning       *ui.TuningUI
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc, cursor: systems.EbitenCursor{}}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.RestartRequested(ws.ecs) {
		ws.restart()
	}
}

// restart replaces the scene with a fresh one that starts from the tuning
// currently in effect.
func (ws *WorldScene) restart() {
	if ws.sceneChanger == nil {
		return
	}
	if entry := ws.owner; entry != nil && entry.Valid() && entry.HasComponent(components.Controller) {
		cfg.Movement = components.Controller.Get(entry).Settings()
	}
	ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger))
}

// Close gives up the controller so the registry slot is empty for whatever
// replaces this scene. Closing twice is harmless.
func (ws *WorldScene) Close() {
	factory.ReleaseMovementController(&ws.registry, ws.owner)
	ws.owner = nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Arena.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: raw input, then UI hover state, then the controller
	// that reads both, then physics on the impulses it applied.
	ecs.AddSystem(systems.UpdateJoystick)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(ws.updateTuningUI)
	ecs.AddSystem(systems.UpdateController)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHint)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawJoystick)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, ws.drawTuningUI)

	ws.ecs = ecs
	ctrl := ws.build()
	ws.tuning = ui.NewTuningUI(ctrl, ws.saveTuning)
}

// build fills ws.ecs with the arena, the input singletons and the controlled
// player, and returns the started controller.
func (ws *WorldScene) build() *locomotion.Controller {
	arena, err := assets.LoadArena(cfg.Arena.Name)
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	factory.CreateArena(ws.ecs, arena)
	factory.CreateOwnership(ws.ecs, &ws.registry)
	factory.CreateInput(ws.ecs)
	factory.CreateJoystick(ws.ecs)
	factory.CreateHint(ws.ecs)

	spawn := arena.Spawns[0]

	// Snap camera to the spawn to prevent panning from (0,0)
	camera := factory.CreateCamera(ws.ecs, spawn.X, spawn.Z)

	opts := factory.ControllerOptions{
		Settings: cfg.Movement,
		Cursor:   ws.cursor,
		Camera:   components.CameraHandle{Entry: camera},
	}

	player := factory.CreatePlayer(ws.ecs, spawn.X, spawn.Z)
	owner, err := factory.CreateMovementController(ws.ecs, &ws.registry, player, opts)
	if err != nil {
		panic("failed to create movement controller: " + err.Error())
	}
	ws.owner = owner
	ctrl := components.Controller.Get(owner).Controller
	if err := ctrl.Start(); err != nil {
		panic("failed to start movement controller: " + err.Error())
	}

	if cfg.Debug.SpawnDuplicate {
		ws.spawnDuplicate(spawn, opts)
	}
	return ctrl
}

// spawnDuplicate tries to add a second controlled player. The registry
// refuses it and the factory removes the extra entity.
func (ws *WorldScene) spawnDuplicate(spawn leveldata.SpawnPoint, opts factory.ControllerOptions) {
	dupe := factory.CreatePlayer(ws.ecs, spawn.X+2, spawn.Z)
	_, err := factory.CreateMovementController(ws.ecs, &ws.registry, dupe, opts)
	if errors.Is(err, locomotion.ErrDuplicateController) {
		log.Printf("duplicate controller discarded, %d controller(s) remain", countControllers(ws.ecs))
		return
	}
	if err != nil {
		log.Printf("Warning: duplicate spawn failed: %v", err)
	}
}

func countControllers(e *ecs.ECS) int {
	n := 0
	components.Controller.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func (ws *WorldScene) updateTuningUI(_ *ecs.ECS) {
	if ws.tuning != nil {
		ws.tuning.Update()
	}
}

func (ws *WorldScene) drawTuningUI(_ *ecs.ECS, screen *ebiten.Image) {
	if ws.tuning != nil {
		ws.tuning.UI.Draw(screen)
	}
}

// ErrSaveDisabled is returned by the save button when persistence is off.
var ErrSaveDisabled = errors.New("saving disabled by -nosave")

func (ws *WorldScene) saveTuning(s locomotion.Settings) error {
	if cfg.Debug.SkipPersistence {
		return ErrSaveDisabled
	}
	return systems.SaveTuning(systems.TuningFrom(s))
}
