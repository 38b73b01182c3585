package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the game mode selection
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rt           *systems.Runtime
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, rt *systems.Runtime) *MenuScene {
	return &MenuScene{sceneChanger: sc, rt: rt}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Close releases the scene's resources. The menu holds none.
func (ms *MenuScene) Close() {}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createScoreboardScene := func(profileID string) interface{} {
		return NewScoreboardScene(ms.sceneChanger, ms.rt, profileID)
	}

	// Audio system (runs first so sounds queued last frame play)
	ms.ecs.AddSystem(systems.NewUpdateAudio(ms.rt))

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateCursor)
	ms.ecs.AddSystem(systems.UpdateDebug)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.rt, createScoreboardScene))
	ms.ecs.AddSystem(systems.NewUpdateSettingsMenu(ms.rt))

	// Renderers (settings draws on top of menu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}
