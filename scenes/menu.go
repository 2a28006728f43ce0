package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a game mode
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	base         cfg.Config
	log          *zap.Logger
	once         sync.Once
}

// NewMenuScene creates a new menu scene. base is the configuration every
// flight starts from; the chosen mode is applied on top.
func NewMenuScene(sc SceneChanger, base cfg.Config, log *zap.Logger) *MenuScene {
	return &MenuScene{sceneChanger: sc, base: base, log: log}
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

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	initial := ms.base.Mode.Mode
	if saved := ui.LoadSettings(); saved != nil {
		initial = saved.Mode
	}

	start := func(mode cfg.GameModeID) {
		if err := ui.SaveSettings(ui.SavedSettings{Mode: mode, Fullscreen: ebiten.IsFullscreen()}); err != nil {
			ms.log.Warn("save selected mode", zap.Error(err))
		}
		ms.sceneChanger.ChangeScene(NewFlightScene(ms.sceneChanger, ms.base.WithMode(mode), ms.log))
	}

	ms.ecs.AddSystem(ui.UpdateInput)
	ms.ecs.AddSystem(ui.NewUpdateMenu(initial, start))

	ms.ecs.AddRenderer(ui.LayerHUD, ui.DrawMenu)
}
