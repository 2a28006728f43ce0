package main

import (
	"flag"
	"image"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/fonts"
	"github.com/automoto/lunar-lander/logging"
	"github.com/automoto/lunar-lander/scenes"
	"github.com/automoto/lunar-lander/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(base config.Config, log *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, base, log)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.DefaultWindow.Width, config.DefaultWindow.Height)
	return config.DefaultWindow.Width, config.DefaultWindow.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = defaults)")
	env := flag.String("env", "development", "Log environment (production = JSON)")
	flag.Parse()

	log := logging.Must(*env)
	defer log.Sync() //nolint:errcheck

	base, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.DefaultWindow.Width, config.DefaultWindow.Height)
	ebiten.SetWindowTitle("Lunar Lander")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := ui.InitPersistence(log); err == nil {
		ui.ApplySavedSettings(ui.LoadSettings())
	}

	if err := ebiten.RunGame(NewGame(base, log)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
