package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/flight"
	"github.com/automoto/lunar-lander/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// FlightScene flies one session and shows its result. Restarting builds a
// brand-new scene and session.
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	config       cfg.Config
	log          *zap.Logger
	once         sync.Once

	session   *flight.Session
	telemetry flight.Telemetry
}

// NewFlightScene creates a flight scene for the given configuration
func NewFlightScene(sc SceneChanger, config cfg.Config, log *zap.Logger) *FlightScene {
	return &FlightScene{sceneChanger: sc, config: config, log: log}
}

// Session implements ui.FlightView.
func (fs *FlightScene) Session() *flight.Session { return fs.session }

// Telemetry implements ui.FlightView.
func (fs *FlightScene) Telemetry() flight.Telemetry { return fs.telemetry }

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	if fs.ecs == nil {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.config, fs.log))
		return
	}
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	session, err := flight.New(fs.config,
		flight.WithLogger(fs.log),
		flight.WithTelemetry(func(t flight.Telemetry) { fs.telemetry = t }),
	)
	if err != nil {
		fs.log.Error("could not start flight", zap.Error(err))
		return
	}
	fs.session = session

	fs.ecs = ecs.NewECS(session.World())

	fs.ecs.AddSystem(ui.UpdateInput)
	fs.ecs.AddSystem(fs.updateFlight)
	fs.ecs.AddSystem(ui.UpdateCamera)

	fs.ecs.AddRenderer(ui.LayerWorld, ui.DrawTerrain)
	fs.ecs.AddRenderer(ui.LayerWorld, ui.DrawPads)
	fs.ecs.AddRenderer(ui.LayerWorld, ui.DrawLander)
	fs.ecs.AddRenderer(ui.LayerHUD, ui.NewDrawHUD(fs))
}

func (fs *FlightScene) updateFlight(e *ecs.ECS) {
	input := ui.GetInput(e)

	if input.Action(cfg.ActionMenuBack).JustPressed {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.config, fs.log))
		return
	}

	if fs.session.State().Terminal() {
		if input.Action(cfg.ActionRestart).JustPressed {
			fs.sceneChanger.ChangeScene(NewFlightScene(fs.sceneChanger, fs.config, fs.log))
		}
		return
	}

	dt := 1 / float64(ebiten.TPS())
	if err := fs.session.Tick(dt, ui.Intent(input)); err != nil {
		fs.log.Error("flight tick", zap.Error(err))
	}
}
