package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/flight"
	"github.com/automoto/lunar-lander/fonts"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin       = 20
	fuelBarWidth    = 200
	fuelBarHeight   = 14
	lowFuelFraction = 0.3
)

// FlightView is what the HUD needs to know about the running flight.
type FlightView interface {
	Session() *flight.Session
	Telemetry() flight.Telemetry
}

// NewDrawHUD returns a renderer for the fuel bar, flight readouts and, once
// the flight is over, the result panel.
func NewDrawHUD(view FlightView) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := view.Session()
		if s == nil {
			return
		}
		tm := view.Telemetry()
		drawReadouts(screen, s, tm)

		if out, ok := s.Outcome(); ok {
			drawResult(screen, out.Success, out.Reason)
		}
	}
}

func drawReadouts(screen *ebiten.Image, s *flight.Session, tm flight.Telemetry) {
	face := fonts.Regular.Get()
	cfg := s.Config()

	text.Draw(screen, "FUEL", face, hudMargin, hudMargin+12, config.White)

	fraction := 0.0
	if cfg.Vehicle.MaxFuel > 0 {
		fraction = gamemath.ClampFloat(tm.Fuel/cfg.Vehicle.MaxFuel, 0, 1)
	}
	barColor := config.Green
	if fraction < lowFuelFraction {
		barColor = config.Red
	}
	vector.FillRect(screen, hudMargin+50, hudMargin, fuelBarWidth, fuelBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, hudMargin+50, hudMargin, float32(fuelBarWidth*fraction), fuelBarHeight, barColor, false)

	lines := []string{
		fmt.Sprintf("V. Speed: %.2f", tm.VerticalSpeed),
		fmt.Sprintf("H. Speed: %.2f", tm.HorizontalSpeed),
		fmt.Sprintf("Angle: %.1f°", gamemath.Degrees(tm.Rotation)),
		fmt.Sprintf("Alt: %.0f", tm.Altitude),
	}
	switch cfg.Mode.Mode {
	case config.ModePrecision:
		lines = append(lines, "Target: "+cfg.Mode.TargetPad.String())
	case config.ModeTimed:
		left := cfg.Mode.TimeLimit - tm.Elapsed
		if left < 0 {
			left = 0
		}
		lines = append(lines, fmt.Sprintf("Time: %.1f", left))
	case config.ModePayload:
		lines = append(lines, fmt.Sprintf("Payload: x%.1f", cfg.Mode.PayloadMassFactor))
	}

	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+50+i*20, config.White)
	}
}

func drawResult(screen *ebiten.Image, success bool, reason string) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), config.BlackOverlay, false)

	title, titleColor := "CRASHED", config.Red
	if success {
		title, titleColor = "MISSION ACCOMPLISHED", config.Green
	}

	titleFace := fonts.Title.Get()
	text.Draw(screen, title, titleFace, (width-fonts.Width(titleFace, title))/2, height/2-60, titleColor)

	msgFace := fonts.Bold.Get()
	text.Draw(screen, reason, msgFace, (width-fonts.Width(msgFace, reason))/2, height/2, config.White)

	hint := "Space: Restart   Esc: Main Menu"
	hintFace := fonts.Small.Get()
	text.Draw(screen, hint, hintFace, (width-fonts.Width(hintFace, hint))/2, height/2+50, config.LightBlue)
}
