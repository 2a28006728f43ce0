package ui

import (
	"image/color"
	"math"

	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/fonts"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/tags"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	terrainStripWidth = 4
	flameLength       = 18
)

// padColors are the display colors per pad kind.
var padColors = map[config.PadKind]color.RGBA{
	config.PadEasy:   config.Green,
	config.PadMedium: config.Yellow,
	config.PadHard:   config.Red,
	config.PadPower:  config.Cyan,
}

// DrawTerrain fills the ground below the surface and outlines it.
func DrawTerrain(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	prof := components.Terrain.Get(entry).Profile
	camera := GetCamera(e)

	for x := 0.0; x < prof.Width(); x += terrainStripWidth {
		top := prof.SurfaceY(x + terrainStripWidth/2)
		sx, sy := toScreen(camera, gamemath.Vec(x, top))
		_, bottom := toScreen(camera, gamemath.Vec(x, prof.Height()))
		vector.FillRect(screen, sx, sy, terrainStripWidth, bottom-sy, config.Rock, false)
	}

	components.Segment.Each(e.World, func(seg *donburi.Entry) {
		s := components.Segment.Get(seg)
		x0, y0 := toScreen(camera, s.A)
		x1, y1 := toScreen(camera, s.B)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, config.RockOutline, true)
	})
}

// DrawPads draws every pad at its current position with its pulse alpha.
func DrawPads(e *ecs.ECS, screen *ebiten.Image) {
	camera := GetCamera(e)
	face := fonts.Small.Get()

	components.Pad.Each(e.World, func(entry *donburi.Entry) {
		pad := components.Pad.Get(entry)
		surface := pad.Surface()

		c := padColors[pad.Kind]
		c.A = uint8(math.Round(255 * gamemath.ClampFloat(pad.Alpha, 0, 1)))

		x, y := toScreen(camera, gamemath.Vec(surface.X-pad.Width/2, surface.Y))
		vector.FillRect(screen, x, y, float32(pad.Width), 6, c, false)

		label := pad.Kind.String()
		text.Draw(screen, label, face, int(x)+(int(pad.Width)-fonts.Width(face, label))/2, int(y)+18, config.White)
	})
}

// DrawLander draws the hull, tinted by status, and the engine flame.
func DrawLander(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	body := components.Vehicle.Get(entry)
	camera := GetCamera(e)

	hull := config.White
	switch body.Status {
	case vehicle.Landed:
		hull = config.Green
	case vehicle.Crashed:
		hull = config.Red
	}

	corners := body.Corners()
	for i := range corners {
		x0, y0 := toScreen(camera, corners[i])
		x1, y1 := toScreen(camera, corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, hull, true)
	}

	if body.Thrusting && body.Status == vehicle.Flying {
		// Bottom edge runs from corner 2 to corner 3.
		mid := corners[2].Add(corners[3]).Scale(0.5)
		tip := mid.Add(gamemath.FromAngle(body.Rotation + math.Pi/2).Scale(flameLength))
		for _, base := range []gamemath.Vector{corners[2], corners[3]} {
			root := mid.Add(base.Sub(mid).Scale(0.4))
			x0, y0 := toScreen(camera, root)
			x1, y1 := toScreen(camera, tip)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, config.Orange, true)
		}
	}
}
