package ui

import (
	"github.com/automoto/lunar-lander/components"
	"github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/shared/gamemath"
	"github.com/automoto/lunar-lander/tags"
	"github.com/yohamta/donburi/ecs"
)

// cameraSmoothing is the fraction of the remaining distance covered per frame.
const cameraSmoothing = 0.15

// UpdateCamera follows the lander vertically and keeps the world filling
// the screen.
func UpdateCamera(e *ecs.ECS) {
	camera := GetCamera(e)

	landerEntry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	prof := components.Terrain.Get(terrainEntry).Profile
	body := components.Vehicle.Get(landerEntry)

	screenWidth := float64(config.DefaultWindow.Width)
	screenHeight := float64(config.DefaultWindow.Height)

	target := body.Position
	target.X = clampAxis(target.X, screenWidth, prof.Width())
	target.Y = clampAxis(target.Y, screenHeight, prof.Height())

	camera.Position = camera.Position.Add(target.Sub(camera.Position).Scale(cameraSmoothing))
}

// clampAxis keeps a camera center inside [screen/2, world-screen/2], or
// centers it when the world is smaller than the screen.
func clampAxis(v, screen, world float64) float64 {
	if world <= screen {
		return world / 2
	}
	return gamemath.ClampFloat(v, screen/2, world-screen/2)
}

// GetCamera returns the Camera singleton, creating it centered on the
// spawn area if needed.
func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Camera))
		components.Camera.SetValue(entry, components.CameraData{
			Position: gamemath.Vec(float64(config.DefaultWindow.Width)/2, float64(config.DefaultWindow.Height)/2),
		})
	}
	return components.Camera.Get(entry)
}

// toScreen converts a world point to screen pixels.
func toScreen(camera *components.CameraData, p gamemath.Vector) (float32, float32) {
	x := p.X - camera.Position.X + float64(config.DefaultWindow.Width)/2
	y := p.Y - camera.Position.Y + float64(config.DefaultWindow.Height)/2
	return float32(x), float32(y)
}
