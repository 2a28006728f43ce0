// Package ui holds the desktop host's systems and renderers: keyboard and
// gamepad polling, the follow camera, world and HUD drawing, the mode menu
// and settings persistence.
package ui

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
