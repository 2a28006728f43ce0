package ui

import (
	"fmt"
	"os"

	"github.com/automoto/lunar-lander/components"
	cfg "github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	menuTitleY     = 120
	menuStartY     = 200
	menuItemHeight = 44
)

// modeKeys pick a mode directly.
var modeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// NewUpdateMenu creates the menu system. start is called with the chosen mode.
func NewUpdateMenu(initial cfg.GameModeID, start func(cfg.GameModeID)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, initial)
		input := GetInput(e)

		numOptions := len(menu.Modes)
		if numOptions == 0 {
			return
		}

		if input.Action(cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}
		for i, key := range modeKeys {
			if i < numOptions && inpututil.IsKeyJustPressed(key) {
				menu.SelectedIndex = i
				start(menu.Selected())
				return
			}
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			start(menu.Selected())
			return
		}
		if input.Action(cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the mode selection screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	data := components.Menu.Get(menu)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "LUNAR LANDER"
	text.Draw(screen, title, titleFont, (width-fonts.Width(titleFont, title))/2, menuTitleY, cfg.White)

	menuFont := fonts.Bold.Get()
	for i, mode := range data.Modes {
		textColor := cfg.DarkBlue
		if i == data.SelectedIndex {
			textColor = cfg.LightBlue
		}
		label := fmt.Sprintf("%d. %s", i+1, mode.Title())
		y := menuStartY + i*menuItemHeight
		text.Draw(screen, label, menuFont, (width-fonts.Width(menuFont, label))/2, y, textColor)
	}

	hint := menuHint(GetInput(e).LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, (width-fonts.Width(hintFont, hint))/2, height-40, cfg.White)

	controls := "In flight: Up/W/Space thrust   Left/Right rotate"
	text.Draw(screen, controls, hintFont, (width-fonts.Width(hintFont, controls))/2, height-20, cfg.White)
}

func menuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   1-4 or Enter: Select   Esc: Quit"
}

// GetOrCreateMenu returns the Menu singleton, creating it with initial
// highlighted if needed.
func GetOrCreateMenu(e *ecs.ECS, initial cfg.GameModeID) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		data := components.MenuData{Modes: append([]cfg.GameModeID(nil), cfg.GameModes...)}
		for i, m := range data.Modes {
			if m == initial {
				data.SelectedIndex = i
			}
		}
		components.Menu.SetValue(entry, data)
	}
	return components.Menu.Get(entry)
}
