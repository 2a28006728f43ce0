package components

import (
	cfg "github.com/automoto/lunar-lander/config"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int              // Current selection index in Modes
	Modes         []cfg.GameModeID // Options to display
}

// Selected returns the highlighted mode.
func (m *MenuData) Selected() cfg.GameModeID {
	if len(m.Modes) == 0 {
		return cfg.ModeFree
	}
	return m.Modes[m.SelectedIndex]
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
