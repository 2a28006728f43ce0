package ui

import (
	"encoding/json"

	cfg "github.com/automoto/lunar-lander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Mode       cfg.GameModeID `json:"mode"`
	Fullscreen bool           `json:"fullscreen"`
}

var (
	gdataManager *gdata.Manager
	log          = zap.NewNop()
)

// InitPersistence opens the settings store. Without it settings are
// neither loaded nor saved.
func InitPersistence(logger *zap.Logger) error {
	if logger != nil {
		log = logger
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "lunar-lander",
	})
	if err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is
// saved yet or persistence is unavailable.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", zap.Error(err))
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// ApplySavedSettings applies window settings at startup.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
