package systems

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sisyphus",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current audio volumes
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		MusicVolume: mixer.musicVolume,
		SFXVolume:   mixer.sfxVolume,
		Muted:       mixer.musicVolume == 0 && mixer.sfxVolume == 0,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	mixer.musicVolume = saved.MusicVolume
	mixer.sfxVolume = saved.SFXVolume

	if saved.Muted {
		mixer.musicVolume = 0
		mixer.sfxVolume = 0
	}
}

// LoadBestDistance returns the longest push on record, in steps.
func LoadBestDistance() float64 {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("best_distance")
	if err != nil {
		log.Printf("Warning: Could not load best distance: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	best, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		log.Printf("Warning: Could not parse best distance: %v", err)
		return 0
	}
	return best
}

// RecordDistance stores distance if it beats the record and returns the
// record afterwards.
func RecordDistance(distance float64) (best float64, isNew bool) {
	best = LoadBestDistance()
	if distance <= best {
		return best, false
	}
	if gdataInitialized && gdataManager != nil {
		data := []byte(strconv.FormatFloat(distance, 'f', -1, 64))
		if err := gdataManager.SaveItem("best_distance", data); err != nil {
			log.Printf("Warning: Could not save best distance: %v", err)
		}
	}
	return distance, true
}
