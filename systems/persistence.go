package systems

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/quasilyte/gdata"
)

const tuningItem = "tuning"

// SavedTuning is the slice of movement settings stored on disk
type SavedTuning struct {
	Speed       float64 `json:"speed"`
	LookEnabled bool    `json:"lookEnabled"`
	LookSpeed   float64 `json:"lookSpeed"`
}

// ErrPersistenceUnavailable is returned by SaveTuning before
// InitPersistence has succeeded.
var ErrPersistenceUnavailable = errors.New("persistence not initialized")

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads the saved tuning. A missing item returns nil, nil.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningItem)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return nil, nil
	}

	return decodeTuning(data)
}

// SaveTuning saves tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return ErrPersistenceUnavailable
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(tuningItem, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

func decodeTuning(data []byte) (*SavedTuning, error) {
	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return &t, nil
}

// TuningFrom captures the persisted part of s.
func TuningFrom(s locomotion.Settings) *SavedTuning {
	return &SavedTuning{
		Speed:       s.Speed,
		LookEnabled: s.LookEnabled,
		LookSpeed:   s.LookSpeed,
	}
}

// ApplyTuning overlays saved values on s. Only the overlaid values are
// clamped. A nil tuning leaves s unchanged; a zero look speed keeps the
// current one.
func ApplyTuning(s locomotion.Settings, t *SavedTuning) locomotion.Settings {
	if t == nil {
		return s
	}
	s.Speed = locomotion.Ranges.Speed.Clamp(t.Speed)
	s.LookEnabled = t.LookEnabled
	if t.LookSpeed > 0 {
		s.LookSpeed = locomotion.Ranges.LookSpeed.Clamp(t.LookSpeed)
	}
	return s
}
