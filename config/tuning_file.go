package config

import (
	"fmt"
	"io"
	"os"

	"github.com/automoto/walkabout/shared/locomotion"
	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML shape of a movement tuning file. Omitted keys keep
// the current value.
type TuningFile struct {
	WalkingSpeed      *float64 `yaml:"walkingSpeed"`
	RunningSpeed      *float64 `yaml:"runningSpeed"`
	JumpSpeed         *float64 `yaml:"jumpSpeed"`
	Gravity           *float64 `yaml:"gravity"`
	LookSpeed         *float64 `yaml:"lookSpeed"`
	LookXLimit        *float64 `yaml:"lookXLimit"`
	CameraFollowSpeed *float64 `yaml:"cameraFollowSpeed"`
	Speed             *float64 `yaml:"speed"`
	LookEnabled       *bool    `yaml:"lookEnabled"`
}

// ReadTuning overlays the YAML document in r on base. Values read from the
// document are clamped to their editor range; keys it omits keep base as is.
func ReadTuning(r io.Reader, base locomotion.Settings) (locomotion.Settings, error) {
	var f TuningFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return base, fmt.Errorf("decode tuning: %w", err)
	}

	rng := locomotion.Ranges
	setRanged(&base.WalkingSpeed, f.WalkingSpeed, rng.WalkingSpeed)
	setRanged(&base.RunningSpeed, f.RunningSpeed, rng.RunningSpeed)
	setRanged(&base.JumpSpeed, f.JumpSpeed, rng.JumpSpeed)
	setRanged(&base.Gravity, f.Gravity, rng.Gravity)
	setRanged(&base.LookSpeed, f.LookSpeed, rng.LookSpeed)
	setRanged(&base.LookXLimit, f.LookXLimit, rng.LookXLimit)
	setRanged(&base.Speed, f.Speed, rng.Speed)
	if f.CameraFollowSpeed != nil {
		base.CameraFollowSpeed = *f.CameraFollowSpeed
	}
	if f.LookEnabled != nil {
		base.LookEnabled = *f.LookEnabled
	}
	return base, nil
}

// LoadTuningFile reads a tuning file from disk. See ReadTuning.
func LoadTuningFile(path string, base locomotion.Settings) (locomotion.Settings, error) {
	fh, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open tuning file: %w", err)
	}
	defer fh.Close()
	return ReadTuning(fh, base)
}

func setRanged(dst *float64, v *float64, r locomotion.Range) {
	if v != nil {
		*dst = r.Clamp(*v)
	}
}
