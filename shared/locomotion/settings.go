// Package locomotion holds the player movement controller: cursor capture,
// analog-driven impulses on a rigid body and controller ownership.
// It has no dependencies on ebitengine, donburi, or resolv. The host wires
// those in through the Body, Analog, Cursor and Camera interfaces.
package locomotion

import "math"

// Range is an inclusive editor range for a tunable.
type Range struct {
	Min float64
	Max float64
}

// Clamp returns v limited to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Settings contains the controller tunables.
type Settings struct {
	// Movement
	WalkingSpeed float64
	RunningSpeed float64
	JumpSpeed    float64

	// Gravity & grounding
	Gravity float64

	// Camera
	LookSpeed         float64
	LookXLimit        float64 // Limit of upwards and downwards look angles, degrees
	CameraFollowSpeed float64

	// Speed is the impulse scale applied per frame while the stick is deflected.
	Speed float64

	// LookEnabled turns on mouse look. When false the look tunables,
	// rotation accumulator and camera are carried but unused.
	LookEnabled bool
}

// Ranges are the editor ranges for the tunables that have one. They bound
// values that come from outside the code; the defaults are not held to them.
var Ranges = struct {
	WalkingSpeed Range
	RunningSpeed Range
	JumpSpeed    Range
	Gravity      Range
	LookSpeed    Range
	LookXLimit   Range
	Speed        Range
}{
	WalkingSpeed: Range{Min: 1, Max: 10},
	RunningSpeed: Range{Min: 1, Max: 10},
	JumpSpeed:    Range{Min: 1, Max: 10},
	Gravity:      Range{Min: 1, Max: 10},
	LookSpeed:    Range{Min: 0, Max: 10},
	LookXLimit:   Range{Min: 1, Max: 90},
	Speed:        Range{Min: 0, Max: math.Inf(1)},
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		WalkingSpeed:      7.5,
		RunningSpeed:      11.5,
		JumpSpeed:         8.0,
		Gravity:           9.8,
		LookSpeed:         2.0,
		LookXLimit:        45.0,
		CameraFollowSpeed: 5.0,
		Speed:             25.0,
	}
}
