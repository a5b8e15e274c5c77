package config

import (
	"image/color"

	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// PhysicsConfig contains rigid body integration values
type PhysicsConfig struct {
	FixedDeltaTime float64 // seconds per tick, matches ebiten's 60 TPS
	Drag           float64 // linear drag applied to player bodies
	Gravity        float64 // world gravity for bodies with UseGravity
	MaxFallSpeed   float64
	FloorY         float64
	RestEpsilon    float64 // velocity components below this snap to zero
	SpaceScale     float64 // collision space units per world unit
	SpaceCellSize  int     // collision cell size in space units
}

// PlayerConfig contains player body dimensions in world units
type PlayerConfig struct {
	Radius float64
	Height float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	PixelsPerUnit   float64 // Screen pixels per world unit
	PitchTilt       float64 // Vertical screen offset per degree of pitch
}

// JoystickConfig contains the on-screen touch joystick layout
type JoystickConfig struct {
	Radius     float64 // Max knob travel in pixels
	KnobRadius float64
	MarginX    float64 // Distance of the base center from the left edge
	MarginY    float64 // Distance of the base center from the bottom edge
	BaseColor  color.RGBA
	KnobColor  color.RGBA
}

// HintConfig contains the cursor capture hint shown when the cursor is free
type HintConfig struct {
	Text        string
	FadeSeconds float32
	Color       color.RGBA
}

// ArenaConfig contains floor and wall colors
type ArenaConfig struct {
	Name        string
	Background  color.RGBA
	FloorColor  color.RGBA
	GridColor   color.RGBA
	WallColor   color.RGBA
	PlayerColor color.RGBA
	GridStep    float64 // world units between grid lines
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay         bool // Draw collision outlines and controller state
	SkipPersistence bool // Don't load or save tuning
	SpawnDuplicate  bool // Try to create a second controller at startup
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Global configuration instances
var C *Config
var Movement locomotion.Settings
var Physics PhysicsConfig
var Player PlayerConfig
var Camera CameraConfig
var Joystick JoystickConfig
var Hint HintConfig
var Arena ArenaConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Movement tunables (editor ranges live in locomotion.Ranges)
	Movement = locomotion.DefaultSettings()

	Physics = PhysicsConfig{
		FixedDeltaTime: 1.0 / 60.0,
		Drag:           5.0,
		Gravity:        9.81,
		MaxFallSpeed:   50,
		FloorY:         0,
		RestEpsilon:    1e-4,
		SpaceScale:     16,
		SpaceCellSize:  16,
	}

	Player = PlayerConfig{
		Radius: 0.4,
		Height: 1.8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		PixelsPerUnit:   16,
		PitchTilt:       0.5,
	}

	Joystick = JoystickConfig{
		Radius:     40,
		KnobRadius: 16,
		MarginX:    70,
		MarginY:    70,
		BaseColor:  color.RGBA{R: 255, G: 255, B: 255, A: 50},
		KnobColor:  color.RGBA{R: 255, G: 255, B: 255, A: 140},
	}

	Hint = HintConfig{
		Text:        "Click to capture the cursor - ESC to release",
		FadeSeconds: 0.4,
		Color:       White,
	}

	Arena = ArenaConfig{
		Name:        "arena",
		Background:  color.RGBA{R: 12, G: 12, B: 16, A: 255},
		FloorColor:  color.RGBA{R: 28, G: 30, B: 38, A: 255},
		GridColor:   color.RGBA{R: 44, G: 48, B: 60, A: 255},
		WallColor:   color.RGBA{R: 110, G: 110, B: 125, A: 255},
		PlayerColor: LightBlue,
		GridStep:    2,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:         false,
		SkipPersistence: false,
		SpawnDuplicate:  false,
	}
}
