package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	// Zero-value InputData is correct (all bools false)
	return archetypes.Input.Spawn(ecs)
}

// CreateJoystick places the touch stick base in the bottom-left corner.
func CreateJoystick(ecs *ecs.ECS) *donburi.Entry {
	joystick := archetypes.Joystick.Spawn(ecs)
	components.Joystick.SetValue(joystick, components.JoystickData{
		CenterX: cfg.Joystick.MarginX,
		CenterY: float64(cfg.C.Height) - cfg.Joystick.MarginY,
	})
	return joystick
}

// CreateHint spawns the capture hint fully hidden.
func CreateHint(ecs *ecs.ECS) *donburi.Entry {
	hint := archetypes.Hint.Spawn(ecs)
	components.Hint.SetValue(hint, components.HintData{
		Tween: gween.New(0, 0, cfg.Hint.FadeSeconds, ease.Linear),
	})
	return hint
}
