package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton and every player's
// analog reading. Must run AFTER UpdateJoystick and BEFORE UpdateController.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Track which input method was used this frame
	var keyboardUsed, mouseUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	x, y := ebiten.CursorPosition()
	input.TrackCursor(x, y, cfg.Input.MouseLookScale)
	if input.LookX != 0 || input.LookY != 0 {
		mouseUsed = true
	}

	// Gamepad takes priority if several were used
	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}

	stick := readGamepadStick(gamepadIDs)
	touch := readTouchStick(ecs)
	keys := analogReading{
		horizontal: gamemath.KeyAxis(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]),
		vertical:   gamemath.KeyAxis(input.Current[cfg.ActionMoveBack], input.Current[cfg.ActionMoveForward]),
	}
	analog := resolveAnalog(stick, touch, keys)
	if analog.Device == components.AnalogTouch {
		input.LastInputMethod = components.InputTouch
	}

	components.Analog.Each(ecs.World, func(e *donburi.Entry) {
		components.Analog.SetValue(e, analog)
	})
}

type analogReading struct {
	horizontal float64
	vertical   float64
}

func (r analogReading) neutral() bool {
	return r.horizontal == 0 && r.vertical == 0
}

// resolveAnalog picks the first deflected source: gamepad stick, then touch
// stick, then keys. All neutral yields an exact zero reading.
func resolveAnalog(stick, touch, keys analogReading) components.AnalogData {
	switch {
	case !stick.neutral():
		return components.AnalogData{VerticalAxis: stick.vertical, HorizontalAxis: stick.horizontal, Device: components.AnalogGamepad}
	case !touch.neutral():
		return components.AnalogData{VerticalAxis: touch.vertical, HorizontalAxis: touch.horizontal, Device: components.AnalogTouch}
	case !keys.neutral():
		return components.AnalogData{VerticalAxis: keys.vertical, HorizontalAxis: keys.horizontal, Device: components.AnalogKeyboard}
	}
	return components.AnalogData{}
}

// readGamepadStick reads the left stick of the first gamepad outside the
// deadzone. Stick up is positive vertical.
func readGamepadStick(gamepads []ebiten.GamepadID) analogReading {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		r := analogReading{
			horizontal: gamemath.ApplyDeadzone(horizontal, deadzone),
			vertical:   -gamemath.ApplyDeadzone(vertical, deadzone),
		}
		if !r.neutral() {
			return r
		}
	}

	return analogReading{}
}

func readTouchStick(ecs *ecs.ECS) analogReading {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return analogReading{}
	}
	js := components.Joystick.Get(entry)
	if !js.Active {
		return analogReading{}
	}
	h, v := gamemath.StickAxes(js.KnobX, js.KnobY, cfg.Joystick.Radius)
	return analogReading{horizontal: h, vertical: v}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
