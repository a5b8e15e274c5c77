package systems

import (
	"math"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// grabSlack lets a touch slightly outside the base still grab the stick.
const grabSlack = 1.5

var touchIDs []ebiten.TouchID

// UpdateJoystick tracks the touch that owns the on-screen stick.
func UpdateJoystick(ecs *ecs.ECS) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	js := components.Joystick.Get(entry)

	if js.Active {
		if inpututil.IsTouchJustReleased(js.TouchID) {
			releaseStick(js)
			return
		}
		x, y := ebiten.TouchPosition(js.TouchID)
		dragStick(js, float64(x), float64(y))
		return
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		if touchGrabsStick(js, float64(x), float64(y)) {
			js.Active = true
			js.Visible = true
			js.TouchID = id
			dragStick(js, float64(x), float64(y))
			return
		}
	}
}

func touchGrabsStick(js *components.JoystickData, x, y float64) bool {
	return math.Hypot(x-js.CenterX, y-js.CenterY) <= cfg.Joystick.Radius*grabSlack
}

func dragStick(js *components.JoystickData, x, y float64) {
	js.KnobX, js.KnobY = gamemath.ClampToRadius(x-js.CenterX, y-js.CenterY, cfg.Joystick.Radius)
}

func releaseStick(js *components.JoystickData) {
	js.Active = false
	js.KnobX, js.KnobY = 0, 0
}
