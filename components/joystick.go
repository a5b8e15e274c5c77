package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// JoystickData is the on-screen touch stick. Offsets are in screen pixels
// relative to the base center.
type JoystickData struct {
	CenterX, CenterY float64
	KnobX, KnobY     float64
	Active           bool
	Visible          bool // set once any touch has grabbed the stick
	TouchID          ebiten.TouchID
}

var Joystick = donburi.NewComponentType[JoystickData]()
