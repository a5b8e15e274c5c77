package components

import (
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/yohamta/donburi"
)

// AnalogDevice is the device that produced the last analog reading
type AnalogDevice int

const (
	AnalogNone AnalogDevice = iota
	AnalogKeyboard
	AnalogGamepad
	AnalogTouch
)

func (d AnalogDevice) String() string {
	switch d {
	case AnalogKeyboard:
		return "keyboard"
	case AnalogGamepad:
		return "gamepad"
	case AnalogTouch:
		return "touch"
	}
	return "none"
}

// AnalogData holds this frame's two-axis movement reading, each in [-1, 1].
type AnalogData struct {
	VerticalAxis   float64
	HorizontalAxis float64
	Device         AnalogDevice
}

var Analog = donburi.NewComponentType[AnalogData]()

func (a *AnalogData) Vertical() float64 {
	return a.VerticalAxis
}

func (a *AnalogData) Horizontal() float64 {
	return a.HorizontalAxis
}

type analogHandle struct {
	entry *donburi.Entry
}

func (h analogHandle) Vertical() float64 {
	return Analog.Get(h.entry).Vertical()
}

func (h analogHandle) Horizontal() float64 {
	return Analog.Get(h.entry).Horizontal()
}

// AnalogOf returns the entry's analog reading as a locomotion.Analog, or nil
// if the entry has none.
func AnalogOf(entry *donburi.Entry) locomotion.Analog {
	if !entry.HasComponent(Analog) {
		return nil
	}
	return analogHandle{entry: entry}
}
