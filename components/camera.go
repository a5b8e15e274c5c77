package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world X/Z the view is centered on
	Pitch    float64   // degrees, only moved by mouse look
}

var Camera = donburi.NewComponentType[CameraData]()

func (c *CameraData) SetPitch(deg float64) {
	c.Pitch = deg
}

// CameraHandle forwards pitch updates to the camera entry.
type CameraHandle struct {
	Entry *donburi.Entry
}

func (h CameraHandle) SetPitch(deg float64) {
	Camera.Get(h.Entry).SetPitch(deg)
}
