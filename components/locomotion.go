package components

import (
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LocomotionData is the character's collision footprint. The resolv object
// lives on the floor plane in space units: its X is world X and its Y is
// world Z.
type LocomotionData struct {
	Object    *resolv.Object
	Elevation float64 // world Y of the feet
	Grounded  bool
	Height    float64
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// Position returns the footprint center at foot height.
func (l *LocomotionData) Position() mgl64.Vec3 {
	if l.Object == nil {
		return mgl64.Vec3{0, l.Elevation, 0}
	}
	x, z, w, d := WorldBounds(l.Object)
	return mgl64.Vec3{x + w/2, l.Elevation, z + d/2}
}

type locomotionHandle struct {
	entry *donburi.Entry
}

func (h locomotionHandle) Position() mgl64.Vec3 {
	return Locomotion.Get(h.entry).Position()
}

// LocomotionOf returns the entry's locomotion capability, or nil if the
// entry has none.
func LocomotionOf(entry *donburi.Entry) locomotion.Locomotion {
	if !entry.HasComponent(Locomotion) {
		return nil
	}
	return locomotionHandle{entry: entry}
}
