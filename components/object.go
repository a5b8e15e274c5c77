package components

import (
	cfg "github.com/automoto/walkabout/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// WorldBounds returns obj's rectangle in world units. The collision space is
// scaled by cfg.Physics.SpaceScale so resolv's whole-unit cell math holds.
func WorldBounds(obj *resolv.Object) (x, z, w, d float64) {
	s := cfg.Physics.SpaceScale
	return obj.X / s, obj.Y / s, obj.W / s, obj.H / s
}
