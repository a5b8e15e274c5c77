package components

import (
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/yohamta/donburi"
)

// ControllerData attaches a movement controller to the entity it drives.
type ControllerData struct {
	*locomotion.Controller
}

var Controller = donburi.NewComponentType[ControllerData]()

// OwnershipData exposes the world's controller registry to systems. Readers
// that want "the" controller go through the registry instead of picking the
// first entity that happens to carry one.
type OwnershipData struct {
	Registry *locomotion.Registry
}

var Ownership = donburi.NewComponentType[OwnershipData]()
