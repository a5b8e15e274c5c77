package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ControllerOptions are the pieces of a movement controller that come from
// outside the player entity.
type ControllerOptions struct {
	Settings locomotion.Settings
	Cursor   locomotion.Cursor
	Camera   locomotion.Camera
}

// CreateOwnership publishes reg to the world so systems can find the owning
// controller.
func CreateOwnership(ecs *ecs.ECS, reg *locomotion.Registry) *donburi.Entry {
	entry := archetypes.Ownership.Spawn(ecs)
	components.Ownership.SetValue(entry, components.OwnershipData{Registry: reg})
	return entry
}

// CreateMovementController attaches a controller to player and registers it.
//
// The player must carry a locomotion component; otherwise nothing is attached
// and ErrMissingLocomotion is returned. If reg already has an owner the
// player entity is destroyed, the owner's entry is returned and the error
// wraps ErrDuplicateController.
func CreateMovementController(ecs *ecs.ECS, reg *locomotion.Registry, player *donburi.Entry, opts ControllerOptions) (*donburi.Entry, error) {
	loco := components.LocomotionOf(player)
	if loco == nil {
		return nil, fmt.Errorf("attach movement controller: %w", locomotion.ErrMissingLocomotion)
	}

	ctrl := locomotion.NewController(opts.Settings, locomotion.Deps{
		Locomotion: loco,
		Body:       components.BodyOf(player),
		Analog:     components.AnalogOf(player),
		Cursor:     opts.Cursor,
		Camera:     opts.Camera,
	})

	if err := reg.Register(ctrl); err != nil {
		if !errors.Is(err, locomotion.ErrDuplicateController) {
			return nil, fmt.Errorf("register movement controller: %w", err)
		}
		log.Printf("Warning: discarding duplicate movement controller on entity %v", player.Entity())
		DestroyPlayer(ecs, player)
		owner, _ := components.Controller.First(ecs.World)
		return owner, fmt.Errorf("register movement controller: %w", err)
	}

	player.AddComponent(components.Controller)
	components.Controller.SetValue(player, components.ControllerData{Controller: ctrl})
	return player, nil
}

// ReleaseMovementController removes the controller from its entity and frees
// the registry slot.
func ReleaseMovementController(reg *locomotion.Registry, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Controller) {
		return
	}
	reg.Release(components.Controller.Get(entry).Controller)
	entry.RemoveComponent(components.Controller)
}
