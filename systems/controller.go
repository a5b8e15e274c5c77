package systems

import (
	"math"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController runs the movement controller once per tick.
// Must run AFTER UpdateInput and the UI update.
func UpdateController(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	frame := buildFrame(input, PointerOverUI(), cfg.Physics.FixedDeltaTime)

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		ctrl.Update(frame)

		if e.HasComponent(components.Player) {
			updateHeading(components.Player.Get(e), ctrl.Controller)
		}
	})
}

// ownerController returns the entity and controller that own the world's
// registry. A world without an ownership entity, or whose slot is empty, has
// no owner.
func ownerController(ecs *ecs.ECS) (*donburi.Entry, *locomotion.Controller, bool) {
	ownership, ok := components.Ownership.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	ctrl, ok := components.Ownership.Get(ownership).Registry.Current()
	if !ok {
		return nil, nil, false
	}

	var owner *donburi.Entry
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		if components.Controller.Get(e).Controller == ctrl {
			owner = e
		}
	})
	if owner == nil {
		return nil, nil, false
	}
	return owner, ctrl, true
}

func buildFrame(input *components.InputData, overUI bool, fixedDelta float64) locomotion.Frame {
	return locomotion.Frame{
		Cancel:        input.Action(cfg.ActionCancel).JustPressed,
		Primary:       input.Action(cfg.ActionPrimary).JustPressed,
		PointerOverUI: overUI,
		LookX:         input.LookX,
		LookY:         input.LookY,
		FixedDelta:    fixedDelta,
	}
}

// updateHeading keeps the last non-zero movement direction for drawing.
func updateHeading(player *components.PlayerData, ctrl *locomotion.Controller) {
	dir := ctrl.Direction()
	if dir.X() == 0 && dir.Z() == 0 {
		return
	}
	player.Heading = math.Atan2(dir.X(), dir.Z()) * 180 / math.Pi
}
