package systems

import (
	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, skip camera update
	}
	target := components.Locomotion.Get(playerEntry).Position()
	targetX, targetZ := target.X(), target.Z()

	// Keep the arena filling the screen where it is large enough
	if levelEntry, ok := components.Level.First(e.World); ok {
		if arena := components.Level.Get(levelEntry).Arena; arena != nil {
			ppu := config.Camera.PixelsPerUnit
			halfW := float64(config.C.Width) / 2 / ppu
			halfH := float64(config.C.Height) / 2 / ppu
			targetX = clampCameraAxis(targetX, halfW, arena.Width)
			targetZ = clampCameraAxis(targetZ, halfH, arena.Depth)
		}
	}

	// Follow the target with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetZ - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCameraAxis keeps a view of half-extent half inside [0, size]. Levels
// smaller than the view are centered.
func clampCameraAxis(target, half, size float64) float64 {
	if size <= half*2 {
		return size / 2
	}
	if target < half {
		return half
	}
	if target > size-half {
		return size - half
	}
	return target
}
