package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// RestartRequested reports whether the restart key went down this tick.
func RestartRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).Action(cfg.ActionRestart).JustPressed
}

// UpdateDebugToggle flips the debug overlay on its key.
func UpdateDebugToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return // No camera yet
	}

	// Draw all collision objects in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			x, y, w, h := v.rect(components.WorldBounds(obj))
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	_, ctrl, ok := ownerController(ecs)
	if !ok {
		return
	}
	s := ctrl.Settings()
	pos := ctrl.Position()
	msg := fmt.Sprintf("pos %.2f %.2f %.2f\ndir %.2f %.2f\nlocked %v look %v\npitch %.1f yaw %.1f\nspeed %.1f",
		pos.X(), pos.Y(), pos.Z(),
		ctrl.Direction().X(), ctrl.Direction().Z(),
		ctrl.CursorLocked(), s.LookEnabled,
		ctrl.RotationX(), ctrl.Yaw(),
		s.Speed,
	)
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-160, hudMargin)
}
