package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHint fades the "click to capture" hint in while the cursor is free
// and out while it is captured.
func UpdateHint(ecs *ecs.ECS) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)

	show := false
	if _, ctrl, ok := ownerController(ecs); ok {
		show = !ctrl.CursorLocked()
	}

	setHintTarget(hint, show)
	hint.Alpha, _ = hint.Tween.Update(float32(cfg.Physics.FixedDeltaTime))
}

// setHintTarget restarts the fade from the current alpha when the target
// flips. An unchanged target keeps the running tween.
func setHintTarget(hint *components.HintData, show bool) {
	if hint.Tween != nil && hint.Shown == show {
		return
	}
	hint.Shown = show

	target := float32(0)
	if show {
		target = 1
	}
	hint.Tween = gween.New(hint.Alpha, target, cfg.Hint.FadeSeconds, ease.OutQuad)
}
