package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
)

// DrawHUD renders the speed readout in the top-left corner and the cursor
// capture hint at the bottom of the screen.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if owner, _, ok := ownerController(ecs); ok && owner.HasComponent(components.Rigidbody) && owner.HasComponent(components.Analog) {
		rb := components.Rigidbody.Get(owner)
		analog := components.Analog.Get(owner)
		y := hudMargin + hudLineHeight
		text.Draw(screen, fmt.Sprintf("speed %.2f u/s", horizontalSpeed(rb)), fonts.Regular.Get(), hudMargin, y, cfg.White)
		text.Draw(screen, fmt.Sprintf("input %s", analog.Device), fonts.Small.Get(), hudMargin, y+hudLineHeight, cfg.White)
	}

	drawHint(ecs, screen)
}

func horizontalSpeed(rb *components.RigidbodyData) float64 {
	v := rb.Velocity
	v[1] = 0
	return v.Len()
}

func drawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)
	if hint.Alpha <= 0 {
		return
	}

	face := hintFace()
	bounds := text.BoundString(face, cfg.Hint.Text)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() - hudMargin*3
	text.Draw(screen, cfg.Hint.Text, face, x, y, hintColor(cfg.Hint.Color, hint.Alpha))
}

func hintFace() font.Face {
	return fonts.Bold.Get()
}

func hintColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return fade(c, alpha)
}
