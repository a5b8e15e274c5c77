package systems

import (
	"image/color"
	"math"

	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps floor coordinates (x right, z forward) to screen pixels with
// forward pointing up the screen.
type view struct {
	camX, camZ   float64
	ppu          float64
	halfW, halfH float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	v := view{
		camX:  camera.Position.X,
		camZ:  camera.Position.Y,
		ppu:   cfg.Camera.PixelsPerUnit,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}
	// Looking up or down tilts the map a little
	v.halfH += camera.Pitch * cfg.Camera.PitchTilt
	return v, true
}

func (v view) point(x, z float64) (float32, float32) {
	return float32((x-v.camX)*v.ppu + v.halfW), float32(v.halfH - (z-v.camZ)*v.ppu)
}

// rect returns the screen rectangle of a floor-aligned box whose near-left
// corner is (x, z).
func (v view) rect(x, z, w, d float64) (sx, sy, sw, sh float32) {
	sx, sy = v.point(x, z+d)
	return sx, sy, float32(w * v.ppu), float32(d * v.ppu)
}

// DrawArena renders the floor, its grid and the walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Level.Get(levelEntry).Arena
	if arena == nil {
		return
	}

	x, y, w, h := v.rect(0, 0, arena.Width, arena.Depth)
	vector.FillRect(screen, x, y, w, h, cfg.Arena.FloorColor, false)

	if step := cfg.Arena.GridStep; step > 0 {
		for gx := step; gx < arena.Width; gx += step {
			x0, y0 := v.point(gx, 0)
			x1, y1 := v.point(gx, arena.Depth)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Arena.GridColor, false)
		}
		for gz := step; gz < arena.Depth; gz += step {
			x0, y0 := v.point(0, gz)
			x1, y1 := v.point(arena.Width, gz)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Arena.GridColor, false)
		}
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y, w, h := v.rect(components.WorldBounds(obj.Object))
		vector.FillRect(screen, x, y, w, h, cfg.Arena.WallColor, false)
	})
}

// DrawPlayer renders each player as a disc with a heading tick.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Locomotion.Get(e).Position()
		player := components.Player.Get(e)

		cx, cy := v.point(pos.X(), pos.Z())
		radius := float32(cfg.Player.Radius * v.ppu)
		vector.FillCircle(screen, cx, cy, radius, cfg.Arena.PlayerColor, true)

		rad := player.Heading * math.Pi / 180
		hx, hy := v.point(pos.X()+math.Sin(rad)*cfg.Player.Radius*1.5, pos.Z()+math.Cos(rad)*cfg.Player.Radius*1.5)
		vector.StrokeLine(screen, cx, cy, hx, hy, 2, cfg.White, true)
	})
}

// DrawJoystick renders the on-screen stick once a touch has been seen.
func DrawJoystick(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	js := components.Joystick.Get(entry)
	if !js.Visible {
		return
	}

	base := cfg.Joystick.BaseColor
	knob := cfg.Joystick.KnobColor
	if !js.Active {
		base = fade(base, 0.5)
		knob = fade(knob, 0.5)
	}

	cx, cy := float32(js.CenterX), float32(js.CenterY)
	vector.FillCircle(screen, cx, cy, float32(cfg.Joystick.Radius), base, true)
	vector.FillCircle(screen, cx+float32(js.KnobX), cy+float32(js.KnobY), float32(cfg.Joystick.KnobRadius), knob, true)
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
