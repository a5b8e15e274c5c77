package systems

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics damps and integrates every rigidbody. Bodies with a
// locomotion footprint are moved through the collision space.
// Must run AFTER UpdateController.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedDeltaTime

	components.Rigidbody.Each(ecs.World, func(e *donburi.Entry) {
		rb := components.Rigidbody.Get(e)
		stepBody(rb, dt)

		if !e.HasComponent(components.Locomotion) {
			return
		}
		moveLocomotion(rb, components.Locomotion.Get(e), dt)
	})
}

// stepBody applies drag and gravity to the velocity.
func stepBody(rb *components.RigidbodyData, dt float64) {
	rb.Velocity = gamemath.ApplyDrag(rb.Velocity, rb.Drag, dt)
	if rb.UseGravity {
		rb.Velocity[1] -= cfg.Physics.Gravity * dt
		rb.Velocity[1] = gamemath.ClampSpeed(rb.Velocity[1], cfg.Physics.MaxFallSpeed)
	}
	for i := range rb.Velocity {
		rb.Velocity[i] = gamemath.SnapToZero(rb.Velocity[i], cfg.Physics.RestEpsilon)
	}
}

// moveLocomotion moves the footprint by velocity*dt, one floor axis at a
// time. Hitting a wall slides up to contact and kills velocity on that axis.
func moveLocomotion(rb *components.RigidbodyData, loco *components.LocomotionData, dt float64) {
	obj := loco.Object
	if obj != nil {
		scale := cfg.Physics.SpaceScale
		if dx := rb.Velocity.X() * dt * scale; dx != 0 {
			moved, blocked := resolveAxis(obj, dx, 0)
			obj.X += moved
			if blocked {
				rb.Velocity[0] = 0
			}
		}
		if dz := rb.Velocity.Z() * dt * scale; dz != 0 {
			moved, blocked := resolveAxis(obj, 0, dz)
			obj.Y += moved
			if blocked {
				rb.Velocity[2] = 0
			}
		}
		obj.Update()
	}

	loco.Elevation += rb.Velocity.Y() * dt
	if loco.Elevation <= cfg.Physics.FloorY {
		loco.Elevation = cfg.Physics.FloorY
		if rb.Velocity.Y() < 0 {
			rb.Velocity[1] = 0
		}
		loco.Grounded = true
	} else {
		loco.Grounded = false
	}
}

// resolveAxis returns how far obj can travel along one axis and whether a
// solid stopped it. Exactly one of dx, dz is non-zero.
func resolveAxis(obj *resolv.Object, dx, dz float64) (float64, bool) {
	want := dx + dz
	check := obj.Check(dx, dz, tags.ResolvSolid)
	if check == nil {
		return want, false
	}
	walls := check.ObjectsByTags(tags.ResolvSolid)
	if len(walls) == 0 {
		return want, false
	}
	contact := check.ContactWithObject(walls[0])
	if dx != 0 {
		return contact.X(), true
	}
	return contact.Y(), true
}
