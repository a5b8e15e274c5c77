package components

import (
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RigidbodyData is a point-mass body moved by velocity changes.
type RigidbodyData struct {
	Velocity   mgl64.Vec3
	Drag       float64
	UseGravity bool
}

var Rigidbody = donburi.NewComponentType[RigidbodyData]()

// ApplyImpulse adds dir*magnitude to the velocity, independent of mass.
func (rb *RigidbodyData) ApplyImpulse(dir mgl64.Vec3, magnitude float64) {
	rb.Velocity = rb.Velocity.Add(dir.Mul(magnitude))
}

func (rb *RigidbodyData) SetVelocity(v mgl64.Vec3) {
	rb.Velocity = v
}

// bodyHandle resolves the rigidbody through its entry on every call so the
// controller never holds a pointer into component storage.
type bodyHandle struct {
	entry *donburi.Entry
}

func (b bodyHandle) ApplyImpulse(dir mgl64.Vec3, magnitude float64) {
	Rigidbody.Get(b.entry).ApplyImpulse(dir, magnitude)
}

func (b bodyHandle) SetVelocity(v mgl64.Vec3) {
	Rigidbody.Get(b.entry).SetVelocity(v)
}

// BodyOf returns the entry's rigidbody as a locomotion.Body, or nil if the
// entry has none.
func BodyOf(entry *donburi.Entry) locomotion.Body {
	if !entry.HasComponent(Rigidbody) {
		return nil
	}
	return bodyHandle{entry: entry}
}
