package locomotion

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type impulse struct {
	dir       mgl64.Vec3
	magnitude float64
}

// recordingBody integrates calls the way a rigid body would and remembers them.
type recordingBody struct {
	velocity mgl64.Vec3
	impulses []impulse
	sets     int
}

func (b *recordingBody) ApplyImpulse(dir mgl64.Vec3, magnitude float64) {
	b.impulses = append(b.impulses, impulse{dir: dir, magnitude: magnitude})
	b.velocity = b.velocity.Add(dir.Mul(magnitude))
}

func (b *recordingBody) SetVelocity(v mgl64.Vec3) {
	b.sets++
	b.velocity = v
}

type stick struct {
	v, h float64
}

func (s *stick) Vertical() float64   { return s.v }
func (s *stick) Horizontal() float64 { return s.h }

type fakeCursor struct {
	locked  bool
	visible bool
	calls   []string
}

func (c *fakeCursor) Lock() {
	c.locked, c.visible = true, false
	c.calls = append(c.calls, "lock")
}

func (c *fakeCursor) Unlock() {
	c.locked, c.visible = false, true
	c.calls = append(c.calls, "unlock")
}

type fixedLocomotion struct {
	pos mgl64.Vec3
}

func (l fixedLocomotion) Position() mgl64.Vec3 { return l.pos }

type pitchCamera struct {
	pitch float64
	calls int
}

func (c *pitchCamera) SetPitch(deg float64) {
	c.pitch = deg
	c.calls++
}

type rig struct {
	ctrl   *Controller
	body   *recordingBody
	stick  *stick
	cursor *fakeCursor
	camera *pitchCamera
}

func newRig(t *testing.T, s Settings) *rig {
	t.Helper()
	r := &rig{
		body:   &recordingBody{},
		stick:  &stick{},
		cursor: &fakeCursor{visible: true},
		camera: &pitchCamera{},
	}
	r.ctrl = NewController(s, Deps{
		Locomotion: fixedLocomotion{},
		Body:       r.body,
		Analog:     r.stick,
		Cursor:     r.cursor,
		Camera:     r.camera,
	})
	if err := r.ctrl.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return r
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// approxVec compares each axis with an absolute tolerance. mgl64's
// ApproxEqualThreshold is relative and too strict next to zero.
func approxVec(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s = %v, want %v (tol=%g)", field, got, want, tol)
		}
	}
}

func TestStart_LocksCursor(t *testing.T) {
	r := newRig(t, DefaultSettings())
	if !r.cursor.locked || r.cursor.visible {
		t.Fatalf("cursor after Start = (locked=%v, visible=%v), want (true, false)", r.cursor.locked, r.cursor.visible)
	}
	if !r.ctrl.CursorLocked() {
		t.Fatalf("CursorLocked() = false after Start")
	}
}

func TestStart_MissingDeps(t *testing.T) {
	full := Deps{
		Locomotion: fixedLocomotion{},
		Body:       &recordingBody{},
		Analog:     &stick{},
		Cursor:     &fakeCursor{},
	}
	tests := []struct {
		name   string
		mutate func(d *Deps)
		want   error
	}{
		{"no locomotion", func(d *Deps) { d.Locomotion = nil }, ErrMissingLocomotion},
		{"no body", func(d *Deps) { d.Body = nil }, ErrMissingBody},
		{"no analog", func(d *Deps) { d.Analog = nil }, ErrMissingAnalog},
		{"no cursor", func(d *Deps) { d.Cursor = nil }, ErrMissingCursor},
		{"camera optional", func(d *Deps) { d.Camera = nil }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := full
			tt.mutate(&d)
			err := NewController(DefaultSettings(), d).Start()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Start() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHandleCursorLocking(t *testing.T) {
	tests := []struct {
		name        string
		startLocked bool
		frame       Frame
		wantLocked  bool
		wantVisible bool
	}{
		{"escape unlocks", true, Frame{Cancel: true}, false, true},
		{"escape while unlocked stays unlocked", false, Frame{Cancel: true}, false, true},
		{"click outside ui locks", false, Frame{Primary: true}, true, false},
		{"click outside ui while locked stays locked", true, Frame{Primary: true}, true, false},
		{"click over ui ignored while unlocked", false, Frame{Primary: true, PointerOverUI: true}, false, true},
		{"click over ui ignored while locked", true, Frame{Primary: true, PointerOverUI: true}, true, false},
		{"escape and click same frame ends locked", true, Frame{Cancel: true, Primary: true}, true, false},
		{"escape and click over ui ends unlocked", true, Frame{Cancel: true, Primary: true, PointerOverUI: true}, false, true},
		{"no edges keeps state", false, Frame{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, DefaultSettings())
			if !tt.startLocked {
				r.ctrl.HandleCursorLocking(Frame{Cancel: true})
			}
			r.ctrl.HandleCursorLocking(tt.frame)
			if r.cursor.locked != tt.wantLocked || r.cursor.visible != tt.wantVisible {
				t.Fatalf("cursor = (locked=%v, visible=%v), want (%v, %v)",
					r.cursor.locked, r.cursor.visible, tt.wantLocked, tt.wantVisible)
			}
			if r.ctrl.CursorLocked() != tt.wantLocked {
				t.Fatalf("CursorLocked() = %v, want %v", r.ctrl.CursorLocked(), tt.wantLocked)
			}
		})
	}
}

func TestHandleCursorLocking_EscapeBeforeClick(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.cursor.calls = nil

	r.ctrl.HandleCursorLocking(Frame{Cancel: true, Primary: true})

	if len(r.cursor.calls) != 2 || r.cursor.calls[0] != "unlock" || r.cursor.calls[1] != "lock" {
		t.Fatalf("cursor calls = %v, want [unlock lock]", r.cursor.calls)
	}
}

func TestMove_NeutralStickStopsBody(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.body.velocity = mgl64.Vec3{3, -1, 4}

	r.ctrl.Move(0.02)

	if r.body.velocity != (mgl64.Vec3{}) {
		t.Fatalf("velocity = %v, want zero", r.body.velocity)
	}
	if len(r.body.impulses) != 0 {
		t.Fatalf("impulses = %d, want 0", len(r.body.impulses))
	}
}

func TestMove_NeutralIsIdempotent(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.body.velocity = mgl64.Vec3{1, 0, 1}

	for i := 0; i < 2; i++ {
		r.ctrl.Update(Frame{FixedDelta: 0.02})
		if r.body.velocity != (mgl64.Vec3{}) {
			t.Fatalf("update %d: velocity = %v, want zero", i, r.body.velocity)
		}
	}
	if r.body.sets != 2 {
		t.Fatalf("SetVelocity calls = %d, want 2", r.body.sets)
	}
}

func TestMove_ForwardImpulse(t *testing.T) {
	s := DefaultSettings()
	s.Speed = 10
	r := newRig(t, s)
	r.stick.v = 1

	r.ctrl.Move(0.02)

	if len(r.body.impulses) != 1 {
		t.Fatalf("impulses = %d, want 1", len(r.body.impulses))
	}
	got := r.body.impulses[0]
	if got.dir != Forward {
		t.Fatalf("impulse dir = %v, want %v", got.dir, Forward)
	}
	approxEqual(t, got.magnitude, 10*0.02, 1e-12, "impulse magnitude")
	approxEqual(t, r.body.velocity.Len(), 0.2, 1e-12, "velocity length")
}

func TestMove_DirectionIsNormalized(t *testing.T) {
	tests := []struct {
		name    string
		v, h    float64
		wantDir mgl64.Vec3
	}{
		{"right", 0, 1, Right},
		{"back", -1, 0, Forward.Mul(-1)},
		{"diagonal", 1, 1, mgl64.Vec3{1, 0, 1}.Normalize()},
		{"partial deflection gets full speed", 0.1, 0, Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.Speed = 5
			r := newRig(t, s)
			r.stick.v, r.stick.h = tt.v, tt.h

			r.ctrl.Move(0.1)

			got := r.body.impulses[0]
			approxVec(t, got.dir, tt.wantDir, 1e-9, "impulse dir")
			approxEqual(t, got.magnitude, 0.5, 1e-12, "impulse magnitude")
		})
	}
}

func TestMove_ImpulsesAccumulate(t *testing.T) {
	s := DefaultSettings()
	s.Speed = 1
	r := newRig(t, s)
	r.stick.h = 1

	r.ctrl.Move(0.5)
	r.ctrl.Move(0.5)

	approxEqual(t, r.body.velocity.X(), 1.0, 1e-12, "velocity.x")
}

func TestUpdate_NeutralOverridesEarlierVelocity(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.body.SetVelocity(mgl64.Vec3{0, 0, 9})

	r.ctrl.Update(Frame{FixedDelta: 1.0 / 60})

	if r.body.velocity != (mgl64.Vec3{}) {
		t.Fatalf("velocity = %v, want zero", r.body.velocity)
	}
}

func TestUpdate_LookDisabledLeavesRotationInert(t *testing.T) {
	r := newRig(t, DefaultSettings())
	r.stick.v = 1

	r.ctrl.Update(Frame{LookX: 30, LookY: -20, FixedDelta: 0.02})

	if r.ctrl.RotationX() != 0 || r.ctrl.Yaw() != 0 {
		t.Fatalf("rotation = (%v, %v), want (0, 0)", r.ctrl.RotationX(), r.ctrl.Yaw())
	}
	if r.camera.calls != 0 {
		t.Fatalf("camera SetPitch calls = %d, want 0", r.camera.calls)
	}
	approxVec(t, r.body.impulses[0].dir, Forward, 1e-9, "impulse dir")
}

func TestUpdate_LookEnabledClampsPitchAndTurnsBasis(t *testing.T) {
	s := DefaultSettings()
	s.LookEnabled = true
	s.LookSpeed = 1
	s.LookXLimit = 45
	r := newRig(t, s)
	r.stick.v = 1

	r.ctrl.Update(Frame{LookX: 90, LookY: -100, FixedDelta: 0.02})

	approxEqual(t, r.ctrl.RotationX(), 45, 1e-12, "rotationX")
	approxEqual(t, r.camera.pitch, 45, 1e-12, "camera pitch")
	approxEqual(t, r.ctrl.Yaw(), 90, 1e-12, "yaw")

	r.ctrl.Update(Frame{FixedDelta: 0.02})
	// cos(90) leaves a tiny Z, hence the absolute comparison
	approxVec(t, r.body.impulses[1].dir, Right, 1e-9, "impulse dir after 90 degree turn")
}

func TestRotate_IgnoredWhileCursorFree(t *testing.T) {
	s := DefaultSettings()
	s.LookEnabled = true
	r := newRig(t, s)

	r.ctrl.Update(Frame{Cancel: true, LookX: 10, LookY: 10})

	if r.ctrl.RotationX() != 0 || r.ctrl.Yaw() != 0 {
		t.Fatalf("rotation = (%v, %v), want (0, 0)", r.ctrl.RotationX(), r.ctrl.Yaw())
	}
}

func TestRotate_YawWraps(t *testing.T) {
	s := DefaultSettings()
	s.LookEnabled = true
	s.LookSpeed = 1
	r := newRig(t, s)

	r.ctrl.Rotate(Frame{LookX: -30})
	approxEqual(t, r.ctrl.Yaw(), 330, 1e-9, "yaw")

	r.ctrl.Rotate(Frame{LookX: 400})
	approxEqual(t, r.ctrl.Yaw(), 10, 1e-9, "yaw")
}

func TestCanMoveIsCarried(t *testing.T) {
	r := newRig(t, DefaultSettings())
	if !r.ctrl.CanMove() {
		t.Fatalf("CanMove() = false, want true by default")
	}
	r.ctrl.SetCanMove(false)
	if r.ctrl.CanMove() {
		t.Fatalf("CanMove() = true after SetCanMove(false)")
	}
}

func TestPosition_FromLocomotion(t *testing.T) {
	want := mgl64.Vec3{1, 2, 3}
	c := NewController(DefaultSettings(), Deps{Locomotion: fixedLocomotion{pos: want}})
	if got := c.Position(); got != want {
		t.Fatalf("Position() = %v, want %v", got, want)
	}
}
