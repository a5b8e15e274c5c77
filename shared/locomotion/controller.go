package locomotion

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrMissingLocomotion = errors.New("locomotion: no locomotion capability on controller entity")
	ErrMissingBody       = errors.New("locomotion: physics body not assigned")
	ErrMissingAnalog     = errors.New("locomotion: analog input source not assigned")
	ErrMissingCursor     = errors.New("locomotion: cursor not assigned")
)

// World axes used to compose the movement direction.
var (
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Body is the physics body a controller pushes around.
type Body interface {
	// ApplyImpulse changes velocity by dir*magnitude, ignoring mass.
	ApplyImpulse(dir mgl64.Vec3, magnitude float64)
	SetVelocity(v mgl64.Vec3)
}

// Analog is a two-axis input source with normalized readings.
type Analog interface {
	Vertical() float64
	Horizontal() float64
}

// Cursor owns the host's pointer lock and visibility.
type Cursor interface {
	// Lock captures and hides the pointer.
	Lock()
	// Unlock frees and shows the pointer.
	Unlock()
}

// Locomotion is the character-vs-terrain capability that must live on the
// same entity as the controller.
type Locomotion interface {
	Position() mgl64.Vec3
}

// Camera receives pitch updates when mouse look is enabled.
type Camera interface {
	SetPitch(deg float64)
}

// Deps are the collaborators assigned to a controller by its host.
// Camera is optional.
type Deps struct {
	Locomotion Locomotion
	Body       Body
	Analog     Analog
	Cursor     Cursor
	Camera     Camera
}

// Frame carries one tick's worth of edge-triggered input.
type Frame struct {
	Cancel        bool // escape went down this frame
	Primary       bool // primary button went down this frame
	PointerOverUI bool
	LookX, LookY  float64 // scaled pointer delta
	FixedDelta    float64
}

// Controller drives a body from analog input and toggles cursor capture.
type Controller struct {
	settings Settings
	canMove  bool

	rotationX float64
	yaw       float64
	direction mgl64.Vec3
	locked    bool

	deps Deps
}

func NewController(s Settings, deps Deps) *Controller {
	return &Controller{
		settings: s,
		canMove:  true,
		deps:     deps,
	}
}

// Start checks the controller's collaborators and captures the cursor.
func (c *Controller) Start() error {
	switch {
	case c.deps.Locomotion == nil:
		return ErrMissingLocomotion
	case c.deps.Body == nil:
		return ErrMissingBody
	case c.deps.Analog == nil:
		return ErrMissingAnalog
	case c.deps.Cursor == nil:
		return ErrMissingCursor
	}
	c.lockCursor()
	return nil
}

// Update runs one frame: cursor locking, then movement, then look.
func (c *Controller) Update(f Frame) {
	c.HandleCursorLocking(f)
	c.Move(f.FixedDelta)
	if c.settings.LookEnabled {
		c.Rotate(f)
	}
}

// HandleCursorLocking frees the cursor on cancel and recaptures it on a
// primary click outside the UI. Both checks run every frame, cancel first.
func (c *Controller) HandleCursorLocking(f Frame) {
	if f.Cancel {
		c.unlockCursor()
	}
	if f.Primary && !f.PointerOverUI {
		c.lockCursor()
	}
}

func (c *Controller) lockCursor() {
	c.deps.Cursor.Lock()
	c.locked = true
}

func (c *Controller) unlockCursor() {
	c.deps.Cursor.Unlock()
	c.locked = false
}

// Move applies an impulse along the stick direction, or stops the body dead
// when the stick is centered.
func (c *Controller) Move(fixedDelta float64) {
	forward, right := c.basis()
	dir := forward.Mul(c.deps.Analog.Vertical()).Add(right.Mul(c.deps.Analog.Horizontal()))
	c.direction = dir

	if dir.Len() > 0 {
		c.deps.Body.ApplyImpulse(dir.Normalize(), c.settings.Speed*fixedDelta)
		return
	}
	c.deps.Body.SetVelocity(mgl64.Vec3{})
}

// Rotate turns the player by the pointer delta while the cursor is captured.
// Pitch is clamped to the look limit and pushed to the camera.
func (c *Controller) Rotate(f Frame) {
	if !c.locked {
		return
	}
	limit := c.settings.LookXLimit
	c.rotationX -= f.LookY * c.settings.LookSpeed
	c.rotationX = math.Max(-limit, math.Min(limit, c.rotationX))

	c.yaw = math.Mod(c.yaw+f.LookX*c.settings.LookSpeed, 360)
	if c.yaw < 0 {
		c.yaw += 360
	}

	if c.deps.Camera != nil {
		c.deps.Camera.SetPitch(c.rotationX)
	}
}

// basis returns the forward and right axes. They follow yaw only when mouse
// look is enabled.
func (c *Controller) basis() (forward, right mgl64.Vec3) {
	if !c.settings.LookEnabled || c.yaw == 0 {
		return Forward, Right
	}
	rad := mgl64.DegToRad(c.yaw)
	sin, cos := math.Sincos(rad)
	forward = mgl64.Vec3{sin, 0, cos}
	right = mgl64.Vec3{cos, 0, -sin}
	return forward, right
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings replaces the tunables. Values are used as given.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

func (c *Controller) SetSpeed(speed float64) {
	c.settings.Speed = speed
}

func (c *Controller) CanMove() bool {
	return c.canMove
}

func (c *Controller) SetCanMove(canMove bool) {
	c.canMove = canMove
}

// CursorLocked reports the cursor state last set by this controller.
func (c *Controller) CursorLocked() bool {
	return c.locked
}

// RotationX returns the accumulated pitch in degrees.
func (c *Controller) RotationX() float64 {
	return c.rotationX
}

// Yaw returns the heading in degrees, in [0, 360).
func (c *Controller) Yaw() float64 {
	return c.yaw
}

// Direction returns the unnormalized direction composed on the last Move.
func (c *Controller) Direction() mgl64.Vec3 {
	return c.direction
}

// Position returns the position reported by the locomotion capability.
func (c *Controller) Position() mgl64.Vec3 {
	if c.deps.Locomotion == nil {
		return mgl64.Vec3{}
	}
	return c.deps.Locomotion.Position()
}
