package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"camrig/common"
	"camrig/engine/input"
)

// MoveBindings maps virtual key codes to the first-person movement controls.
// A zero code disables that control.
type MoveBindings struct {
	DollyIn      uint32
	DollyOut     uint32
	TruckLeft    uint32
	TruckRight   uint32
	PedestalUp   uint32
	PedestalDown uint32
	RollLeft     uint32
	RollRight    uint32
}

// DefaultMoveBindings returns the standard WASD/arrow/QE binding set.
//
// Returns:
//   - MoveBindings: W/S dolly, A/D truck, arrow up/down pedestal, Q/E roll
func DefaultMoveBindings() MoveBindings {
	return MoveBindings{
		DollyIn:      common.KeyW,
		DollyOut:     common.KeyS,
		TruckLeft:    common.KeyA,
		TruckRight:   common.KeyD,
		PedestalUp:   common.KeyUpArrow,
		PedestalDown: common.KeyDownArrow,
		RollLeft:     common.KeyQ,
		RollRight:    common.KeyE,
	}
}

// firstPersonCameraController implements free-fly camera control: held keys
// translate the camera along its own axes, and dragging the middle mouse
// button pans and tilts the view.
type firstPersonCameraController struct {
	cam  Camera
	in   input.Accessor
	drag dragTracker

	worldUp     mgl32.Vec3
	speed       float32
	sensitivity float64
	rollStep    float32
	bindings    MoveBindings
}

var _ CameraController = &firstPersonCameraController{}

// NewFirstPersonController creates a first-person camera controller driving
// the given camera from the given input accessor.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - in: the input accessor to poll (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewFirstPersonController(cam Camera, in input.Accessor, options ...FirstPersonOption) CameraController {
	if cam == nil {
		panic("camera: NewFirstPersonController requires a non-nil Camera")
	}
	if in == nil {
		panic("camera: NewFirstPersonController requires a non-nil input.Accessor")
	}

	c := &firstPersonCameraController{
		cam:         cam,
		in:          in,
		drag:        dragTracker{in: in, button: common.MouseButtonMiddle},
		worldUp:     mgl32.Vec3{0, 1, 0},
		speed:       1.0,
		sensitivity: 0.01,
		rollStep:    0.001,
		bindings:    DefaultMoveBindings(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *firstPersonCameraController) Camera() Camera {
	return c.cam
}

func (c *firstPersonCameraController) Update(elapsed float32) bool {
	cursorDelta := c.drag.cursorDelta()

	var truckLeft, pedestalUp, dollyIn, rollRight float32

	if c.in.IsKeyDown(c.bindings.DollyIn) {
		dollyIn += c.speed * elapsed
	}
	if c.in.IsKeyDown(c.bindings.DollyOut) {
		dollyIn -= c.speed * elapsed
	}
	if c.in.IsKeyDown(c.bindings.TruckLeft) {
		truckLeft += c.speed * elapsed
	}
	if c.in.IsKeyDown(c.bindings.TruckRight) {
		truckLeft -= c.speed * elapsed
	}
	if c.in.IsKeyDown(c.bindings.PedestalUp) {
		pedestalUp += c.speed * elapsed
	}
	if c.in.IsKeyDown(c.bindings.PedestalDown) {
		pedestalUp -= c.speed * elapsed
	}

	// Roll is a fixed step per frame, deliberately not time-scaled: holding
	// the key gives a rate-limited roll regardless of frame timing.
	if c.in.IsKeyDown(c.bindings.RollLeft) {
		rollRight -= c.rollStep
	}
	if c.in.IsKeyDown(c.bindings.RollRight) {
		rollRight += c.rollStep
	}

	// Look angles come straight from the cursor delta, independent of elapsed
	// time. Cursor moving right means pan left is negative.
	panLeft := float32(-c.sensitivity * cursorDelta.X())
	tiltDown := float32(c.sensitivity * cursorDelta.Y())

	if truckLeft == 0 && pedestalUp == 0 && dollyIn == 0 &&
		rollRight == 0 && panLeft == 0 && tiltDown == 0 {
		return false
	}

	// Order matters: translation uses the pre-rotation basis, roll/tilt are
	// applied in camera space, and the world-axis pan comes last so it is not
	// skewed by the tilt just applied.
	pose := c.cam.Pose()
	pose = pose.MoveLocal(truckLeft, pedestalUp, dollyIn)
	pose = pose.RotateLocal(rollRight, tiltDown, 0)
	pose = pose.RotateWorld(panLeft, c.worldUp)
	c.cam.SetPose(pose)

	return true
}
