package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"camrig/common"
	"camrig/engine/input"
)

// zoomEpsilon keeps the eye from crossing or landing exactly on the look-at
// center during a zoom, which would make the front vector degenerate.
const zoomEpsilon = 1e-4

// gimbalLimit is the cosine threshold beyond which the depth axis counts as
// parallel to the world-up axis. Orbiting past it would zero the local left
// axis, so the vertical rotation is skipped for that frame.
const gimbalLimit = 1 - 1e-5

// trackballCameraController implements orbit-style camera control around a
// fixed look-at center. Three mutually exclusive modes are selected by
// modifier keys, checked in priority order each frame: pan (shift), zoom
// (ctrl while dragging), and orbit (default).
type trackballCameraController struct {
	cam  Camera
	in   input.Accessor
	drag dragTracker

	worldUp     mgl32.Vec3
	sensitivity float64
	panKey      uint32
	zoomKey     uint32
}

var _ CameraController = &trackballCameraController{}

// NewTrackballController creates a trackball camera controller driving the
// given camera from the given input accessor.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - in: the input accessor to poll (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewTrackballController(cam Camera, in input.Accessor, options ...TrackballOption) CameraController {
	if cam == nil {
		panic("camera: NewTrackballController requires a non-nil Camera")
	}
	if in == nil {
		panic("camera: NewTrackballController requires a non-nil input.Accessor")
	}

	c := &trackballCameraController{
		cam:         cam,
		in:          in,
		drag:        dragTracker{in: in, button: common.MouseButtonMiddle},
		worldUp:     mgl32.Vec3{0, 1, 0},
		sensitivity: 0.01,
		panKey:      common.KeyLeftShift,
		zoomKey:     common.KeyLeftControl,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *trackballCameraController) Camera() Camera {
	return c.cam
}

func (c *trackballCameraController) Update(elapsed float32) bool {
	// Edge detection must run every frame regardless of mode so the drag
	// anchor stays current across mode switches.
	cursorDelta := c.drag.cursorDelta()

	if c.in.IsKeyDown(c.panKey) {
		return c.pan(cursorDelta.X(), cursorDelta.Y())
	}
	if c.in.IsKeyDown(c.zoomKey) && c.drag.dragging() {
		return c.zoom(cursorDelta.X())
	}
	return c.orbit(cursorDelta.X(), cursorDelta.Y())
}

// pan translates eye and center together along the camera's local left/up
// axes. No rotation occurs in this mode.
func (c *trackballCameraController) pan(dx, dy float64) bool {
	truckLeft := float32(c.sensitivity * dx)
	pedestalUp := float32(c.sensitivity * dy)

	if truckLeft == 0 && pedestalUp == 0 {
		return false
	}

	c.cam.SetPose(c.cam.Pose().MoveLocal(truckLeft, pedestalUp, 0))
	return true
}

// zoom moves the eye along the view vector toward or away from the center.
// Zooming in is clamped so the eye stops zoomEpsilon short of the center;
// zooming out is unbounded.
func (c *trackballCameraController) zoom(dx float64) bool {
	offset := float32(c.sensitivity * dx)
	if offset == 0 {
		return false
	}

	pose := c.cam.Pose()
	viewVector := pose.Center.Sub(pose.Eye)
	length := viewVector.Len()
	if length < zoomEpsilon {
		// Already degenerate close to the center; refuse to move further.
		return false
	}

	if offset > 0 {
		offset = math32.Min(offset, length-zoomEpsilon)
	}

	eye := pose.Eye.Add(viewVector.Mul(offset / length))
	c.cam.SetPose(NewPose(eye, pose.Center, c.worldUp))
	return true
}

// orbit rotates the eye around the fixed center: the depth axis is rotated
// about the camera's current local left axis (vertical orbit), then about the
// fixed world-up axis (horizontal orbit). The eye-to-center distance is
// preserved exactly since both steps are pure rotations.
func (c *trackballCameraController) orbit(dx, dy float64) bool {
	longitudeAngle := float32(c.sensitivity * dy)
	latitudeAngle := float32(-c.sensitivity * dx)

	if longitudeAngle == 0 && latitudeAngle == 0 {
		return false
	}

	pose := c.cam.Pose()
	depthAxis := pose.Eye.Sub(pose.Center)
	frame := pose.Frame()

	rotated := mgl32.TransformNormal(depthAxis, mgl32.HomogRotate3D(longitudeAngle, frame.Left))

	// Skip the vertical rotation for this frame if it would bring the depth
	// axis parallel to the world-up axis and collapse the left-axis cross
	// product on the next frame.
	if math32.Abs(rotated.Normalize().Dot(c.worldUp)) > gimbalLimit {
		rotated = depthAxis
	}

	finalDepthAxis := mgl32.TransformNormal(rotated, mgl32.HomogRotate3D(latitudeAngle, c.worldUp))

	c.cam.SetPose(NewPose(pose.Center.Add(finalDepthAxis), pose.Center, c.worldUp))
	return true
}
