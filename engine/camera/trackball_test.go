package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"camrig/common"
)

func newTrackballRig(in *fakeInput, options ...TrackballOption) (Camera, CameraController) {
	cam := NewCamera()
	ctrl := NewTrackballController(cam, in, options...)
	return cam, ctrl
}

// beginDrag presses the drag button and runs the press-edge frame so the
// next Update sees a real cursor delta.
func beginDrag(t *testing.T, in *fakeInput, ctrl CameraController) {
	t.Helper()
	in.buttons[common.MouseButtonMiddle] = true
	if ctrl.Update(0.016) {
		t.Fatal("press edge produced a camera change")
	}
}

func TestTrackballNoInputLeavesPoseUntouched(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	before := cam.Pose()

	if ctrl.Update(0.016) {
		t.Fatal("Update reported a change with no input")
	}
	if cam.Pose() != before {
		t.Fatal("pose changed with no input")
	}
}

func TestTrackballCursorWithoutDragIsIgnored(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	before := cam.Pose()

	in.x, in.y = 200, 150
	if ctrl.Update(0.016) {
		t.Fatal("cursor motion without a drag moved the camera")
	}
	if cam.Pose() != before {
		t.Fatal("pose changed without a drag")
	}
}

func TestTrackballOrbitHorizontal(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	beginDrag(t, in, ctrl)

	in.x = 10
	if !ctrl.Update(0.016) {
		t.Fatal("orbit did not report a change")
	}

	// 10 px at the default 0.01 gain rotates the eye -0.1 rad about world up.
	sin, cos := math32.Sin(0.1), math32.Cos(0.1)
	vec3Near(t, cam.Eye(), mgl32.Vec3{-5 * sin, 0, 5 * cos}, testTolerance, "Eye")
	vec3Near(t, cam.Center(), mgl32.Vec3{0, 0, 0}, testTolerance, "Center")
	floatNear(t, cam.Eye().Sub(cam.Center()).Len(), 5, testTolerance, "orbit radius")
}

func TestTrackballOrbitVertical(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	beginDrag(t, in, ctrl)

	in.y = 10
	if !ctrl.Update(0.016) {
		t.Fatal("orbit did not report a change")
	}

	sin, cos := math32.Sin(0.1), math32.Cos(0.1)
	vec3Near(t, cam.Eye(), mgl32.Vec3{0, 5 * sin, 5 * cos}, testTolerance, "Eye")
	vec3Near(t, cam.Center(), mgl32.Vec3{0, 0, 0}, testTolerance, "Center")
	// The pose is rebuilt against world up every frame.
	vec3Near(t, cam.Pose().Up.Normalize(), mgl32.Vec3{0, 1, 0}, testTolerance, "Up")
}

func TestTrackballOrbitPreservesRadius(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	beginDrag(t, in, ctrl)

	for i := 0; i < 20; i++ {
		in.x += float64(3 + i%5)
		in.y += float64(2 - i%7)
		ctrl.Update(0.016)
		floatNear(t, cam.Eye().Sub(cam.Center()).Len(), 5, 1e-4, "orbit radius")
	}
	vec3Near(t, cam.Center(), mgl32.Vec3{0, 0, 0}, testTolerance, "Center")
}

func TestTrackballGimbalGuard(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)

	// Park the eye 0.1 rad short of the world-up pole.
	sin, cos := math32.Sin(0.1), math32.Cos(0.1)
	eye := mgl32.Vec3{0, 5 * cos, 5 * sin}
	cam.SetPose(NewPose(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}))
	beginDrag(t, in, ctrl)

	// A further 0.1 rad vertical orbit would land exactly on the pole, so
	// the vertical rotation must be skipped for this frame.
	in.y = 10
	ctrl.Update(0.016)
	vec3Near(t, cam.Eye(), eye, testTolerance, "Eye")
}

func TestTrackballZoomRequiresDrag(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	before := cam.Pose()

	in.keys[common.KeyLeftControl] = true
	in.x = 100
	if ctrl.Update(0.016) {
		t.Fatal("zoom without a drag moved the camera")
	}
	if cam.Pose() != before {
		t.Fatal("pose changed without a drag")
	}
}

func TestTrackballZoomInClampsShortOfCenter(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	in.keys[common.KeyLeftControl] = true
	beginDrag(t, in, ctrl)

	// 1000 px asks for a 10 unit dolly toward a center only 5 units away.
	in.x = 1000
	if !ctrl.Update(0.016) {
		t.Fatal("zoom did not report a change")
	}

	vec3Near(t, cam.Eye(), mgl32.Vec3{0, 0, zoomEpsilon}, testTolerance, "Eye")
	vec3Near(t, cam.Center(), mgl32.Vec3{0, 0, 0}, testTolerance, "Center")
}

func TestTrackballZoomOutIsUnbounded(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	in.keys[common.KeyLeftControl] = true
	beginDrag(t, in, ctrl)

	in.x = -50
	if !ctrl.Update(0.016) {
		t.Fatal("zoom did not report a change")
	}
	vec3Near(t, cam.Eye(), mgl32.Vec3{0, 0, 5.5}, testTolerance, "Eye")
}

func TestTrackballPanMovesEyeAndCenterTogether(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)
	origFront := cam.Pose().Front()

	in.keys[common.KeyLeftShift] = true
	beginDrag(t, in, ctrl)

	in.x, in.y = 10, 20
	if !ctrl.Update(0.016) {
		t.Fatal("pan did not report a change")
	}

	vec3Near(t, cam.Eye(), mgl32.Vec3{-0.1, 0.2, 5}, testTolerance, "Eye")
	vec3Near(t, cam.Center(), mgl32.Vec3{-0.1, 0.2, 0}, testTolerance, "Center")
	// Pan is a pure translation; the look direction must not rotate.
	vec3Near(t, cam.Pose().Front(), origFront, testTolerance, "Front")
}

func TestTrackballPanTakesPriorityOverZoom(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in)

	in.keys[common.KeyLeftShift] = true
	in.keys[common.KeyLeftControl] = true
	beginDrag(t, in, ctrl)

	in.x = 10
	ctrl.Update(0.016)

	// Pan translates; zoom would have shortened the eye-to-center distance.
	floatNear(t, cam.Eye().Sub(cam.Center()).Len(), 5, testTolerance, "distance")
	floatNear(t, cam.Eye().X(), -0.1, testTolerance, "Eye.X")
}

func TestTrackballCustomSensitivity(t *testing.T) {
	in := newFakeInput()
	cam, ctrl := newTrackballRig(in, WithTrackballSensitivity(0.02))
	beginDrag(t, in, ctrl)

	in.x = 10
	ctrl.Update(0.016)

	sin := math32.Sin(0.2)
	floatNear(t, cam.Eye().X(), -5*sin, testTolerance, "Eye.X")
}
