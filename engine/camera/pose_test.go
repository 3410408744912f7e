package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const testTolerance = 1e-5

func floatNear(t *testing.T, got, want, tol float32, name string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
	}
}

func vec3Near(t *testing.T, got, want mgl32.Vec3, tol float32, name string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math32.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
			return
		}
	}
}

func defaultTestPose() Pose {
	return NewPose(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

func TestPoseFront(t *testing.T) {
	p := defaultTestPose()
	vec3Near(t, p.Front(), mgl32.Vec3{0, 0, -1}, testTolerance, "Front")
}

func TestPoseFrameAxes(t *testing.T) {
	f := defaultTestPose().Frame()

	vec3Near(t, f.Front, mgl32.Vec3{0, 0, -1}, testTolerance, "Frame.Front")
	vec3Near(t, f.Up, mgl32.Vec3{0, 1, 0}, testTolerance, "Frame.Up")
	vec3Near(t, f.Left, mgl32.Vec3{-1, 0, 0}, testTolerance, "Frame.Left")
	vec3Near(t, f.Eye, mgl32.Vec3{0, 0, 5}, testTolerance, "Frame.Eye")
}

func TestPoseFrameOrthonormal(t *testing.T) {
	// An arbitrary off-axis pose should still decompose to a unit-length,
	// mutually perpendicular basis.
	p := NewPose(mgl32.Vec3{3, 2, -7}, mgl32.Vec3{-1, 0.5, 4}, mgl32.Vec3{0, 1, 0})
	f := p.Frame()

	floatNear(t, f.Front.Len(), 1, testTolerance, "|Front|")
	floatNear(t, f.Up.Len(), 1, testTolerance, "|Up|")
	floatNear(t, f.Left.Len(), 1, testTolerance, "|Left|")
	floatNear(t, f.Front.Dot(f.Up), 0, testTolerance, "Front·Up")
	floatNear(t, f.Front.Dot(f.Left), 0, testTolerance, "Front·Left")
	floatNear(t, f.Up.Dot(f.Left), 0, testTolerance, "Up·Left")
}

func TestPoseMoveLocalDollyIn(t *testing.T) {
	p := defaultTestPose().MoveLocal(0, 0, 1)

	vec3Near(t, p.Eye, mgl32.Vec3{0, 0, 4}, testTolerance, "Eye")
	vec3Near(t, p.Center, mgl32.Vec3{0, 0, -1}, testTolerance, "Center")
	// Look direction is unchanged by translation.
	vec3Near(t, p.Front(), mgl32.Vec3{0, 0, -1}, testTolerance, "Front")
}

func TestPoseMoveLocalPreservesSeparation(t *testing.T) {
	orig := NewPose(mgl32.Vec3{3, 2, -7}, mgl32.Vec3{-1, 0.5, 4}, mgl32.Vec3{0, 1, 0})
	moved := orig.MoveLocal(1.5, -2, 0.75)

	wantSep := orig.Center.Sub(orig.Eye)
	gotSep := moved.Center.Sub(moved.Eye)
	vec3Near(t, gotSep, wantSep, testTolerance, "Center-Eye separation")
}

func TestPoseRotateWorldKeepsEyeAndDistance(t *testing.T) {
	orig := defaultTestPose()
	rotated := orig.RotateWorld(0.3, mgl32.Vec3{0, 1, 0})

	vec3Near(t, rotated.Eye, orig.Eye, testTolerance, "Eye")
	floatNear(t,
		rotated.Center.Sub(rotated.Eye).Len(),
		orig.Center.Sub(orig.Eye).Len(),
		testTolerance, "eye-center distance")

	// Front should have rotated by exactly the requested angle.
	dot := rotated.Front().Dot(orig.Front())
	floatNear(t, dot, math32.Cos(0.3), testTolerance, "front rotation angle")
}

func TestPoseRotateLocalRollPreservesFront(t *testing.T) {
	orig := defaultTestPose()
	rolled := orig.RotateLocal(0.25, 0, 0)

	vec3Near(t, rolled.Front(), orig.Front(), testTolerance, "Front")
	vec3Near(t, rolled.Eye, orig.Eye, testTolerance, "Eye")

	// Up tilts by the roll angle.
	dot := rolled.Up.Normalize().Dot(orig.Up.Normalize())
	floatNear(t, dot, math32.Cos(0.25), testTolerance, "up rotation angle")
}

func TestPoseRollSurvivesLaterRotation(t *testing.T) {
	// Roll, then tilt. The roll must not be lost when the next rotation
	// reconstructs the pose.
	p := defaultTestPose().RotateLocal(0.25, 0, 0).RotateLocal(0, 0.1, 0)

	f := p.Frame()
	// A rolled camera has a left axis tipped out of the horizontal plane.
	if math32.Abs(f.Left.Y()) < 0.1 {
		t.Errorf("roll was lost after subsequent rotation: Left = %v", f.Left)
	}
}

func TestPoseRotateLocalTiltDown(t *testing.T) {
	p := defaultTestPose().RotateLocal(0, 0.1, 0)

	floatNear(t, p.Front().Y(), -math32.Sin(0.1), testTolerance, "Front.Y after tilt down")
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	p := NewPose(mgl32.Vec3{3, 2, -7}, mgl32.Vec3{-1, 0.5, 4}, mgl32.Vec3{0, 1, 0})
	want := mgl32.LookAtV(p.Eye, p.Center, p.Up)
	got := p.ViewMatrix()

	for i := 0; i < 16; i++ {
		if math32.Abs(got[i]-want[i]) > testTolerance {
			t.Fatalf("ViewMatrix[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestViewToWorldRoundTrip(t *testing.T) {
	p := NewPose(mgl32.Vec3{3, 2, -7}, mgl32.Vec3{-1, 0.5, 4}, mgl32.Vec3{0, 1, 0})
	product := p.ViewMatrix().Mul4(p.ViewToWorldMatrix())
	ident := mgl32.Ident4()

	for i := 0; i < 16; i++ {
		if math32.Abs(product[i]-ident[i]) > testTolerance {
			t.Fatalf("view * viewToWorld is not identity at [%d]: %v", i, product[i])
		}
	}
}
