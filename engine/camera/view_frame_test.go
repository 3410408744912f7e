package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameFromViewToWorldCanonical(t *testing.T) {
	// Identity view-to-world: camera at origin looking down -Z with +Y up.
	f := FrameFromViewToWorld(mgl32.Ident4())

	vec3Near(t, f.Left, mgl32.Vec3{-1, 0, 0}, testTolerance, "Left")
	vec3Near(t, f.Up, mgl32.Vec3{0, 1, 0}, testTolerance, "Up")
	vec3Near(t, f.Front, mgl32.Vec3{0, 0, -1}, testTolerance, "Front")
	vec3Near(t, f.Eye, mgl32.Vec3{0, 0, 0}, testTolerance, "Eye")
}

func TestFrameFromViewToWorldTranslated(t *testing.T) {
	m := mgl32.Translate3D(3, -2, 7)
	f := FrameFromViewToWorld(m)

	vec3Near(t, f.Eye, mgl32.Vec3{3, -2, 7}, testTolerance, "Eye")
	vec3Near(t, f.Front, mgl32.Vec3{0, 0, -1}, testTolerance, "Front")
}

func TestFrameRoundTripThroughPose(t *testing.T) {
	// Decomposing the view-to-world of a pose must recover the pose's own
	// eye and front direction.
	p := NewPose(mgl32.Vec3{1, 4, -2}, mgl32.Vec3{5, 0, 3}, mgl32.Vec3{0, 1, 0})
	f := FrameFromViewToWorld(p.ViewToWorldMatrix())

	vec3Near(t, f.Eye, p.Eye, 1e-4, "Eye")
	vec3Near(t, f.Front, p.Front(), testTolerance, "Front")
}
