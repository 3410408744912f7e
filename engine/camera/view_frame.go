package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ViewFrame is a transient decomposition of a view-to-world transform into an
// orthonormal left/up/front basis plus the eye position. It is owned for the
// duration of one computation and never stored.
type ViewFrame struct {
	Left  mgl32.Vec3
	Up    mgl32.Vec3
	Front mgl32.Vec3
	Eye   mgl32.Vec3
}

// FrameFromViewToWorld decomposes a view-to-world transform with columns
// [right, up, -front, eye] into a ViewFrame. The caller guarantees the input
// is a valid rigid transform with an orthonormal rotation part; this runs on
// the per-frame path and performs no defensive checks.
//
// Parameters:
//   - m: the view-to-world matrix (column-major, OpenGL convention)
//
// Returns:
//   - ViewFrame: the decomposed frame
func FrameFromViewToWorld(m mgl32.Mat4) ViewFrame {
	return ViewFrame{
		Left:  m.Col(0).Vec3().Mul(-1),
		Up:    m.Col(1).Vec3(),
		Front: m.Col(2).Vec3().Mul(-1),
		Eye:   m.Col(3).Vec3(),
	}
}
