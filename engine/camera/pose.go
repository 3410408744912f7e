package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the positional state of a camera: eye position, look-at center, and
// up vector. The up vector starts at the world-up reference and is carried
// through rotations so roll is preserved.
//
// Pose is a value type. Every mutating operation derives a brand new Pose from
// the eye/center/up triple instead of patching basis vectors in place, so the
// orthonormal basis is recomputed from first principles on every update and
// floating-point drift cannot accumulate.
type Pose struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// NewPose creates a Pose from an eye position, look-at center, and up vector.
//
// Parameters:
//   - eye: world-space camera position
//   - center: world-space look-at point
//   - up: up vector (typically the world-up axis)
//
// Returns:
//   - Pose: the constructed pose
func NewPose(eye, center, up mgl32.Vec3) Pose {
	return Pose{Eye: eye, Center: center, Up: up}
}

// Front returns the unit view direction, normalize(Center - Eye).
//
// Returns:
//   - mgl32.Vec3: the unit front vector
func (p Pose) Front() mgl32.Vec3 {
	return p.Center.Sub(p.Eye).Normalize()
}

// ViewMatrix returns the world-to-view transform for this pose.
// The lookAt construction re-orthonormalizes the basis, so a slightly
// off-orthogonal up vector is tolerated.
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func (p Pose) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Eye, p.Center, p.Up)
}

// ViewToWorldMatrix returns the inverse of the view matrix: a rigid transform
// with columns [right, up, -front, eye] (OpenGL convention, camera looks down
// its local -Z).
//
// Returns:
//   - mgl32.Mat4: the view-to-world matrix (column-major)
func (p Pose) ViewToWorldMatrix() mgl32.Mat4 {
	return p.ViewMatrix().Inv()
}

// Frame returns the orthonormal view frame (left/up/front basis plus eye)
// decomposed from this pose's view-to-world transform.
//
// Returns:
//   - ViewFrame: the decomposed frame
func (p Pose) Frame() ViewFrame {
	return FrameFromViewToWorld(p.ViewToWorldMatrix())
}

// MoveLocal translates both eye and center along the camera's own axes,
// preserving the look direction.
//
// Parameters:
//   - truckLeft: signed distance along the local left axis
//   - pedestalUp: signed distance along the local up axis
//   - dollyIn: signed distance along the local front axis
//
// Returns:
//   - Pose: the translated pose
func (p Pose) MoveLocal(truckLeft, pedestalUp, dollyIn float32) Pose {
	f := p.Frame()
	t := f.Left.Mul(truckLeft).
		Add(f.Up.Mul(pedestalUp)).
		Add(f.Front.Mul(dollyIn))
	return Pose{Eye: p.Eye.Add(t), Center: p.Center.Add(t), Up: p.Up}
}

// RotateLocal rotates the camera's basis about its own axes: roll about the
// local front axis, tilt about the local left axis, yaw about the local up
// axis. Rotations are composed as transform matrices rather than ad-hoc
// trigonometry so the basis stays orthonormal.
//
// Parameters:
//   - rollRight: roll angle in radians about the front axis
//   - tiltDown: tilt angle in radians about the left axis
//   - yaw: yaw angle in radians about the up axis
//
// Returns:
//   - Pose: the rotated pose (eye unchanged)
func (p Pose) RotateLocal(rollRight, tiltDown, yaw float32) Pose {
	f := p.Frame()
	r := mgl32.HomogRotate3D(rollRight, f.Front).
		Mul4(mgl32.HomogRotate3D(tiltDown, f.Left)).
		Mul4(mgl32.HomogRotate3D(yaw, f.Up))
	return p.reorient(r, f)
}

// RotateWorld rotates the camera's orientation about a fixed world axis,
// independent of the camera's current tilt or roll. This is what keeps a
// horizontal pan intuitive even when the camera is rolled.
//
// Parameters:
//   - angle: rotation angle in radians
//   - axis: fixed world-space rotation axis (unit length)
//
// Returns:
//   - Pose: the rotated pose (eye unchanged)
func (p Pose) RotateWorld(angle float32, axis mgl32.Vec3) Pose {
	f := p.Frame()
	return p.reorient(mgl32.HomogRotate3D(angle, axis), f)
}

// reorient applies a rotation to the pose's front and up directions and
// rebuilds the pose around the unchanged eye, keeping the eye-to-center
// distance intact.
func (p Pose) reorient(r mgl32.Mat4, f ViewFrame) Pose {
	front := mgl32.TransformNormal(f.Front, r)
	up := mgl32.TransformNormal(f.Up, r)
	dist := p.Center.Sub(p.Eye).Len()
	return Pose{Eye: p.Eye, Center: p.Eye.Add(front.Mul(dist)), Up: up}
}
