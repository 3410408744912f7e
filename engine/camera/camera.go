package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"camrig/common"
)

// cameraImpl is the single Camera implementation. It owns a Pose plus the
// perspective parameters and caches the derived matrices, recomputing them
// whenever the pose or a perspective parameter changes.
type cameraImpl struct {
	mu *sync.Mutex

	pose Pose

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera holds the camera's pose and perspective settings and derives the
// view, projection, and combined matrices. Controllers mutate the camera by
// replacing its Pose wholesale; the camera never patches basis vectors
// incrementally.
type Camera interface {
	// Pose returns the camera's current pose.
	//
	// Returns:
	//   - Pose: the eye/center/up triple
	Pose() Pose

	// SetPose replaces the camera's pose and recomputes matrices.
	//
	// Parameters:
	//   - pose: the new pose
	SetPose(pose Pose)

	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Center returns the world-space look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the center position
	Center() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current world-to-view transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ViewToWorldMatrix returns the inverse of the view matrix, the rigid
	// transform a view-frame decomposition operates on.
	//
	// Returns:
	//   - mgl32.Mat4: the view-to-world matrix (column-major)
	ViewToWorldMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current perspective projection matrix
	// (WebGPU clip space, depth in [0, 1]).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view-projection matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum extracts the six view-frustum planes from the current
	// view-projection matrix, for hosts that cull against the camera.
	//
	// Returns:
	//   - common.Frustum: the extracted frustum with normalized planes
	Frustum() common.Frustum

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings and a
// default pose looking at the origin from five units down the +Z axis.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu: &sync.Mutex{},
		pose: Pose{
			Eye:    mgl32.Vec3{0, 0, 5},
			Center: mgl32.Vec3{0, 0, 0},
			Up:     mgl32.Vec3{0, 1, 0},
		},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

func (c *cameraImpl) SetPose(pose Pose) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose = pose
	c.updateMatrices()
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose.Eye
}

func (c *cameraImpl) Center() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose.Center
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ViewToWorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix.Inv()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.viewProjectionMatrix[:])
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices from the pose and perspective parameters.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.pose.ViewMatrix()
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
