package game_object

import (
	"sync"
	"sync/atomic"

	"camrig/common"
)

type gameObject struct {
	mu sync.Mutex

	id      uint64
	enabled atomic.Bool

	position       [3]float32
	rotation       [3]float32
	rotationSpeed  [3]float32
	scale          [3]float32
	boundingRadius float32
}

// GameObject defines the interface for a scene entity carrying a world transform.
// Objects integrate their rotation speed each tick and report whether the
// transform changed, so the scene can skip redraws for static content.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for updates and rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the object's current world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's current rotation angles in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// RotationSpeed returns the object's rotation speed in radians per second.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed values
	RotationSpeed() (rx, ry, rz float32)

	// Scale returns the object's current scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// BoundingRadius returns the radius of the object's bounding sphere,
	// used for frustum visibility tests.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition updates the object's world position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation updates the object's rotation angles in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetRotationSpeed updates the object's rotation speed in radians per second.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation speed values
	SetRotationSpeed(rx, ry, rz float32)

	// SetScale updates the object's scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetBoundingRadius sets the radius of the object's bounding sphere.
	//
	// Parameters:
	//   - radius: the bounding sphere radius
	SetBoundingRadius(radius float32)

	// Advance integrates the object's rotation speed over the elapsed time.
	// Disabled objects are not advanced.
	//
	// Parameters:
	//   - elapsed: elapsed time in seconds since the last tick
	//
	// Returns:
	//   - bool: true if the object's transform changed
	Advance(elapsed float32) bool

	// ModelMatrix writes the object's current model matrix into out.
	// The matrix is column-major and composed as translation * rotation * scale.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ModelMatrix(out []float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to enabled, unit scale, and a bounding radius of 1.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:          [3]float32{1, 1, 1},
		boundingRadius: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) RotationSpeed() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotationSpeed[0], g.rotationSpeed[1], g.rotationSpeed[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) BoundingRadius() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.boundingRadius
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotationSpeed = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetBoundingRadius(radius float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boundingRadius = radius
}

func (g *gameObject) Advance(elapsed float32) bool {
	if !g.enabled.Load() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rotationSpeed[0] == 0 && g.rotationSpeed[1] == 0 && g.rotationSpeed[2] == 0 {
		return false
	}

	g.rotation[0] += g.rotationSpeed[0] * elapsed
	g.rotation[1] += g.rotationSpeed[1] * elapsed
	g.rotation[2] += g.rotationSpeed[2] * elapsed
	return true
}

func (g *gameObject) ModelMatrix(out []float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	common.BuildModelMatrix(out,
		g.position[0], g.position[1], g.position[2],
		g.rotation[0], g.rotation[1], g.rotation[2],
		g.scale[0], g.scale[1], g.scale[2],
	)
}
