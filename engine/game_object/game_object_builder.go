package game_object

// GameObjectBuilderOption is a functional option for configuring a gameObject.
// Use the With* functions to create options.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the object's unique identifier.
//
// Parameters:
//   - id: the ID to assign
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithID(id uint64) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.id = id
	}
}

// WithEnabled sets whether the object starts enabled.
//
// Parameters:
//   - enabled: true to enable the object
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithPosition sets the object's initial world position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the object's initial rotation angles in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = [3]float32{rx, ry, rz}
	}
}

// WithRotationSpeed sets the object's rotation speed in radians per second.
//
// Parameters:
//   - rx, ry, rz: rotation speed values
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithRotationSpeed(rx, ry, rz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotationSpeed = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the object's initial scale factors.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = [3]float32{sx, sy, sz}
	}
}

// WithBoundingRadius sets the radius of the object's bounding sphere.
//
// Parameters:
//   - radius: the bounding sphere radius
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithBoundingRadius(radius float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.boundingRadius = radius
	}
}
