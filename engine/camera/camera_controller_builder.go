package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FirstPersonOption is a functional option for configuring a first-person
// camera controller.
type FirstPersonOption func(*firstPersonCameraController)

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: units per second for dolly/truck/pedestal movement
//
// Returns:
//   - FirstPersonOption: functional option to set the speed
func WithSpeed(speed float32) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.speed = speed
	}
}

// WithLookSensitivity sets the cursor-to-angle gain in radians per pixel of
// cursor travel while dragging.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - FirstPersonOption: functional option to set the look sensitivity
func WithLookSensitivity(sensitivity float64) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.sensitivity = sensitivity
	}
}

// WithRollStep sets the fixed roll increment in radians applied each frame a
// roll key is held. The step is intentionally not time-scaled.
//
// Parameters:
//   - step: radians per frame
//
// Returns:
//   - FirstPersonOption: functional option to set the roll step
func WithRollStep(step float32) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.rollStep = step
	}
}

// WithBindings replaces the controller's key bindings.
//
// Parameters:
//   - bindings: the key binding set to use
//
// Returns:
//   - FirstPersonOption: functional option to set the bindings
func WithBindings(bindings MoveBindings) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.bindings = bindings
	}
}

// WithWorldUp sets the fixed world-up axis used for horizontal panning.
//
// Parameters:
//   - up: the world-up axis (unit length)
//
// Returns:
//   - FirstPersonOption: functional option to set the world-up axis
func WithWorldUp(up mgl32.Vec3) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.worldUp = up
	}
}

// WithDragButton sets the mouse button that activates cursor-drag look.
//
// Parameters:
//   - button: the mouse button index
//
// Returns:
//   - FirstPersonOption: functional option to set the drag button
func WithDragButton(button uint32) FirstPersonOption {
	return func(c *firstPersonCameraController) {
		c.drag.button = button
	}
}

// TrackballOption is a functional option for configuring a trackball camera
// controller.
type TrackballOption func(*trackballCameraController)

// WithTrackballSensitivity sets the cursor gain applied to pan distances,
// zoom offsets, and orbit angles.
//
// Parameters:
//   - sensitivity: gain per pixel of cursor travel
//
// Returns:
//   - TrackballOption: functional option to set the sensitivity
func WithTrackballSensitivity(sensitivity float64) TrackballOption {
	return func(c *trackballCameraController) {
		c.sensitivity = sensitivity
	}
}

// WithTrackballWorldUp sets the fixed world-up axis used for horizontal
// orbiting and for rebuilding the camera pose after zoom and orbit.
//
// Parameters:
//   - up: the world-up axis (unit length)
//
// Returns:
//   - TrackballOption: functional option to set the world-up axis
func WithTrackballWorldUp(up mgl32.Vec3) TrackballOption {
	return func(c *trackballCameraController) {
		c.worldUp = up
	}
}

// WithTrackballDragButton sets the mouse button that activates dragging.
//
// Parameters:
//   - button: the mouse button index
//
// Returns:
//   - TrackballOption: functional option to set the drag button
func WithTrackballDragButton(button uint32) TrackballOption {
	return func(c *trackballCameraController) {
		c.drag.button = button
	}
}

// WithModeKeys sets the modifier keys selecting pan and zoom mode.
//
// Parameters:
//   - panKey: key code that selects pan mode while held
//   - zoomKey: key code that selects zoom mode while held during a drag
//
// Returns:
//   - TrackballOption: functional option to set the mode keys
func WithModeKeys(panKey, zoomKey uint32) TrackballOption {
	return func(c *trackballCameraController) {
		c.panKey = panKey
		c.zoomKey = zoomKey
	}
}
