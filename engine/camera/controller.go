package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"camrig/engine/input"
)

// CameraController translates per-frame input state into incremental updates
// of a Camera's pose. Update is called once per frame by the host loop.
type CameraController interface {
	// Update reads the controller's input accessor, computes this frame's
	// deltas, and mutates the camera if any delta is non-zero. Frames with no
	// input leave the camera untouched so the return value can drive redraw
	// scheduling.
	//
	// Parameters:
	//   - elapsed: seconds since the previous frame
	//
	// Returns:
	//   - bool: true if the camera's pose changed this frame
	Update(elapsed float32) bool

	// Camera returns the camera this controller drives.
	//
	// Returns:
	//   - Camera: the attached camera
	Camera() Camera
}

// dragState is the cursor-drag state machine shared by both controllers.
type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// dragTracker performs press/release edge detection on a single mouse button
// and produces frame-to-frame cursor deltas while a drag is active. The
// anchor is only meaningful in the dragActive state.
//
// Only one controller instance may drive edge detection on a given hardware
// button at a time; two trackers on the same button would double-consume the
// press edge.
type dragTracker struct {
	in     input.Accessor
	button uint32

	state  dragState
	anchor mgl64.Vec2
}

// cursorDelta advances the edge detection state machine and returns the
// cursor displacement since the previous frame. On the press edge the current
// cursor position becomes the drag anchor, so the first frame of a drag
// always reports a zero delta. Outside a drag the delta is zero.
func (d *dragTracker) cursorDelta() mgl64.Vec2 {
	pressed := d.in.IsButtonDown(d.button)

	switch {
	case pressed && d.state == dragIdle:
		d.state = dragActive
		x, y := d.in.CursorPosition()
		d.anchor = mgl64.Vec2{x, y}
		return mgl64.Vec2{}
	case !pressed && d.state == dragActive:
		d.state = dragIdle
		return mgl64.Vec2{}
	case d.state == dragActive:
		x, y := d.in.CursorPosition()
		cursor := mgl64.Vec2{x, y}
		delta := cursor.Sub(d.anchor)
		d.anchor = cursor
		return delta
	default:
		return mgl64.Vec2{}
	}
}

// dragging reports whether a drag is currently active.
func (d *dragTracker) dragging() bool {
	return d.state == dragActive
}
