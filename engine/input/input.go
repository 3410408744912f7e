// package input decouples the camera controllers from any specific windowing
// library. Controllers poll an Accessor for button/key/cursor state instead of
// reaching into a process-wide window handle.
package input

import (
	"sync"

	"camrig/engine/window"
)

// Accessor is a pollable, side-effect-free view of the current input device
// state. Implementations must be safe to query at any time; polling only
// reflects hardware state and never consumes events.
type Accessor interface {
	// IsKeyDown reports whether the key with the given code is currently held.
	//
	// Parameters:
	//   - code: the virtual key code (see common key code constants)
	//
	// Returns:
	//   - bool: true while the key is held
	IsKeyDown(code uint32) bool

	// IsButtonDown reports whether the given mouse button is currently held.
	//
	// Parameters:
	//   - button: the mouse button index (see common mouse button constants)
	//
	// Returns:
	//   - bool: true while the button is held
	IsButtonDown(button uint32) bool

	// CursorPosition returns the current absolute cursor position in window
	// coordinates.
	//
	// Returns:
	//   - x, y: the cursor position in pixels
	CursorPosition() (x, y float64)
}

// Tracker is the window-backed Accessor implementation. It subscribes to the
// window's input callbacks and maintains a mutex-guarded snapshot of key,
// button, and cursor state. Callbacks arrive on the window's message loop
// goroutine while controllers poll from the engine tick goroutine, so all
// state access is locked.
type Tracker struct {
	mu sync.Mutex

	keys    map[uint32]bool
	buttons map[uint32]bool
	cursorX float64
	cursorY float64
}

var _ Accessor = &Tracker{}

// NewTracker creates a Tracker subscribed to the given window's input events.
// The tracker takes over the window's key, mouse button, and cursor move
// callbacks; register it before any other callback consumers.
//
// Parameters:
//   - win: the window to track input on (must not be nil)
//
// Returns:
//   - *Tracker: the tracker, already receiving events
func NewTracker(win window.Window) *Tracker {
	if win == nil {
		panic("input: NewTracker requires a non-nil Window")
	}

	t := &Tracker{
		keys:    make(map[uint32]bool),
		buttons: make(map[uint32]bool),
	}
	t.cursorX, t.cursorY = win.CursorPosition()

	win.SetKeyDownCallback(func(code uint32) {
		t.mu.Lock()
		t.keys[code] = true
		t.mu.Unlock()
	})
	win.SetKeyUpCallback(func(code uint32) {
		t.mu.Lock()
		t.keys[code] = false
		t.mu.Unlock()
	})
	win.SetMouseDownCallback(func(button uint32, x, y float64) {
		t.mu.Lock()
		t.buttons[button] = true
		t.cursorX, t.cursorY = x, y
		t.mu.Unlock()
	})
	win.SetMouseUpCallback(func(button uint32, x, y float64) {
		t.mu.Lock()
		t.buttons[button] = false
		t.cursorX, t.cursorY = x, y
		t.mu.Unlock()
	})
	win.SetMouseMoveCallback(func(x, y float64) {
		t.mu.Lock()
		t.cursorX, t.cursorY = x, y
		t.mu.Unlock()
	})

	return t
}

func (t *Tracker) IsKeyDown(code uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.keys[code]
}

func (t *Tracker) IsButtonDown(button uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buttons[button]
}

func (t *Tracker) CursorPosition() (x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursorX, t.cursorY
}
