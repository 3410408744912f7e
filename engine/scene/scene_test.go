package scene

import (
	"testing"

	"camrig/engine/camera"
	"camrig/engine/game_object"
)

// fakeController is a scriptable camera.CameraController for scene tests.
type fakeController struct {
	cam     camera.Camera
	changed bool
	calls   int
}

func (f *fakeController) Update(elapsed float32) bool {
	f.calls++
	return f.changed
}

func (f *fakeController) Camera() camera.Camera {
	return f.cam
}

func newTestScene(options ...SceneBuilderOption) Scene {
	return NewScene("test", camera.NewCamera(), options...)
}

func TestNewSceneRequiresCamera(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewScene did not panic on a nil camera")
		}
	}()
	NewScene("test", nil)
}

func TestSceneRegistry(t *testing.T) {
	s := newTestScene(WithUpdateWorkers(2))

	first := s.Add(game_object.NewGameObject())
	second := s.Add(game_object.NewGameObject())
	if first != 1 || second != 2 {
		t.Fatalf("assigned IDs %d and %d, want 1 and 2", first, second)
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	if s.Get(first) == nil {
		t.Fatal("Get returned nil for a registered object")
	}

	s.Remove(first)
	if s.Get(first) != nil {
		t.Fatal("Get returned a removed object")
	}
	if s.Count() != 1 {
		t.Fatalf("Count after Remove = %d, want 1", s.Count())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("Count after Clear = %d, want 0", s.Count())
	}
}

func TestSceneAddKeepsExplicitID(t *testing.T) {
	s := newTestScene(WithUpdateWorkers(2))

	id := s.Add(game_object.NewGameObject(game_object.WithID(99)))
	if id != 99 {
		t.Fatalf("Add reassigned an explicit ID to %d", id)
	}
	if s.Get(99) == nil {
		t.Fatal("object not registered under its explicit ID")
	}
}

func TestSceneUpdateStaticSceneReportsNoChange(t *testing.T) {
	s := newTestScene(WithUpdateWorkers(2))
	s.Add(game_object.NewGameObject(game_object.WithPosition(1, 0, 0)))

	if s.Update(0.016) {
		t.Fatal("Update reported a change for a static scene")
	}
}

func TestSceneUpdateAdvancesSpinningObjects(t *testing.T) {
	s := newTestScene(WithUpdateWorkers(2))
	id := s.Add(game_object.NewGameObject(game_object.WithRotationSpeed(0, 1, 0)))

	if !s.Update(0.5) {
		t.Fatal("Update did not report a change for a spinning object")
	}

	_, ry, _ := s.Get(id).Rotation()
	if ry != 0.5 {
		t.Fatalf("rotation.y = %v, want 0.5", ry)
	}
}

func TestSceneUpdateSkipsDisabledObjects(t *testing.T) {
	s := newTestScene(WithUpdateWorkers(2))
	obj := game_object.NewGameObject(
		game_object.WithRotationSpeed(0, 1, 0),
		game_object.WithEnabled(false),
	)
	id := s.Add(obj)

	if s.Update(1) {
		t.Fatal("Update reported a change with only a disabled object")
	}
	_, ry, _ := s.Get(id).Rotation()
	if ry != 0 {
		t.Fatalf("disabled object advanced to rotation.y = %v", ry)
	}
}

func TestSceneUpdateRunsControllerFirst(t *testing.T) {
	cam := camera.NewCamera()
	ctrl := &fakeController{cam: cam, changed: true}
	s := NewScene("test", cam, WithController(ctrl), WithUpdateWorkers(2))

	if !s.Update(0.016) {
		t.Fatal("Update did not propagate the controller's change report")
	}
	if ctrl.calls != 1 {
		t.Fatalf("controller Update called %d times, want 1", ctrl.calls)
	}
}

func TestSceneControllerSwap(t *testing.T) {
	cam := camera.NewCamera()
	first := &fakeController{cam: cam}
	second := &fakeController{cam: cam, changed: true}
	s := NewScene("test", cam, WithController(first), WithUpdateWorkers(2))

	s.Update(0.016)
	s.SetController(second)
	if !s.Update(0.016) {
		t.Fatal("swapped-in controller's change report was lost")
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("controller calls = %d and %d, want 1 and 1", first.calls, second.calls)
	}
}

func TestSceneDetachedControllerIsSkipped(t *testing.T) {
	cam := camera.NewCamera()
	ctrl := &fakeController{cam: cam, changed: true}
	s := NewScene("test", cam, WithController(ctrl), WithUpdateWorkers(2))

	s.SetController(nil)
	if s.Update(0.016) {
		t.Fatal("Update reported a change with no controller and no objects")
	}
	if ctrl.calls != 0 {
		t.Fatal("detached controller was still updated")
	}
}

func TestSceneVisibleCount(t *testing.T) {
	// Default camera: eye at (0, 0, 5) looking at the origin.
	s := newTestScene(WithUpdateWorkers(2))

	s.Add(game_object.NewGameObject())                                   // at the origin, in view
	s.Add(game_object.NewGameObject(game_object.WithPosition(0, 0, 50))) // behind the eye
	s.Add(game_object.NewGameObject(
		game_object.WithPosition(0, 0, -1),
		game_object.WithEnabled(false),
	)) // in view but disabled

	if got := s.VisibleCount(); got != 1 {
		t.Fatalf("VisibleCount = %d, want 1", got)
	}
}
