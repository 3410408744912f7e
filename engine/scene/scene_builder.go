package scene

import (
	"camrig/engine/camera"
	"camrig/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithController sets the scene's initial camera controller.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithController(ctrl camera.CameraController) SceneBuilderOption {
	return func(s *scene) {
		s.ctrl = ctrl
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj.ID() == 0 {
				obj.SetID(s.nextID)
				s.nextID++
			}
			s.registry[obj.ID()] = obj
		}
	}
}

// WithUpdateWorkers sets the number of worker goroutines used during the parallel
// object update phase of Update. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many objects; lower values reduce
// scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}
