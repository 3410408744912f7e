package scene

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"camrig/engine/camera"
	"camrig/engine/game_object"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Scene manages a registry of GameObjects together with a Camera and its active
// CameraController. Each tick the controller consumes input and the objects
// integrate their rotation speeds; Update reports whether anything changed so
// the host can skip redraws for idle frames.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the scene's name.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is active.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is active.
	//
	// Parameters:
	//   - active: true to activate the scene
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the attached camera
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the camera to attach
	SetCamera(cam camera.Camera)

	// Controller returns the scene's active camera controller, or nil if none is set.
	//
	// Returns:
	//   - camera.CameraController: the active controller or nil
	Controller() camera.CameraController

	// SetController replaces the scene's active camera controller.
	// Pass nil to detach; the camera then holds its last pose.
	//
	// Parameters:
	//   - ctrl: the controller to attach, or nil
	SetController(ctrl camera.CameraController)

	// Count returns the number of registered objects.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Add registers an object with the scene, assigning it a new ID if it has none.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a registered object by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if not found
	Get(id uint64) game_object.GameObject

	// Remove unregisters the object with the given ID.
	//
	// Parameters:
	//   - id: the object ID to remove
	Remove(id uint64)

	// Clear removes all registered objects.
	Clear()

	// Update advances the scene by one tick. The camera controller consumes
	// input first, then every enabled object integrates its rotation speed.
	// Object updates are fanned out across the scene's worker pool.
	//
	// Parameters:
	//   - elapsed: elapsed time in seconds since the last tick
	//
	// Returns:
	//   - bool: true if the camera moved or any object's transform changed
	Update(elapsed float32) bool

	// VisibleCount returns the number of enabled objects whose bounding spheres
	// intersect the camera's current view frustum.
	//
	// Returns:
	//   - int: the visible object count
	VisibleCount() int
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	cam  camera.Camera
	ctrl camera.CameraController

	// updatePool manages a bounded set of reusable goroutines for the parallel
	// object update phase of Update. Workers persist across ticks, avoiding
	// per-tick goroutine spawn/teardown overhead.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int // stored so we can log/inspect the configured count
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera. The camera is required
// and NewScene panics if it is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		active:        false,
		cam:           cam,
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the update pool after options so WithUpdateWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Controller() camera.CameraController {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl
}

func (s *scene) SetController(ctrl camera.CameraController) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl = ctrl
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) Update(elapsed float32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	changed := false
	if s.ctrl != nil {
		changed = s.ctrl.Update(elapsed)
	}

	// Fan out object updates to the worker pool. A WaitGroup provides per-tick
	// barrier sync since pool.Wait() blocks until workers idle-exit, which is
	// unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	var objectChanged atomic.Bool
	taskID := 0
	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}

		wg.Add(1)
		oCap := obj // capture for closure
		id := taskID
		taskID++
		s.updatePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				if oCap.Advance(elapsed) {
					objectChanged.Store(true)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return changed || objectChanged.Load()
}

func (s *scene) VisibleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cam == nil {
		return 0
	}

	frustum := s.cam.Frustum()
	count := 0
	for _, obj := range s.registry {
		if !obj.Enabled() {
			continue
		}
		x, y, z := obj.Position()
		if frustum.ContainsSphere(x, y, z, obj.BoundingRadius()) {
			count++
		}
	}
	return count
}
