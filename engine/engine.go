package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/culling"
	"github.com/korkuveren/MARS/engine/math/vector"
	"github.com/korkuveren/MARS/engine/scene"
	"github.com/korkuveren/MARS/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	default:
		return "unknown"
	}
}

type Config struct {
	// Scene file to load.
	ScenePath string
	// Keep running and re-cull whenever the scene file changes.
	Watch bool
	// Vector kernel name. Empty keeps the one picked at startup.
	Backend string
	// Log level name. Empty keeps the current level.
	LogLevel string
	// Reloads buffered while a pass is running.
	WatchQueueSize int
	// Culling workers. Values below 2 cull on the calling goroutine.
	Workers int
}

type Engine struct {
	config Config

	mutex        sync.Mutex
	currentStage Stage
	scene        *scene.Scene
	lastResult   culling.Result

	culler  *culling.Culler
	jobs    *systems.JobSystem
	watcher *scene.Watcher
	clock   *core.Clock

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg Config) (*Engine, error) {
	if cfg.ScenePath == "" {
		return nil, fmt.Errorf("engine: no scene path given")
	}
	if cfg.WatchQueueSize <= 0 {
		cfg.WatchQueueSize = 8
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		config:       cfg,
		currentStage: EngineStageUninitialized,
		culler:       culling.NewCuller(),
		clock:        core.NewClock(),
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

func (e *Engine) Initialize() error {
	if e.stage() != EngineStageUninitialized {
		return fmt.Errorf("engine: initialize while %s", e.stage())
	}

	if e.config.LogLevel != "" {
		if err := core.SetLogLevel(e.config.LogLevel); err != nil {
			return err
		}
	}

	if e.config.Backend != "" {
		level, err := vector.ParseLevel(e.config.Backend)
		if err != nil {
			return err
		}
		if err := vector.UseBackend(level); err != nil {
			return err
		}
	}
	core.LogInfo("vector %s", vector.Describe())

	// initialize events
	if !core.EventInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	s, err := scene.Load(e.config.ScenePath)
	if err != nil {
		_ = core.EventShutdown()
		return err
	}
	e.setScene(s)

	if e.config.Workers > 1 {
		js, err := systems.NewJobSystem(e.config.Workers, e.config.Workers)
		if err != nil {
			_ = core.EventShutdown()
			return err
		}
		e.jobs = js
	}

	if e.config.Watch {
		w, err := scene.NewWatcher(e.config.ScenePath, e.config.WatchQueueSize)
		if err != nil {
			e.shutdownJobs()
			_ = core.EventShutdown()
			return err
		}
		e.watcher = w
		core.LogInfo("watching %s", w.Path())
	}

	e.setStage(EngineStageInitialized)
	return nil
}

// Run culls the scene once. When watching, it keeps applying reloads until
// Shutdown is called or an application quit event is fired.
func (e *Engine) Run() error {
	if e.stage() != EngineStageInitialized {
		return fmt.Errorf("engine: run while %s", e.stage())
	}
	e.setStage(EngineStageRunning)

	if err := e.cullPass(); err != nil {
		return err
	}
	if e.watcher == nil {
		return nil
	}

	for {
		r, err := e.watcher.Next(e.ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, core.ErrWatcherClosed) {
				return nil
			}
			return err
		}
		if r.Err != nil {
			// Keep culling the last good scene.
			core.LogError("keeping the previous scene: %s", r.Err.Error())
			continue
		}
		e.setScene(r.Scene)

		var ctx core.EventContext
		ctx.Data.C[0] = r.Scene.Path
		ctx.Data.U64[0] = uint64(len(r.Scene.Objects))
		core.EventFire(core.EVENT_CODE_SCENE_RELOADED, e, ctx)

		if err := e.cullPass(); err != nil {
			if e.ctx.Err() != nil {
				// Shut down mid pass.
				return nil
			}
			return err
		}
	}
}

func (e *Engine) Shutdown() error {
	e.mutex.Lock()
	if e.currentStage == EngineStageUninitialized || e.currentStage == EngineStageShuttingDown {
		e.mutex.Unlock()
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageShuttingDown
	e.mutex.Unlock()

	e.cancel()
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogWarn("closing the scene watcher: %s", err.Error())
		}
	}
	e.shutdownJobs()
	return core.EventShutdown()
}

// Scene returns the scene the last pass ran against.
func (e *Engine) Scene() *scene.Scene {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.scene
}

// Result returns the outcome of the last culling pass.
func (e *Engine) Result() culling.Result {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.lastResult
}

func (e *Engine) Stage() Stage {
	return e.stage()
}

func (e *Engine) stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.currentStage = s
}

// setScene swaps the scene and rebuilds the culler from its objects.
func (e *Engine) setScene(s *scene.Scene) {
	entries := make([]culling.Entry, len(s.Objects))
	for i, o := range s.Objects {
		entries[i] = culling.Entry{Name: o.Name, Bounds: o.WorldBounds()}
	}
	e.culler.Replace(entries)

	e.mutex.Lock()
	e.scene = s
	e.mutex.Unlock()
	core.LogDebug("scene %s: %d objects", s.Path, len(s.Objects))
}

func (e *Engine) shutdownJobs() {
	if e.jobs == nil {
		return
	}
	if err := e.jobs.Shutdown(); err != nil {
		core.LogWarn("stopping the culling workers: %s", err.Error())
	}
}

func (e *Engine) cullPass() error {
	s := e.Scene()

	e.clock.Start()
	var result culling.Result
	if e.jobs != nil {
		var err error
		if result, err = e.culler.CullParallel(e.jobs, s.ViewProjection(), 0); err != nil {
			return err
		}
	} else {
		result = e.culler.Cull(s.ViewProjection())
	}
	e.clock.Stop()
	core.MetricsUpdate(e.clock.Elapsed())

	e.mutex.Lock()
	e.lastResult = result
	e.mutex.Unlock()

	var ctx core.EventContext
	ctx.Data.I32[0] = int32(result.Inside)
	ctx.Data.I32[1] = int32(result.Intersecting)
	ctx.Data.I32[2] = int32(result.Outside)
	ctx.Data.F64[0] = e.clock.Elapsed() * 1000
	core.EventFire(core.EVENT_CODE_CULL_COMPLETED, e, ctx)

	core.LogInfo("cull: %s (%.3f ms, avg %.3f ms)", result, e.clock.Elapsed()*1000, core.MetricsPassTime())
	for _, v := range result.Visible {
		core.LogDebug("  %-20s %s", v.Name, v.Classification)
	}
	return nil
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.cancel()
		return true
	}
	return false
}
