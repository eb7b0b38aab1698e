/*
Culls the objects of a scene file against its camera and, with -watch,
again every time the file changes.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/korkuveren/MARS/engine"
	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/math/vector"
)

func main() {
	cfg := engine.Config{}
	flag.StringVar(&cfg.ScenePath, "scene", "scene.toml", "scene file to cull")
	flag.BoolVar(&cfg.Watch, "watch", false, "re-cull whenever the scene file changes")
	flag.StringVar(&cfg.Backend, "backend", "", "vector kernel: generic or simd (default: best available)")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")
	flag.IntVar(&cfg.WatchQueueSize, "queue", 8, "reloads buffered while a pass runs")
	flag.IntVar(&cfg.Workers, "workers", 1, "culling workers")
	backends := flag.Bool("backends", false, "print the vector kernels available and exit")
	flag.Parse()

	if *backends {
		fmt.Println(vector.Describe())
		return
	}

	e, err := engine.New(cfg)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, nil, core.EventContext{})
	}()

	// run engine
	if err := e.Run(); err != nil {
		core.LogError("%s", err)
		_ = e.Shutdown()
		os.Exit(1)
	}
	if err := e.Shutdown(); err != nil {
		core.LogWarn("%s", err)
	}
}
