package main

import (
	"flag"
	"runtime"

	"vrsualiser/internal/config"
	"vrsualiser/internal/frame"
	"vrsualiser/internal/headtracking"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	envPath := flag.String("env", ".env", "dotenv file with VRS_* settings")
	flag.Parse()

	if err := config.Load(*envPath); err != nil {
		log.WithError(err).Fatal("config")
	}
	setupLogging(config.GetLogLevel())

	if err := glfw.Init(); err != nil {
		log.WithError(err).Fatal("glfw init")
	}

	window, err := setupWindow()
	if err != nil {
		log.WithError(err).Fatal("window setup")
	}

	source, err := openAudioSource(config.GetAudioSource(), config.GetRecordPath())
	if err != nil {
		log.WithError(err).Fatal("audio source")
	}
	// On Ctrl-C closer runs this before exiting, so a recording is flushed
	// even if the render loop never returns.
	closer.Bind(func() {
		if err := source.Close(); err != nil {
			log.WithError(err).Error("closing audio source")
		}
	})

	driver := frame.NewDriver(source, frame.Options{
		CubeCount:      config.GetCubeCount(),
		ObjectDistance: config.GetObjectDistance(),
		FloorDepth:     config.GetFloorDepth(),
		Spherify:       config.GetSpherify(),
		GridLines:      config.GetGridLines(),
	})
	if err := driver.OnSurfaceCreated(); err != nil {
		log.WithError(err).Fatal("surface creation")
	}

	tracker := headtracking.NewMouseTracker(config.GetMouseSensitivity())
	rig := headtracking.StereoRig{IPD: config.GetIPD(), FOVDeg: config.GetFOV()}
	var limiter frame.Limiter
	setupInputHandlers(window, tracker, driver, &limiter)

	runErr := runFrameLoop(window, driver, tracker, rig, &limiter)

	driver.OnRendererShutdown()
	glfw.Terminate()
	// closer runs the bound cleanup and exits the process.
	if runErr != nil {
		closer.Fatalln(runErr)
	}
	closer.Close()
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
