package main

import (
	"vrsualiser/internal/audio"
	"vrsualiser/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "VRsualiser", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("OpenGL ready")

	// The frame limiter paces us instead of vsync
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// openAudioSource returns the synthetic generator or a capture replay, wrapped
// in a recorder when recordPath is set.
func openAudioSource(name, recordPath string) (audio.Source, error) {
	var src audio.Source
	if name == config.SyntheticAudio {
		src = audio.NewSyntheticSource(audio.CaptureSize, 1)
	} else {
		replay, err := audio.OpenReplay(name)
		if err != nil {
			return nil, err
		}
		src = replay
	}
	log.WithField("source", name).Info("audio source opened")

	if recordPath == "" {
		return src, nil
	}
	rec, err := audio.NewRecorder(recordPath)
	if err != nil {
		src.Close()
		return nil, err
	}
	log.WithField("path", recordPath).Info("recording captures")
	return audio.NewTee(src, rec), nil
}
