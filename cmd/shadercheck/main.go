// Command shadercheck compiles every embedded shader program against a real
// OpenGL 4.1 core context and reports compile or link errors.
package main

import (
	"os"
	"runtime"

	"vrsualiser/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.WithError(err).Fatal("glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(64, 64, "shadercheck", nil, nil)
	if err != nil {
		log.WithError(err).Fatal("create window")
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		log.WithError(err).Fatal("gl init")
	}

	programs := []struct {
		name     string
		vertex   string
		fragment string
	}{
		{"grid", graphics.LightVertexShader, graphics.GridFragmentShader},
		{"passthrough", graphics.LightVertexShader, graphics.PassthroughFragmentShader},
	}

	failed := false
	for _, p := range programs {
		s, err := graphics.NewShader(p.vertex, p.fragment)
		if err != nil {
			log.WithField("program", p.name).WithError(err).Error("shader check failed")
			failed = true
			continue
		}
		params, err := graphics.NewRenderParams(s)
		s.Delete()
		if err != nil {
			log.WithField("program", p.name).WithError(err).Error("shader check failed")
			failed = true
			continue
		}
		log.WithFields(log.Fields{
			"program":    p.name,
			"a_Position": params.Vertex,
			"a_Normal":   params.Normal,
			"a_Color":    params.Color,
		}).Info("ok")
	}

	if err := graphics.CheckError("shadercheck"); err != nil {
		failed = true
	}
	if failed {
		glfw.Terminate()
		os.Exit(1)
	}
}
