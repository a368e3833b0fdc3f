package main

import (
	"vrsualiser/internal/config"
	"vrsualiser/internal/frame"
	"vrsualiser/internal/headtracking"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, tracker *headtracking.MouseTracker, driver *frame.Driver, limiter *frame.Limiter) {
	// Frames are not drawn while the window is hidden; start pacing afresh.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			limiter.Reset()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		tracker.HandleMouseMovement(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			driver.OnTrigger()
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeySpace:
			driver.OnTrigger()
		case glfw.KeyR:
			tracker.Recenter()
		case glfw.KeyS:
			config.SetSpherify(driver.ToggleSpherify())
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})
}
