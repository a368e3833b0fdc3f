package main

import (
	"time"

	"vrsualiser/internal/config"
	"vrsualiser/internal/frame"
	"vrsualiser/internal/headtracking"
	"vrsualiser/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// runFrameLoop calls the driver in the order a stereo host would: new frame,
// one draw per eye, finish frame.
func runFrameLoop(window *glfw.Window, driver *frame.Driver, tracker headtracking.Tracker, rig headtracking.StereoRig, limiter *frame.Limiter) error {
	fps := profiling.NewFPSCounter(time.Second)
	stereo := config.GetStereo()

	for !window.ShouldClose() {
		profiling.ResetFrame()

		head := tracker.Sample()
		if err := driver.OnNewFrame(head); err != nil {
			return err
		}

		width, height := window.GetFramebufferSize()
		if stereo {
			for _, eye := range rig.Eyes(head, width, height) {
				if err := driver.OnDrawEye(eye); err != nil {
					return err
				}
			}
		} else if err := driver.OnDrawEye(rig.Mono(head, width, height)); err != nil {
			return err
		}
		driver.OnFinishFrame()

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		fps.Frame(time.Now())
		func() { defer profiling.Track("limiter.Wait")(); limiter.Wait(config.GetFPSLimit()) }()
	}
	return nil
}
