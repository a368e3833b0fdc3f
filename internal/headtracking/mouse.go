package headtracking

import (
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitchDeg = 89.0

// MouseTracker turns cursor movement into a head pose, for running without a headset
type MouseTracker struct {
	Sensitivity float32 // degrees per pixel

	yawDeg   float64
	pitchDeg float64

	firstMouse bool
	lastX      float64
	lastY      float64
}

// NewMouseTracker creates a tracker looking straight ahead
func NewMouseTracker(sensitivity float32) *MouseTracker {
	return &MouseTracker{Sensitivity: sensitivity, firstMouse: true}
}

// HandleMouseMovement feeds an absolute cursor position, as glfw reports it.
func (m *MouseTracker) HandleMouseMovement(xpos, ypos float64) {
	if m.firstMouse {
		m.lastX = xpos
		m.lastY = ypos
		m.firstMouse = false
		return
	}

	xoffset := xpos - m.lastX
	yoffset := m.lastY - ypos
	m.lastX = xpos
	m.lastY = ypos

	s := float64(m.Sensitivity)
	// Moving the mouse right turns the head right, which is a negative
	// rotation about +Y.
	m.yawDeg -= xoffset * s
	m.pitchDeg += yoffset * s

	if m.pitchDeg > maxPitchDeg {
		m.pitchDeg = maxPitchDeg
	}
	if m.pitchDeg < -maxPitchDeg {
		m.pitchDeg = -maxPitchDeg
	}
}

// Recenter resets the pose and waits for a fresh cursor position.
func (m *MouseTracker) Recenter() {
	m.yawDeg = 0
	m.pitchDeg = 0
	m.firstMouse = true
}

// Sample implements Tracker
func (m *MouseTracker) Sample() HeadTransform {
	return HeadTransform{
		Yaw:   mgl32.DegToRad(float32(m.yawDeg)),
		Pitch: mgl32.DegToRad(float32(m.pitchDeg)),
	}
}
