package headtracking

import (
	"github.com/go-gl/mathgl/mgl32"
)

// HeadTransform is the head pose for one frame
type HeadTransform struct {
	// Yaw, Pitch and Roll are in radians.
	Yaw   float32
	Pitch float32
	Roll  float32
}

// Quaternion returns the head orientation.
func (h HeadTransform) Quaternion() mgl32.Quat {
	return mgl32.AnglesToQuat(h.Yaw, h.Pitch, h.Roll, mgl32.YXZ)
}

// HeadView returns the world-to-head matrix, the inverse of the head orientation.
func (h HeadTransform) HeadView() mgl32.Mat4 {
	return h.Quaternion().Inverse().Mat4()
}

// EulerAngles returns yaw, pitch and roll in radians.
func (h HeadTransform) EulerAngles() (yaw, pitch, roll float32) {
	return h.Yaw, h.Pitch, h.Roll
}

// Forward returns the gaze direction in world space.
func (h HeadTransform) Forward() mgl32.Vec3 {
	return h.Quaternion().Rotate(mgl32.Vec3{0, 0, -1})
}

// Tracker supplies a head pose once per frame
type Tracker interface {
	Sample() HeadTransform
}
