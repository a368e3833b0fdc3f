// Package vrmath holds the per-eye transform pipeline and gaze test.
// Nothing here touches OpenGL, so it is safe to use from tests.
package vrmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ZNear = 0.1
	ZFar  = 100.0

	// CameraZ puts the camera just in front of the origin so look-at stays well defined.
	CameraZ = 0.01

	YawLimit   = 0.12
	PitchLimit = 0.12
)

// LightPosInWorldSpace keeps the light just above the user.
var LightPosInWorldSpace = mgl32.Vec4{0, 2, 0, 1}

// CameraMatrix returns the fixed camera look-at matrix built at the start of every frame.
func CameraMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, CameraZ},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

// EyeTransforms is the result of applying one eye to the camera.
type EyeTransforms struct {
	View               mgl32.Mat4
	Perspective        mgl32.Mat4
	LightPosInEyeSpace mgl32.Vec3
}

// ComposeEye multiplies the eye view onto the camera and moves the light into eye space.
func ComposeEye(camera, eyeView, perspective mgl32.Mat4, lightWorld mgl32.Vec4) EyeTransforms {
	view := eyeView.Mul4(camera)
	light := view.Mul4x1(lightWorld)
	return EyeTransforms{
		View:               view,
		Perspective:        perspective,
		LightPosInEyeSpace: light.Vec3(),
	}
}

// ModelView returns view × model.
func ModelView(view, model mgl32.Mat4) mgl32.Mat4 {
	return view.Mul4(model)
}

// MVP returns perspective × view × model.
func MVP(perspective, view, model mgl32.Mat4) mgl32.Mat4 {
	return perspective.Mul4(view).Mul4(model)
}

// GazeAngles transforms the local origin through modelView and returns its
// pitch and yaw as seen from the eye.
func GazeAngles(modelView mgl32.Mat4) (pitch, yaw float32) {
	p := modelView.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	pitch = float32(math.Atan2(float64(p.Y()), float64(-p.Z())))
	yaw = float32(math.Atan2(float64(p.X()), float64(-p.Z())))
	return pitch, yaw
}

// IsLookingAt reports whether an object with the given model-view sits inside
// the gaze cone.
func IsLookingAt(modelView mgl32.Mat4) bool {
	pitch, yaw := GazeAngles(modelView)
	return mgl32.Abs(pitch) < PitchLimit && mgl32.Abs(yaw) < YawLimit
}
