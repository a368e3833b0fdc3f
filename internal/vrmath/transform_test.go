package vrmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIsLookingAt(t *testing.T) {
	ahead := mgl32.Translate3D(0, 0, -5)

	tests := []struct {
		name      string
		modelView mgl32.Mat4
		want      bool
	}{
		{"directly ahead", ahead, true},
		{"small yaw", mgl32.HomogRotate3DY(0.05).Mul4(ahead), true},
		{"yaw beyond limit", mgl32.HomogRotate3DY(0.2).Mul4(ahead), false},
		{"negative yaw beyond limit", mgl32.HomogRotate3DY(-0.2).Mul4(ahead), false},
		{"pitch beyond limit", mgl32.HomogRotate3DX(0.2).Mul4(ahead), false},
		{"behind", mgl32.Translate3D(0, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLookingAt(tt.modelView); got != tt.want {
				pitch, yaw := GazeAngles(tt.modelView)
				t.Errorf("IsLookingAt = %v, want %v (pitch %.3f yaw %.3f)", got, tt.want, pitch, yaw)
			}
		})
	}
}

func TestGazeAngles(t *testing.T) {
	// Object one unit up and ten ahead: pitch = atan2(1, 10)
	pitch, yaw := GazeAngles(mgl32.Translate3D(0, 1, -10))
	if !mgl32.FloatEqualThreshold(pitch, 0.0996687, 1e-5) {
		t.Errorf("pitch = %v, want ~0.0997", pitch)
	}
	if yaw != 0 {
		t.Errorf("yaw = %v, want 0", yaw)
	}
}

func TestMVPComposition(t *testing.T) {
	perspective := mgl32.Perspective(mgl32.DegToRad(90), 1, ZNear, ZFar)
	view := mgl32.Translate3D(0, 0, -2)
	model := mgl32.Translate3D(1, 0, 0)

	got := MVP(perspective, view, model)
	want := perspective.Mul4(view.Mul4(model))
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("MVP mismatch:\n%v\nwant\n%v", got, want)
	}

	// Origin of the model lands at (1, 0, -2) in eye space; with a 90° fov
	// and aspect 1 it projects to x_ndc = 1 / 2.
	clip := got.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndcX := clip.X() / clip.W()
	if !mgl32.FloatEqualThreshold(ndcX, 0.5, 1e-5) {
		t.Errorf("ndc x = %v, want 0.5", ndcX)
	}

	if mv := ModelView(view, model); !mv.ApproxEqual(mgl32.Translate3D(1, 0, -2)) {
		t.Errorf("ModelView = %v", mv)
	}
}

func TestComposeEye(t *testing.T) {
	camera := CameraMatrix()
	eyeView := mgl32.Translate3D(-0.032, 0, 0)
	perspective := mgl32.Perspective(mgl32.DegToRad(90), 1, ZNear, ZFar)

	et := ComposeEye(camera, eyeView, perspective, LightPosInWorldSpace)

	if !et.View.ApproxEqual(eyeView.Mul4(camera)) {
		t.Errorf("view should be eyeView × camera")
	}
	// Camera sits at z=0.01 looking down -Z, so the light at (0,2,0)
	// ends up at (-0.032, 2, -0.01) in eye space.
	want := mgl32.Vec3{-0.032, 2, -CameraZ}
	if !et.LightPosInEyeSpace.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("light = %v, want %v", et.LightPosInEyeSpace, want)
	}
	if et.Perspective != perspective {
		t.Errorf("perspective not carried through")
	}
}

func TestCameraMatrixLooksDownNegativeZ(t *testing.T) {
	p := CameraMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1 - CameraZ}, 1e-6) {
		t.Errorf("point ahead maps to %v", p)
	}
}
