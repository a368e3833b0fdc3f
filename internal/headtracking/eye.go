package headtracking

import (
	"github.com/go-gl/mathgl/mgl32"
)

type EyeType int

const (
	Mono EyeType = iota
	Left
	Right
)

func (t EyeType) String() string {
	switch t {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "mono"
	}
}

// Viewport is a pixel rectangle in the window framebuffer
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Eye is one of the two stereo viewpoints rendered each frame
type Eye struct {
	Type     EyeType
	EyeView  mgl32.Mat4
	Viewport Viewport

	fovY float32 // radians
}

// Perspective returns the eye's projection for the given clip planes.
func (e Eye) Perspective(zNear, zFar float32) mgl32.Mat4 {
	aspect := float32(1)
	if e.Viewport.Height > 0 {
		aspect = float32(e.Viewport.Width) / float32(e.Viewport.Height)
	}
	return mgl32.Perspective(e.fovY, aspect, zNear, zFar)
}

// StereoRig lays out side-by-side eyes the way a phone viewer does
type StereoRig struct {
	IPD    float32 // metres
	FOVDeg float32
}

// Eyes returns the left and right eye for the head pose and framebuffer size.
func (r StereoRig) Eyes(head HeadTransform, width, height int) [2]Eye {
	headView := head.HeadView()
	half := int32(width / 2)
	fov := mgl32.DegToRad(r.FOVDeg)
	offset := r.IPD / 2

	return [2]Eye{
		{
			Type:     Left,
			EyeView:  mgl32.Translate3D(offset, 0, 0).Mul4(headView),
			Viewport: Viewport{X: 0, Y: 0, Width: half, Height: int32(height)},
			fovY:     fov,
		},
		{
			Type:     Right,
			EyeView:  mgl32.Translate3D(-offset, 0, 0).Mul4(headView),
			Viewport: Viewport{X: half, Y: 0, Width: int32(width) - half, Height: int32(height)},
			fovY:     fov,
		},
	}
}

// Mono returns a single full-window eye, used when stereo is off.
func (r StereoRig) Mono(head HeadTransform, width, height int) Eye {
	return Eye{
		Type:     Mono,
		EyeView:  head.HeadView(),
		Viewport: Viewport{Width: int32(width), Height: int32(height)},
		fovY:     mgl32.DegToRad(r.FOVDeg),
	}
}
