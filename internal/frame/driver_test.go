package frame

import (
	"errors"
	"math"
	"testing"
	"time"

	"vrsualiser/internal/audio"
	"vrsualiser/internal/graphics"
	"vrsualiser/internal/headtracking"
	"vrsualiser/internal/scene"
	"vrsualiser/internal/vrmath"

	"github.com/go-gl/mathgl/mgl32"
)

type scriptedSource struct {
	captures []audio.Capture
	err      error
	calls    int
}

func (s *scriptedSource) Next() (audio.Capture, error) {
	s.calls++
	if s.err != nil {
		return audio.Capture{}, s.err
	}
	c := s.captures[0]
	if len(s.captures) > 1 {
		s.captures = s.captures[1:]
	}
	return c, nil
}

func (s *scriptedSource) Close() error { return nil }

func newTestDriver(src audio.Source) *Driver {
	d := NewDriver(src, Options{CubeCount: 10, ObjectDistance: 3.5, FloorDepth: 20})
	d.buildScene(graphics.RenderParams{})
	return d
}

func TestBuildScene(t *testing.T) {
	d := newTestDriver(audio.NewSyntheticSource(0, 1))

	if len(d.cubes) != 10 {
		t.Fatalf("cubes = %d", len(d.cubes))
	}
	// Cubes are stacked two units apart, 35 units ahead.
	if got := d.cubes[3].Position(); got != (mgl32.Vec3{0, 6, -35}) {
		t.Errorf("cube 3 at %v", got)
	}
	if got, want := d.Scene().Len(), 10+48; got != want {
		t.Errorf("scene items = %d, want %d", got, want)
	}
	if d.Scene().Items()[0] != scene.RenderItem(d.cubes[0]) {
		t.Errorf("cubes should be drawn first")
	}
}

func TestNewFrameFeedsVisualiser(t *testing.T) {
	fft := make([]byte, 96) // 48 faces, stride 2
	fft[0], fft[1] = 100, 100
	src := &scriptedSource{captures: []audio.Capture{{Wave: []byte{128}, FFT: fft}}}
	d := newTestDriver(src)

	d.newFrame(headtracking.HeadTransform{})

	if src.calls != 1 {
		t.Fatalf("source polled %d times", src.calls)
	}
	if got := d.eq.Faces()[0].Color(); got != (mgl32.Vec4{0, 1, 1, 1}) {
		t.Errorf("face 0 colour = %v", got)
	}
	if got := d.eq.Faces()[1].Color(); got != (mgl32.Vec4{0, 0.5, 0.5, 1}) {
		t.Errorf("face 1 colour = %v", got)
	}
	if !d.camera.ApproxEqual(vrmath.CameraMatrix()) {
		t.Errorf("camera not rebuilt")
	}
}

func TestNewFrameSurvivesAudioErrors(t *testing.T) {
	src := &scriptedSource{err: errors.New("device gone")}
	d := newTestDriver(src)

	d.newFrame(headtracking.HeadTransform{})
	d.newFrame(headtracking.HeadTransform{})

	if !d.audioFailed || src.calls != 2 {
		t.Errorf("audioFailed=%v calls=%d", d.audioFailed, src.calls)
	}
	if got := d.eq.Faces()[0].Color(); got != scene.DefaultTriangleColor {
		t.Errorf("faces should keep their colour, got %v", got)
	}
}

func TestGazeHighlightsCube(t *testing.T) {
	d := newTestDriver(audio.NewSyntheticSource(0, 1))

	// Looking straight ahead hits the bottom cube.
	d.newFrame(headtracking.HeadTransform{})
	if d.LookedAt() != 0 || !d.cubes[0].Highlighted() {
		t.Fatalf("lookedAt = %d", d.LookedAt())
	}

	// Pitch up towards cube 9 at (0, 18, -35); its neighbours also fit in
	// the gaze cone but sit further from the centre.
	up := headtracking.HeadTransform{Pitch: float32(math.Atan2(18, 35))}
	d.newFrame(up)
	if d.LookedAt() != 9 {
		t.Errorf("lookedAt = %d, want 9", d.LookedAt())
	}
	if d.cubes[0].Highlighted() || !d.cubes[9].Highlighted() {
		t.Errorf("highlight did not follow gaze")
	}

	// Turn away entirely.
	d.newFrame(headtracking.HeadTransform{Yaw: 1})
	if d.LookedAt() != -1 {
		t.Errorf("lookedAt = %d, want -1", d.LookedAt())
	}
	if q := d.HeadRotation(); !q.ApproxEqual(headtracking.HeadTransform{Yaw: 1}.Quaternion()) {
		t.Errorf("head rotation not stored")
	}
}

func TestPrepareEye(t *testing.T) {
	d := newTestDriver(audio.NewSyntheticSource(0, 1))
	d.newFrame(headtracking.HeadTransform{})

	rig := headtracking.StereoRig{IPD: 0.064, FOVDeg: 90}
	eyes := rig.Eyes(headtracking.HeadTransform{}, 1280, 720)
	d.prepareEye(eyes[1])

	s := d.Scene()
	if !s.View.ApproxEqual(eyes[1].EyeView.Mul4(vrmath.CameraMatrix())) {
		t.Errorf("view = %v", s.View)
	}
	if !s.Perspective.ApproxEqual(eyes[1].Perspective(vrmath.ZNear, vrmath.ZFar)) {
		t.Errorf("perspective = %v", s.Perspective)
	}
	want := s.View.Mul4x1(vrmath.LightPosInWorldSpace).Vec3()
	if !s.LightPosInEyeSpace.ApproxEqual(want) {
		t.Errorf("light = %v, want %v", s.LightPosInEyeSpace, want)
	}
}

func TestLookedAtCubeNone(t *testing.T) {
	if got := LookedAtCube(mgl32.Ident4(), mgl32.Ident4(), nil); got != -1 {
		t.Errorf("no cubes = %d", got)
	}
}

func TestLimiterDisabled(t *testing.T) {
	var l Limiter
	start := time.Now()
	for i := 0; i < 100; i++ {
		l.Wait(0)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Errorf("uncapped limiter slept")
	}
}

func TestLimiterCaps(t *testing.T) {
	var l Limiter
	start := time.Now()
	for i := 0; i < 5; i++ {
		l.Wait(100)
	}
	if got := time.Since(start); got < 45*time.Millisecond {
		t.Errorf("5 frames at 100 fps took %v", got)
	}
}

func TestLimiterRestartsAfterStall(t *testing.T) {
	var l Limiter
	l.Wait(200)
	time.Sleep(30 * time.Millisecond)

	// The missed frames are not made up with back-to-back returns.
	if waited := l.Wait(200); waited != 0 {
		t.Errorf("first wait after a stall = %v, want 0", waited)
	}
	if waited := l.Wait(200); waited < 3*time.Millisecond {
		t.Errorf("second wait after a stall = %v, want about one period", waited)
	}
}

func TestLimiterResetAndRateChange(t *testing.T) {
	var l Limiter
	l.Wait(1000)
	l.Reset()
	if !l.deadline.IsZero() {
		t.Fatalf("deadline survived Reset")
	}

	l.Wait(1000)
	l.Wait(50)
	if l.period != 20*time.Millisecond {
		t.Errorf("period = %v after changing the limit", l.period)
	}
}

func TestToggleSpherify(t *testing.T) {
	d := newTestDriver(audio.NewSyntheticSource(0, 1))

	if !d.ToggleSpherify() || !d.eq.Spherified() {
		t.Fatalf("first toggle should switch the EQ to spherical")
	}
	if d.ToggleSpherify() {
		t.Errorf("second toggle should switch back to flat")
	}
}
