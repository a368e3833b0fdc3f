// Package frame drives one stereo frame: it prepares shared transforms from
// the head pose, then draws the scene once per eye.
package frame

import (
	"fmt"

	"vrsualiser/internal/audio"
	"vrsualiser/internal/graphics"
	"vrsualiser/internal/headtracking"
	"vrsualiser/internal/overlay"
	"vrsualiser/internal/profiling"
	"vrsualiser/internal/renderers"
	"vrsualiser/internal/scene"
	"vrsualiser/internal/vrmath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

const (
	cubeSize = 2

	eqGridSize = 1
	eqScale    = 1.5
)

var eqCentre = mgl32.Vec3{0, -2.5, -6}

// Options shapes the scene built at surface creation
type Options struct {
	CubeCount      int
	ObjectDistance float32
	FloorDepth     float32
	Spherify       bool
	GridLines      bool // false uses the passthrough fragment shader
}

// Driver implements the stereo renderer callbacks. All methods run on the
// render thread.
type Driver struct {
	opts   Options
	source audio.Source

	shader  *graphics.Shader
	scene   *scene.Scene
	floor   *scene.Floor
	cubes   []*scene.Cube
	eq      *renderers.EQRenderer
	overlay *overlay.Overlay

	head         headtracking.HeadTransform
	camera       mgl32.Mat4
	headView     mgl32.Mat4
	headRotation mgl32.Quat
	lookedAt     int

	audioFailed bool
}

// NewDriver creates a driver pulling one capture per frame from source.
func NewDriver(source audio.Source, opts Options) *Driver {
	return &Driver{
		opts:         opts,
		source:       source,
		camera:       mgl32.Ident4(),
		headView:     mgl32.Ident4(),
		headRotation: mgl32.QuatIdent(),
		lookedAt:     -1,
	}
}

// OnSurfaceCreated compiles the shared program and builds the scene. A shader
// compile or link failure is returned and should abort startup.
func (d *Driver) OnSurfaceCreated() error {
	log.Info("onSurfaceCreated")
	gl.ClearColor(0.1, 0.1, 0.1, 0.5) // Dark background so text shows up well.

	fragment := graphics.GridFragmentShader
	if !d.opts.GridLines {
		fragment = graphics.PassthroughFragmentShader
	}
	shader, err := graphics.NewShader(graphics.LightVertexShader, fragment)
	if err != nil {
		return fmt.Errorf("render program init: %w", err)
	}
	d.shader = shader
	d.shader.Use()
	if err := graphics.CheckError("Render program init"); err != nil {
		return err
	}

	params, err := graphics.NewRenderParams(shader)
	if err != nil {
		return fmt.Errorf("render program params: %w", err)
	}
	d.buildScene(params)
	if err := graphics.CheckError("Render program params"); err != nil {
		return err
	}

	d.overlay, err = overlay.New()
	if err != nil {
		return fmt.Errorf("overlay init: %w", err)
	}
	d.overlay.Show("Look at a cube and press space", overlay.DefaultDuration)

	return graphics.CheckError("onSurfaceCreated")
}

// buildScene creates the floor, the cube column and the EQ box. No GL calls.
func (d *Driver) buildScene(params graphics.RenderParams) {
	d.scene = scene.New(params)
	d.floor = scene.NewFloor(d.opts.FloorDepth)

	d.cubes = d.cubes[:0]
	for i := 0; i < d.opts.CubeCount; i++ {
		c := scene.NewCube(cubeSize, cubeSize, cubeSize, mgl32.Vec3{0, float32(2 * i), -d.opts.ObjectDistance * 10})
		d.cubes = append(d.cubes, c)
		d.scene.Add(c)
	}

	d.eq = renderers.NewEQRenderer(d.scene, eqGridSize, eqCentre, eqScale, d.opts.Spherify)
	log.WithFields(log.Fields{"cubes": len(d.cubes), "faces": len(d.eq.Faces())}).Debug("scene built")
}

// OnNewFrame prepares the shared per-frame state from the head pose.
func (d *Driver) OnNewFrame(head headtracking.HeadTransform) error {
	defer profiling.Track("frame.NewFrame")()
	d.newFrame(head)
	return graphics.CheckError("onReadyToDraw")
}

func (d *Driver) newFrame(head headtracking.HeadTransform) {
	d.head = head
	d.camera = vrmath.CameraMatrix()
	d.headView = head.HeadView()
	d.headRotation = head.Quaternion()

	d.pullAudio()
	d.updateGaze()
}

func (d *Driver) pullAudio() {
	defer profiling.Track("audio.Next")()
	c, err := d.source.Next()
	if err != nil {
		// Keep showing the last capture.
		if !d.audioFailed {
			log.WithError(err).Warn("audio source stopped")
			d.audioFailed = true
		}
		return
	}
	d.audioFailed = false
	d.eq.UpdateWave(c.Wave)
	d.eq.UpdateFFT(c.FFT)
}

// updateGaze highlights the cube nearest the centre of the gaze, judged from
// the point between the eyes.
func (d *Driver) updateGaze() {
	d.lookedAt = LookedAtCube(d.headView.Mul4(d.camera), d.scene.Model, d.cubes)
	for i, c := range d.cubes {
		c.SetHighlighted(i == d.lookedAt)
	}
}

// LookedAtCube returns the index of the cube inside the gaze limits that is
// closest to the centre of view, or -1. Several distant cubes can fit in the
// cone at once.
func LookedAtCube(view, sceneModel mgl32.Mat4, cubes []*scene.Cube) int {
	best, bestDist := -1, float32(0)
	for i, c := range cubes {
		modelView := view.Mul4(sceneModel).Mul4(c.ModelMatrix())
		if !vrmath.IsLookingAt(modelView) {
			continue
		}
		pitch, yaw := vrmath.GazeAngles(modelView)
		if dist := pitch*pitch + yaw*yaw; best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// OnDrawEye draws the whole scene for one eye.
func (d *Driver) OnDrawEye(eye headtracking.Eye) error {
	defer profiling.Track("frame.DrawEye")()

	vp := eye.Viewport
	gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(vp.X, vp.Y, vp.Width, vp.Height)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	d.prepareEye(eye)

	d.shader.Use()
	d.floor.Draw(d.scene)
	if err := graphics.CheckError("drawing floor"); err != nil {
		return err
	}
	// The EQ renderer redraws the whole scene, cubes included.
	d.eq.Render()
	if err := graphics.CheckError("drawing scene"); err != nil {
		return err
	}

	d.overlay.Render(eye)
	return graphics.CheckError("onDrawEye")
}

// prepareEye applies the eye to the camera and stores the result on the scene.
func (d *Driver) prepareEye(eye headtracking.Eye) {
	et := vrmath.ComposeEye(d.camera, eye.EyeView, eye.Perspective(vrmath.ZNear, vrmath.ZFar), vrmath.LightPosInWorldSpace)
	d.scene.View = et.View
	d.scene.Perspective = et.Perspective
	d.scene.LightPosInEyeSpace = et.LightPosInEyeSpace
}

// OnFinishFrame runs after both eyes are drawn.
func (d *Driver) OnFinishFrame() {}

// OnTrigger handles the viewer button (space or left click on desktop).
func (d *Driver) OnTrigger() {
	yaw, pitch, roll := d.head.EulerAngles()
	log.WithFields(log.Fields{
		"lookedAt": d.lookedAt,
		"yaw":      mgl32.RadToDeg(yaw),
		"pitch":    mgl32.RadToDeg(pitch),
		"roll":     mgl32.RadToDeg(roll),
	}).Info("onCardboardTrigger")
	if d.overlay == nil {
		return
	}
	if d.lookedAt >= 0 {
		d.overlay.Show(fmt.Sprintf("Found cube %d", d.lookedAt+1), overlay.DefaultDuration)
	} else {
		d.overlay.Show("Look around to find a cube", overlay.DefaultDuration)
	}
}

// ToggleSpherify flips the EQ box between flat and spherical faces and
// returns the new state.
func (d *Driver) ToggleSpherify() bool {
	on := !d.eq.Spherified()
	d.eq.SetSpherify(on)
	if d.overlay != nil {
		msg := "Flat EQ"
		if on {
			msg = "Spherical EQ"
		}
		d.overlay.Show(msg, overlay.DefaultDuration)
	}
	return on
}

// OnRendererShutdown releases every GL resource.
func (d *Driver) OnRendererShutdown() {
	log.Info("onRendererShutdown")
	if d.overlay != nil {
		d.overlay.Dispose()
	}
	if d.scene != nil {
		d.scene.Dispose()
	}
	if d.floor != nil {
		d.floor.Dispose()
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}

// LookedAt returns the index of the cube under the user's gaze, or -1.
func (d *Driver) LookedAt() int {
	return d.lookedAt
}

// HeadRotation returns the quaternion sampled at the start of the frame.
func (d *Driver) HeadRotation() mgl32.Quat {
	return d.headRotation
}

// Scene exposes the scene for inspection.
func (d *Driver) Scene() *scene.Scene {
	return d.scene
}
