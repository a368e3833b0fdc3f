package overlay

import (
	"time"

	"vrsualiser/internal/graphics"
	"vrsualiser/internal/headtracking"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontPixels      = 28
	DefaultDuration = 3 * time.Second
)

var textColor = mgl32.Vec3{1, 1, 1}

// Overlay keeps the current toast and draws it centred in an eye viewport
type Overlay struct {
	fonts *graphics.FontRenderer
	toast Toast
	now   func() time.Time
}

// New bakes the overlay font and prepares GL state. Needs a current context.
func New() (*Overlay, error) {
	atlas, err := graphics.BakeFontAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return nil, err
	}
	fonts, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return nil, err
	}
	return &Overlay{fonts: fonts, now: time.Now}, nil
}

// Show replaces any current toast.
func (o *Overlay) Show(text string, d time.Duration) {
	o.toast = NewToast(text, o.now(), d)
}

// Render draws the toast into the eye's viewport, slightly below centre.
func (o *Overlay) Render(eye headtracking.Eye) {
	now := o.now()
	if !o.toast.Visible(now) {
		return
	}
	vp := eye.Viewport
	o.fonts.SetViewport(vp.Width, vp.Height)

	w, h := o.fonts.Atlas().Measure(o.toast.Text, 1)
	x := (float32(vp.Width) - w) / 2
	y := float32(vp.Height)*0.6 + h/2

	gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
	o.fonts.Render(o.toast.Text, x, y, 1, textColor, o.toast.Alpha(now))
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	o.fonts.Dispose()
}
