// Package scene holds the render items drawn every eye and the transforms
// they share.
package scene

import (
	"vrsualiser/internal/graphics"
	"vrsualiser/internal/vrmath"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderItem is anything the scene can draw with the shared program
type RenderItem interface {
	// Draw sets the item's uniforms from the scene transforms and issues its draw call.
	Draw(s *Scene)
	ModelMatrix() mgl32.Mat4
	Dispose()
}

// Scene owns an ordered list of render items and the matrices of the eye
// currently being drawn. All items use Params; none owns a program.
type Scene struct {
	Params graphics.RenderParams

	View               mgl32.Mat4
	Perspective        mgl32.Mat4
	Model              mgl32.Mat4 // applied before every item's own model
	LightPosInEyeSpace mgl32.Vec3

	items []RenderItem
}

// New creates an empty scene for a linked program
func New(params graphics.RenderParams) *Scene {
	return &Scene{
		Params:      params,
		View:        mgl32.Ident4(),
		Perspective: mgl32.Ident4(),
		Model:       mgl32.Ident4(),
	}
}

// Add appends an item; items draw in insertion order.
func (s *Scene) Add(item RenderItem) {
	s.items = append(s.items, item)
}

// Items returns the items in draw order.
func (s *Scene) Items() []RenderItem {
	return s.items
}

func (s *Scene) Len() int {
	return len(s.items)
}

// ModelOf returns the full model matrix the scene uses for item.
func (s *Scene) ModelOf(item RenderItem) mgl32.Mat4 {
	return s.Model.Mul4(item.ModelMatrix())
}

// ModelViewOf returns view × model for item under the current eye.
func (s *Scene) ModelViewOf(item RenderItem) mgl32.Mat4 {
	return vrmath.ModelView(s.View, s.ModelOf(item))
}

// Redraw draws every item.
func (s *Scene) Redraw() {
	for _, item := range s.items {
		item.Draw(s)
	}
}

// Dispose releases every item's GL resources and empties the scene.
func (s *Scene) Dispose() {
	for _, item := range s.items {
		item.Dispose()
	}
	s.items = nil
}
