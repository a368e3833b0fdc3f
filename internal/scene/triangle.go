package scene

import (
	"vrsualiser/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a single flat-shaded face with one colour
type Triangle struct {
	meshItem
	color mgl32.Vec4
}

var DefaultTriangleColor = mgl32.Vec4{0, 0.5, 0.5, 1}

// NewTriangle builds a face from three scene-space vertices.
func NewTriangle(a, b, c mgl32.Vec3) *Triangle {
	data := graphics.MeshData{
		Positions: make([]float32, 9),
		Normals:   make([]float32, 9),
		Colors:    solidColors(3, DefaultTriangleColor),
	}
	t := &Triangle{meshItem: newMeshItem(mgl32.Ident4(), data), color: DefaultTriangleColor}
	t.writeVertices([3]mgl32.Vec3{a, b, c})
	return t
}

// Vertices returns the three corners.
func (t *Triangle) Vertices() [3]mgl32.Vec3 {
	p := t.data.Positions
	return [3]mgl32.Vec3{
		{p[0], p[1], p[2]},
		{p[3], p[4], p[5]},
		{p[6], p[7], p[8]},
	}
}

// SetVertices moves the corners and recomputes the face normal.
func (t *Triangle) SetVertices(v [3]mgl32.Vec3) {
	t.writeVertices(v)
	t.positionsDirty = true
}

// Normal is the unit face normal following the a→b→c winding. Degenerate
// triangles report the zero vector.
func (t *Triangle) Normal() mgl32.Vec3 {
	return mgl32.Vec3{t.data.Normals[0], t.data.Normals[1], t.data.Normals[2]}
}

// SetColor paints the whole face.
func (t *Triangle) SetColor(c mgl32.Vec4) {
	if c == t.color {
		return
	}
	t.color = c
	t.fillColor(c)
}

func (t *Triangle) Color() mgl32.Vec4 {
	return t.color
}

func (t *Triangle) writeVertices(v [3]mgl32.Vec3) {
	n := v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	for i := range v {
		copy(t.data.Positions[i*3:i*3+3], v[i][:])
		copy(t.data.Normals[i*3:i*3+3], n[:])
	}
}
