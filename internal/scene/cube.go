package scene

import (
	"vrsualiser/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	CubeColor      = mgl32.Vec4{0, 0.5273, 0.2656, 1}
	CubeFoundColor = mgl32.Vec4{1, 0.6523, 0, 1}
)

// unit cube faces, counter-clockwise from outside: front, right, back, left, top, bottom
var cubeFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

// Cube is an axis-aligned box that lights up while the user looks at it
type Cube struct {
	meshItem
	highlighted bool
}

// NewCube builds a width × height × depth box centred on position.
func NewCube(width, height, depth float32, position mgl32.Vec3) *Cube {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}

	data := graphics.MeshData{
		Positions: make([]float32, 0, 36*3),
		Normals:   make([]float32, 0, 36*3),
	}
	for _, f := range cubeFaces {
		for _, idx := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[idx]
			data.Positions = append(data.Positions, c[0]*half[0], c[1]*half[1], c[2]*half[2])
			data.Normals = append(data.Normals, f.normal[:]...)
		}
	}
	data.Colors = solidColors(36, CubeColor)

	return &Cube{meshItem: newMeshItem(mgl32.Translate3D(position[0], position[1], position[2]), data)}
}

// Position returns the cube centre in scene space.
func (c *Cube) Position() mgl32.Vec3 {
	return c.model.Col(3).Vec3()
}

// SetHighlighted switches between the idle and found colours.
func (c *Cube) SetHighlighted(on bool) {
	if on == c.highlighted {
		return
	}
	c.highlighted = on
	if on {
		c.fillColor(CubeFoundColor)
	} else {
		c.fillColor(CubeColor)
	}
}

func (c *Cube) Highlighted() bool {
	return c.highlighted
}
