package scene

import (
	"vrsualiser/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

const floorHalfExtent = 200

var FloorColor = mgl32.Vec4{0, 0.3398, 0.9023, 1}

// Floor is a large quad below the user; the grid fragment shader draws lines
// on it from world coordinates.
type Floor struct {
	meshItem
}

// NewFloor places the floor depth units below the origin.
func NewFloor(depth float32) *Floor {
	const e = floorHalfExtent
	data := graphics.MeshData{
		Positions: []float32{
			e, 0, -e, -e, 0, -e, -e, 0, e,
			e, 0, -e, -e, 0, e, e, 0, e,
		},
		Normals: []float32{
			0, 1, 0, 0, 1, 0, 0, 1, 0,
			0, 1, 0, 0, 1, 0, 0, 1, 0,
		},
		Colors: solidColors(6, FloorColor),
	}
	return &Floor{meshItem: newMeshItem(mgl32.Translate3D(0, -depth, 0), data)}
}
