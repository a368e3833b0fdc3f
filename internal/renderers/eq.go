package renderers

import (
	"math"

	"vrsualiser/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

var _ Visualiser = (*EQRenderer)(nil)

// EQRenderer is a box of triangles around a centre point; each face lights
// up with the loudness of one FFT bin, like the bars of a digital EQ.
type EQRenderer struct {
	Base
	faces []*scene.Triangle

	size      int
	flat      [][3]mgl32.Vec3 // grid layout before any sphere projection
	spherical bool
}

// NewEQRenderer builds a (2·size)³ box of unit cells, scaled and moved to
// centre, and adds every face to the scene. With size 1 there are 48 faces.
func NewEQRenderer(s *scene.Scene, size int, centre mgl32.Vec3, scale float32, spherify bool) *EQRenderer {
	r := &EQRenderer{Base: NewBase(s), size: size, flat: gridFaces(size)}
	model := mgl32.Translate3D(centre[0], centre[1], centre[2]).Mul4(mgl32.Scale3D(scale, scale, scale))

	for _, tri := range r.flat {
		face := scene.NewTriangle(tri[0], tri[1], tri[2])
		face.SetModelMatrix(model)
		r.faces = append(r.faces, face)
		s.Add(face)
	}
	r.SetSpherify(spherify)
	return r
}

// SetSpherify switches the faces between the flat box and its projection
// onto a sphere of the same half-extent.
func (r *EQRenderer) SetSpherify(on bool) {
	if on == r.spherical {
		return
	}
	r.spherical = on
	k := float32(r.size)
	for i, face := range r.faces {
		tri := r.flat[i]
		if on {
			for j := range tri {
				tri[j] = Spherify(tri[j].Mul(1 / k)).Mul(k)
			}
		}
		face.SetVertices(tri)
	}
}

// Spherified reports whether the faces are projected onto the sphere.
func (r *EQRenderer) Spherified() bool {
	return r.spherical
}

// Faces returns the triangles in bin order.
func (r *EQRenderer) Faces() []*scene.Triangle {
	return r.faces
}

// UpdateFFT recolours every face from the capture.
func (r *EQRenderer) UpdateFFT(fft []byte) {
	r.Base.UpdateFFT(fft)
	for i, level := range FaceLevels(fft, len(r.faces)) {
		r.faces[i].SetColor(LevelColor(level))
	}
}

// gridFaces lays out the six sides of the box, two triangles per unit cell.
func gridFaces(size int) [][3]mgl32.Vec3 {
	s := float32(size)
	var faces [][3]mgl32.Vec3
	for xi := -size; xi < size; xi++ {
		for yi := -size; yi < size; yi++ {
			x, y := float32(xi), float32(yi)
			faces = append(faces,
				// top
				[3]mgl32.Vec3{{x, s, y}, {x + 1, s, y}, {x + 1, s, y + 1}},
				[3]mgl32.Vec3{{x, s, y}, {x, s, y + 1}, {x + 1, s, y + 1}},
				// bottom
				[3]mgl32.Vec3{{x + 1, -s, y + 1}, {x + 1, -s, y}, {x, -s, y}},
				[3]mgl32.Vec3{{x + 1, -s, y + 1}, {x, -s, y + 1}, {x, -s, y}},
				// left
				[3]mgl32.Vec3{{-s, x, y}, {-s, x, y + 1}, {-s, x + 1, y}},
				[3]mgl32.Vec3{{-s, x + 1, y}, {-s, x, y + 1}, {-s, x + 1, y + 1}},
				// right
				[3]mgl32.Vec3{{s, x, y}, {s, x, y + 1}, {s, x + 1, y}},
				[3]mgl32.Vec3{{s, x + 1, y + 1}, {s, x, y + 1}, {s, x + 1, y}},
				// back
				[3]mgl32.Vec3{{x, y, -s}, {x + 1, y, -s}, {x, y + 1, -s}},
				[3]mgl32.Vec3{{x + 1, y + 1, -s}, {x + 1, y, -s}, {x, y + 1, -s}},
				// front
				[3]mgl32.Vec3{{x, y, s}, {x + 1, y, s}, {x, y + 1, s}},
				[3]mgl32.Vec3{{x + 1, y + 1, s}, {x + 1, y, s}, {x, y + 1, s}},
			)
		}
	}
	return faces
}

// Spherify maps a point on the surface of the cube [-1,1]³ onto the unit sphere
// with the area-preserving cube-to-sphere projection.
func Spherify(v mgl32.Vec3) mgl32.Vec3 {
	x2, y2, z2 := float64(v[0]*v[0]), float64(v[1]*v[1]), float64(v[2]*v[2])
	return mgl32.Vec3{
		v[0] * float32(math.Sqrt(1-y2/2-z2/2+y2*z2/3)),
		v[1] * float32(math.Sqrt(1-z2/2-x2/2+z2*x2/3)),
		v[2] * float32(math.Sqrt(1-x2/2-y2/2+x2*y2/3)),
	}
}
