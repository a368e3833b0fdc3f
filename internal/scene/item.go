package scene

import (
	"vrsualiser/internal/graphics"
	"vrsualiser/internal/vrmath"

	"github.com/go-gl/mathgl/mgl32"
)

// meshItem is the shared body of Cube, Triangle and Floor: CPU geometry, a
// model matrix, and a GPU mesh created on first draw.
type meshItem struct {
	model mgl32.Mat4
	data  graphics.MeshData
	mesh  *graphics.Mesh

	positionsDirty bool
	colorsDirty    bool
}

func newMeshItem(model mgl32.Mat4, data graphics.MeshData) meshItem {
	return meshItem{model: model, data: data}
}

func (m *meshItem) ModelMatrix() mgl32.Mat4 {
	return m.model
}

// SetModelMatrix replaces the item's local transform.
func (m *meshItem) SetModelMatrix(model mgl32.Mat4) {
	m.model = model
}

// Geometry returns the CPU-side vertex data.
func (m *meshItem) Geometry() graphics.MeshData {
	return m.data
}

func (m *meshItem) fillColor(c mgl32.Vec4) {
	for i := 0; i+graphics.ColorSize <= len(m.data.Colors); i += graphics.ColorSize {
		copy(m.data.Colors[i:i+graphics.ColorSize], c[:])
	}
	m.colorsDirty = true
}

func (m *meshItem) Draw(s *Scene) {
	if m.mesh == nil {
		m.mesh = graphics.NewMesh(m.data, s.Params)
		m.positionsDirty, m.colorsDirty = false, false
	}
	if m.positionsDirty {
		m.mesh.UpdatePositions(m.data.Positions)
		m.positionsDirty = false
	}
	if m.colorsDirty {
		m.mesh.UpdateColors(m.data.Colors)
		m.colorsDirty = false
	}

	model := s.Model.Mul4(m.model)
	modelView := vrmath.ModelView(s.View, model)
	mvp := vrmath.MVP(s.Perspective, s.View, model)
	s.Params.Upload(s.LightPosInEyeSpace, model, modelView, mvp)
	m.mesh.Draw()
}

func (m *meshItem) Dispose() {
	if m.mesh != nil {
		m.mesh.Dispose()
		m.mesh = nil
	}
}

func solidColors(n int, c mgl32.Vec4) []float32 {
	out := make([]float32, 0, n*graphics.ColorSize)
	for i := 0; i < n; i++ {
		out = append(out, c[:]...)
	}
	return out
}
