package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	PositionSize = 3
	NormalSize   = 3
	ColorSize    = 4
)

// MeshData is the CPU side of a mesh: flat, per-vertex attribute arrays.
type MeshData struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
}

// VertexCount returns the number of vertices described by Positions.
func (d MeshData) VertexCount() int {
	return len(d.Positions) / PositionSize
}

// Mesh owns a VAO with one VBO per attribute, bound at the RenderParams locations
type Mesh struct {
	vao       uint32
	vbos      [3]uint32
	vertCount int32
}

// NewMesh uploads data. Colours are stored with DYNAMIC_DRAW since the
// visualiser rewrites them every frame.
func NewMesh(data MeshData, params RenderParams) *Mesh {
	m := &Mesh{vertCount: int32(data.VertexCount())}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(3, &m.vbos[0])

	upload := func(vbo, loc uint32, size int32, values []float32, usage uint32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, gl.Ptr(values), usage)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, size*4, 0)
	}
	upload(m.vbos[0], params.Vertex, PositionSize, data.Positions, gl.STATIC_DRAW)
	upload(m.vbos[1], params.Normal, NormalSize, data.Normals, gl.STATIC_DRAW)
	upload(m.vbos[2], params.Color, ColorSize, data.Colors, gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// UpdatePositions replaces the position buffer; the vertex count must not change.
func (m *Mesh) UpdatePositions(positions []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[0])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, gl.Ptr(positions))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UpdateColors replaces the colour buffer in place.
func (m *Mesh) UpdateColors(colors []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[2])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*4, gl.Ptr(colors))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues the triangle draw call. Uniforms must already be set.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertCount)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbos[0] != 0 {
		gl.DeleteBuffers(3, &m.vbos[0])
		m.vbos = [3]uint32{}
	}
}
