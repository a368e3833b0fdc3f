package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// RenderParams carries the uniform and attribute locations of the shared
// scene program. It is built once after linking and never changes.
type RenderParams struct {
	Program uint32

	LightPos            int32
	ModelLocal          int32
	ModelView           int32
	ModelViewProjection int32

	Vertex uint32
	Normal uint32
	Color  uint32
}

// NewRenderParams looks up every location the scene shaders use. An attribute
// the linker optimised out is an error: binding location -1 would fail later.
func NewRenderParams(s *Shader) (RenderParams, error) {
	p := RenderParams{
		Program:             s.ID,
		LightPos:            s.uniform("u_LightPos"),
		ModelLocal:          s.uniform("u_Model"),
		ModelView:           s.uniform("u_MVMatrix"),
		ModelViewProjection: s.uniform("u_MVP"),
	}
	var err error
	if p.Vertex, err = attribLocation("a_Position", s.attrib("a_Position")); err != nil {
		return RenderParams{}, err
	}
	if p.Normal, err = attribLocation("a_Normal", s.attrib("a_Normal")); err != nil {
		return RenderParams{}, err
	}
	if p.Color, err = attribLocation("a_Color", s.attrib("a_Color")); err != nil {
		return RenderParams{}, err
	}
	return p, nil
}

func attribLocation(name string, loc int32) (uint32, error) {
	if loc < 0 {
		return 0, fmt.Errorf("attribute %s not active in program", name)
	}
	return uint32(loc), nil
}

// Upload sets the per-item uniforms.
func (p RenderParams) Upload(lightPos mgl32.Vec3, model, modelView, mvp mgl32.Mat4) {
	gl.Uniform3fv(p.LightPos, 1, &lightPos[0])
	gl.UniformMatrix4fv(p.ModelLocal, 1, false, &model[0])
	gl.UniformMatrix4fv(p.ModelView, 1, false, &modelView[0])
	gl.UniformMatrix4fv(p.ModelViewProjection, 1, false, &mvp[0])
}
