package graphics

import (
	_ "embed"
)

// GLSL sources are compiled into the binary so the demo runs from any directory.
var (
	//go:embed shaders/light.vert
	LightVertexShader string
	//go:embed shaders/grid.frag
	GridFragmentShader string
	//go:embed shaders/passthrough.frag
	PassthroughFragmentShader string
	//go:embed shaders/font.vert
	fontVertexShader string
	//go:embed shaders/font.frag
	fontFragmentShader string
)
