package losange

// VertexShader maps one vertex index to a clip-space position and a color.
// It runs once per invocation and may not depend on any other invocation.
type VertexShader func(index uint32) (position, color Vertex)

// FragmentShader maps an interpolated color to the final fragment color.
type FragmentShader func(color Vertex) Vertex

// Program pairs the two programmable stages of the pipeline.
type Program struct {
	Vertex VertexShader

	Fragment FragmentShader
}

// quadPositions is the fixed geometry of the losange, one corner per
// vertex index, in normalized device coordinates.
var quadPositions = []Vertex{
	{0, -.5},
	{.5, 0},
	{0, .5},
	{-.5, 0},
}

// QuadVertexCount is the number of unique vertices in the losange.
const QuadVertexCount = 4

// QuadProgram builds the losange program: every index wraps around the
// position table, so any vertex count the host requests resolves to a
// valid corner. The position is emitted with z = 0 and w = 1, the color
// is copied verbatim from the palette.
func QuadProgram(palette Palette) Program {
	return Program{
		Vertex: func(index uint32) (Vertex, Vertex) {
			var corner uint32 = index % uint32(len(quadPositions))

			return Vertex{quadPositions[corner][X], quadPositions[corner][Y], 0, 1},
				palette[corner].Copy()
		},

		Fragment: PassthroughFragment,
	}
}

// PassthroughFragment writes the interpolated color unchanged.
func PassthroughFragment(color Vertex) Vertex {
	return color
}
