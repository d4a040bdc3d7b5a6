package losange

import "testing"

func vertexEqual(v1, v2 Vertex) bool {
	if len(v1) != len(v2) {
		return false
	}

	for index := range v1 {
		if v1[index] != v2[index] {
			return false
		}
	}

	return true
}

func TestQuadProgramLiteral(t *testing.T) {
	program := QuadProgram(DefaultPalette())

	tests := []struct {
		index        uint32
		wantPosition Vertex
		wantColor    Vertex
	}{
		{0, Vertex{0, -.5, 0, 1}, Vertex{1, 0, 0}},
		{1, Vertex{.5, 0, 0, 1}, Vertex{0, 1, 0}},
		{2, Vertex{0, .5, 0, 1}, Vertex{0, 0, 1}},
		{3, Vertex{-.5, 0, 0, 1}, Vertex{1, 1, 1}},
	}

	for _, test := range tests {
		position, color := program.Vertex(test.index)

		if !vertexEqual(position, test.wantPosition) {
			t.Errorf("index %d: position = %v, want %v", test.index, position, test.wantPosition)
		}

		if !vertexEqual(color, test.wantColor) {
			t.Errorf("index %d: color = %v, want %v", test.index, color, test.wantColor)
		}
	}
}

func TestQuadProgramWraparound(t *testing.T) {
	program := QuadProgram(DefaultPalette())

	for _, index := range []uint32{4, 5} {
		position, color := program.Vertex(index)
		wantPosition, wantColor := program.Vertex(index % QuadVertexCount)

		if !vertexEqual(position, wantPosition) || !vertexEqual(color, wantColor) {
			t.Errorf("index %d does not wrap to index %d", index, index%QuadVertexCount)
		}
	}
}

func TestQuadProgramPeriodicity(t *testing.T) {
	program := QuadProgram(DefaultPalette())

	for index := uint32(0); index < 10000; index++ {
		position, color := program.Vertex(index)
		wantPosition, wantColor := program.Vertex(index % QuadVertexCount)

		if !vertexEqual(position, wantPosition) || !vertexEqual(color, wantColor) {
			t.Fatalf("index %d does not match index %d", index, index%QuadVertexCount)
		}
	}
}

func TestQuadProgramClipComponents(t *testing.T) {
	program := QuadProgram(EmberPalette())

	for index := uint32(0); index < 100; index++ {
		position, _ := program.Vertex(index)

		if position[Z] != 0 {
			t.Fatalf("index %d: z = %v, want 0", index, position[Z])
		}

		if position[W] != 1 {
			t.Fatalf("index %d: w = %v, want 1", index, position[W])
		}
	}
}

func TestQuadProgramDeterminism(t *testing.T) {
	program := QuadProgram(DefaultPalette())

	for frame := 0; frame < 3; frame++ {
		for index := uint32(0); index < QuadVertexCount; index++ {
			first, firstColor := program.Vertex(index)
			second, secondColor := program.Vertex(index)

			if !vertexEqual(first, second) || !vertexEqual(firstColor, secondColor) {
				t.Fatalf("index %d drifted between invocations", index)
			}
		}
	}
}

func TestQuadProgramColorIsCopied(t *testing.T) {
	palette := DefaultPalette()
	program := QuadProgram(palette)

	_, color := program.Vertex(0)
	color[X] = 0

	if palette[0][X] != 1 {
		t.Fatal("mutating an emitted color reached the palette table")
	}
}

func TestPassthroughFragment(t *testing.T) {
	color := Vertex{.25, .5, .75}

	if got := PassthroughFragment(color); !vertexEqual(got, color) {
		t.Errorf("PassthroughFragment(%v) = %v", color, got)
	}
}
