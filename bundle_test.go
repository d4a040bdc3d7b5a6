package losange

import "testing"

func TestScreenSpaceMatrix(t *testing.T) {
	matrix := ScreenSpaceMatrix(128, 128)

	tests := []struct {
		name  string
		clip  Vertex
		wantX float32
		wantY float32
	}{
		{"bottom corner", Vertex{0, -.5, 0, 1}, 64, 96},
		{"right corner", Vertex{.5, 0, 0, 1}, 96, 64},
		{"top corner", Vertex{0, .5, 0, 1}, 64, 32},
		{"left corner", Vertex{-.5, 0, 0, 1}, 32, 64},
		{"origin", Vertex{0, 0, 0, 1}, 64, 64},
	}

	bundle := NewVertexBundle(len(tests))

	for index, test := range tests {
		bundle.Store(index, test.clip)
	}

	bundle.Transform(matrix)

	for index, test := range tests {
		transformed := bundle.Vertex(index)

		if transformed[X] != test.wantX || transformed[Y] != test.wantY {
			t.Errorf("%s = (%v, %v), want (%v, %v)",
				test.name, transformed[X], transformed[Y], test.wantX, test.wantY)
		}

		if transformed[W] != 1 {
			t.Errorf("%s: w = %v, want 1", test.name, transformed[W])
		}
	}
}

func TestScreenSpaceMatchesVertex(t *testing.T) {
	matrix := ScreenSpaceMatrix(64, 32)

	bundle := NewVertexBundle(1)
	bundle.Store(0, Vertex{.25, -.75, 0, 1})
	bundle.Transform(matrix)

	direct := Vertex{.25, -.75, 0, 1}
	direct.ScreenSpace(64, 32)

	bulk := bundle.Vertex(0)

	if bulk[X] != direct[X] || bulk[Y] != direct[Y] {
		t.Errorf("bulk transform (%v, %v) differs from ScreenSpace (%v, %v)",
			bulk[X], bulk[Y], direct[X], direct[Y])
	}
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	matrix := ScreenSpaceMatrix(128, 128)
	identity := IdentityMatrix()

	matrix.MultiplyMatrix(&identity)

	want := ScreenSpaceMatrix(128, 128)

	for index := range want {
		if matrix[index] != want[index] {
			t.Fatalf("matrix[%d] = %v, want %v", index, matrix[index], want[index])
		}
	}
}

func TestVertexBundleSlots(t *testing.T) {
	bundle := NewVertexBundle(3)

	if bundle.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", bundle.Count())
	}

	bundle.Store(1, Vertex{1, 2, 3, 4})

	if got := bundle.Vertex(1); !vertexEqual(got, Vertex{1, 2, 3, 4}) {
		t.Errorf("Vertex(1) = %v", got)
	}

	if got := bundle.Vertex(0); !vertexEqual(got, Vertex{0, 0, 0, 0}) {
		t.Errorf("Vertex(0) = %v, want zero slot", got)
	}
}
