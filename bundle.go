package losange

import "github.com/viterin/vek/vek32"

// Matrix is a flat row-major 4x4 matrix, multiplied with row vectors on
// the left so translation sits in the last row.
type Matrix []float32

func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// ScreenSpaceMatrix maps normalized device coordinates onto a width by
// height pixel grid in one multiply, y flipped so it grows downwards.
func ScreenSpaceMatrix(width, height int) Matrix {
	return Matrix{
		float32(width) / 2, 0, 0, 0,
		0, -float32(height) / 2, 0, 0,
		0, 0, 1, 0,
		float32(width) / 2, float32(height) / 2, 0, 1,
	}
}

func (m1 *Matrix) MultiplyMatrix(m2 *Matrix) {
	*m1 = vek32.Mat4Mul(*m1, *m2)
}

// VertexBundle is a flat buffer of four-component vertices, sized so the
// whole vertex stage output of a draw can be transformed in one bulk
// matrix multiply.
type VertexBundle struct {
	length int
	buffer []float32
}

// NewVertexBundle preallocates room for count vertices. Every invocation
// of the vertex stage owns one disjoint slot, so workers write without
// locking.
func NewVertexBundle(count int) *VertexBundle {
	return &VertexBundle{
		length: 4,
		buffer: make([]float32, count*4),
	}
}

// Store writes one vertex into its slot.
func (bundle *VertexBundle) Store(index int, vertex Vertex) {
	copy(bundle.buffer[index*bundle.length:index*bundle.length+bundle.length], vertex)
}

// Vertex returns a view of one slot.
func (bundle *VertexBundle) Vertex(index int) Vertex {
	return bundle.buffer[index*bundle.length : index*bundle.length+bundle.length]
}

// Count is the number of vertices held.
func (bundle *VertexBundle) Count() int {
	return len(bundle.buffer) / bundle.length
}

// Transform multiplies every vertex by the matrix in one SIMD pass.
func (bundle *VertexBundle) Transform(matrix Matrix) {
	bundle.buffer = vek32.MatMul(bundle.buffer, matrix, bundle.length)
}
