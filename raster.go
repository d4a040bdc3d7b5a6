package losange

import (
	"github.com/chewxy/math32"
)

// Triangle is one assembled primitive in screen space, carrying the color
// emitted by the vertex stage at each corner.
type Triangle struct {
	Vertices [3]Vertex
	Colors   [3]Vertex
}

// ProcessedTriangle caches the spanning vectors, the inverse span and the
// clamped pixel bounds so the per-fragment work is two cross products.
type ProcessedTriangle struct {
	Triangle Triangle

	VS1, VS2 Vertex

	Span float32

	MinX, MinY, MaxX, MaxY int
}

func (triangle *Triangle) Span() (Vertex, Vertex) {
	return Vertex{triangle.Vertices[1][X] - triangle.Vertices[0][X], triangle.Vertices[1][Y] - triangle.Vertices[0][Y]},
		Vertex{triangle.Vertices[2][X] - triangle.Vertices[0][X], triangle.Vertices[2][Y] - triangle.Vertices[0][Y]}
}

func (triangle *Triangle) Bounds(width, height int) (minX, minY, maxX, maxY int) {
	minX = clamp(int(math32.Floor(math32.Min(triangle.Vertices[0][X], math32.Min(triangle.Vertices[1][X], triangle.Vertices[2][X])))), 0, width-1)
	minY = clamp(int(math32.Floor(math32.Min(triangle.Vertices[0][Y], math32.Min(triangle.Vertices[1][Y], triangle.Vertices[2][Y])))), 0, height-1)

	maxX = clamp(int(math32.Ceil(math32.Max(triangle.Vertices[0][X], math32.Max(triangle.Vertices[1][X], triangle.Vertices[2][X])))), 0, width-1)
	maxY = clamp(int(math32.Ceil(math32.Max(triangle.Vertices[0][Y], math32.Max(triangle.Vertices[1][Y], triangle.Vertices[2][Y])))), 0, height-1)

	return
}

// Process precomputes the rasterization state for one triangle. The
// second return is false for degenerate triangles, which cover no
// fragments and are dropped.
func Process(triangle Triangle, width, height int) (ProcessedTriangle, bool) {
	var vs1, vs2 Vertex = triangle.Span()
	var span float32 = vs1.CrossProduct(&vs2)

	if span == 0 {
		return ProcessedTriangle{}, false
	}

	var minX, minY, maxX, maxY int = triangle.Bounds(width, height)

	return ProcessedTriangle{
		triangle,
		vs1, vs2,
		1 / span,
		minX, minY, maxX, maxY,
	}, true
}

func (ts *ProcessedTriangle) Barycentric(x, y int) (float32, float32, float32) {
	var q Vertex = Vertex{float32(x) - ts.Triangle.Vertices[0][X], float32(y) - ts.Triangle.Vertices[0][Y]}

	var s float32 = q.CrossProduct(&ts.VS2) * ts.Span
	var t float32 = ts.VS1.CrossProduct(&q) * ts.Span

	return 1 - s - t, s, t
}

func (ts *ProcessedTriangle) Inside(x, y int) (bool, float32, float32, float32) {
	var u, s, t float32 = ts.Barycentric(x, y)

	return s >= 0 && t >= 0 && s+t <= 1, u, s, t
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}

	return value
}
