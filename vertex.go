package losange

const (
	X = 0
	Y = 1
	Z = 2
	W = 3
)

// Vertex is a small float32 vector. Positions use all four components,
// colors use the first three as R, G and B.
type Vertex []float32

func (v1 *Vertex) Sum(v2 *Vertex) {
	for index := range *v1 {
		(*v1)[index] += (*v2)[index]
	}
}

func (v1 *Vertex) Scale(factor float32) {
	for index := range *v1 {
		(*v1)[index] *= factor
	}
}

func (v1 *Vertex) Dot(v2 *Vertex) (result float32) {
	for index, component := range *v1 {
		result += component * (*v2)[index]
	}

	return
}

func (v1 *Vertex) CrossProduct(v2 *Vertex) float32 {
	return (*v1)[X]*(*v2)[Y] - (*v1)[Y]*(*v2)[X]
}

func (v1 *Vertex) Interpolate(v2 *Vertex, factor float32) {
	for index, component := range *v1 {
		(*v1)[index] = component*(1-factor) + (*v2)[index]*factor
	}
}

// ScreenSpace maps a normalized device coordinate onto a width by height
// pixel grid, with y growing downwards.
func (v1 *Vertex) ScreenSpace(width, height int) {
	(*v1)[X] = ((*v1)[X] + 1) * float32(width) / 2
	(*v1)[Y] = (-(*v1)[Y] + 1) * float32(height) / 2
}

// Normalize performs the perspective division. The quad program always
// emits w = 1, so this is an identity step there, but the rasterizer
// stays correct for any homogeneous input.
func (v1 *Vertex) Normalize() {
	var homogeneous float32 = 1 / (*v1)[W]

	(*v1)[X] *= homogeneous
	(*v1)[Y] *= homogeneous
	(*v1)[Z] *= homogeneous
}

func (v1 *Vertex) Swap(v2 *Vertex) {
	var temporary Vertex = *v1
	*v1 = *v2
	*v2 = temporary
}

func (v1 *Vertex) Copy() Vertex {
	var copiedVertex Vertex = make(Vertex, len(*v1))
	copy(copiedVertex, *v1)

	return copiedVertex
}
