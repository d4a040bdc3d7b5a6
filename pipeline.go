package losange

import (
	"runtime"
	"sync"
)

// Config describes one pipeline. The zero value of Cores means one worker
// per CPU, a nil Palette means the default palette.
type Config struct {
	Width, Height int

	Cores int

	Topology Topology

	Palette Palette
}

// Pipeline owns the compiled program, the immutable lookup tables behind
// it and the tile grid. Nothing in it mutates after construction except
// the per-draw tile bins, so draws against different buffers from the
// same pipeline stay deterministic.
type Pipeline struct {
	program  Program
	topology Topology

	width, height int
	cores         int

	screenMatrix Matrix

	grid *TileGrid
}

// NewPipeline validates the configuration and compiles the quad program.
// Table validation happens here, before any invocation: the vertex stage
// itself is total and has no error path.
func NewPipeline(config Config) (*Pipeline, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, ErrBadSize
	}

	var palette Palette = config.Palette

	if palette == nil {
		palette = DefaultPalette()
	}

	if len(palette) != len(quadPositions) {
		return nil, ErrTableMismatch
	}

	if err := palette.validate(); err != nil {
		return nil, err
	}

	var cores int = config.Cores

	if cores <= 0 {
		cores = runtime.NumCPU()
	}

	return &Pipeline{
		program:      QuadProgram(palette),
		topology:     config.Topology,
		width:        config.Width,
		height:       config.Height,
		cores:        cores,
		screenMatrix: ScreenSpaceMatrix(config.Width, config.Height),
		grid:         NewTileGrid(config.Width, config.Height, cores),
	}, nil
}

func (pipeline *Pipeline) Grid() *TileGrid {
	return pipeline.grid
}

func (pipeline *Pipeline) Topology() Topology {
	return pipeline.topology
}

// Program exposes the compiled program, mainly so hosts can invoke the
// vertex stage directly.
func (pipeline *Pipeline) Program() Program {
	return pipeline.program
}

// Draw runs the vertex stage once per index in [0, vertexCount),
// assembles the results by the pipeline topology and rasterizes into the
// buffer. Any vertex count is legal: indices beyond the table length wrap
// inside the program.
func (pipeline *Pipeline) Draw(buffer *Buffer, vertexCount int) {
	pipeline.draw(buffer, vertexCount, nil)
}

// DrawIndexed runs the vertex stage once per entry of the index buffer,
// the way an indexed draw resolves indices before invoking the shader.
func (pipeline *Pipeline) DrawIndexed(buffer *Buffer, indices []uint32) {
	pipeline.draw(buffer, len(indices), indices)
}

func (pipeline *Pipeline) draw(buffer *Buffer, count int, indices []uint32) {
	if count <= 0 {
		return
	}

	var bundle *VertexBundle = NewVertexBundle(count)
	var colors []Vertex = make([]Vertex, count)

	// Every invocation writes only its own slot, so the vertex stage
	// needs no locking.
	var waitGroup sync.WaitGroup
	var chunk int = (count + pipeline.cores - 1) / pipeline.cores

	for start := 0; start < count; start += chunk {
		var end int = start + chunk

		if end > count {
			end = count
		}

		waitGroup.Add(1)

		go func(start, end int) {
			for invocation := start; invocation < end; invocation++ {
				var index uint32 = uint32(invocation)

				if indices != nil {
					index = indices[invocation]
				}

				position, color := pipeline.program.Vertex(index)
				position.Normalize()

				bundle.Store(invocation, position)
				colors[invocation] = color
			}

			waitGroup.Done()
		}(start, end)
	}

	waitGroup.Wait()

	bundle.Transform(pipeline.screenMatrix)

	for _, triple := range pipeline.topology.Assemble(count) {
		var triangle Triangle = Triangle{
			Vertices: [3]Vertex{bundle.Vertex(int(triple[0])), bundle.Vertex(int(triple[1])), bundle.Vertex(int(triple[2]))},
			Colors:   [3]Vertex{colors[triple[0]], colors[triple[1]], colors[triple[2]]},
		}

		if processed, ok := Process(triangle, pipeline.width, pipeline.height); ok {
			pipeline.grid.Add(&processed)
		}
	}

	for x := range pipeline.grid.Tiles {
		for y := range pipeline.grid.Tiles[x] {
			pipeline.grid.waitGroup.Add(1)

			go pipeline.grid.Tiles[x][y].Rasterize(buffer, pipeline.grid, pipeline.program.Fragment)
		}
	}

	pipeline.grid.waitGroup.Wait()
}
