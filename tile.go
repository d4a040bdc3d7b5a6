package losange

import "sync"

// Tile is one rectangular region of the framebuffer with the triangles
// binned to it for the current draw.
type Tile struct {
	X, Y int

	Triangles []ProcessedTriangle
}

// TileGrid splits the framebuffer into one tile per core. Tiles render
// concurrently; their framebuffer regions are disjoint, so the only
// synchronization is the binning mutex and the draw wait group.
type TileGrid struct {
	TilesX, TilesY        int
	TileWidth, TileHeight int

	Tiles [][]Tile

	mutex     sync.Mutex
	waitGroup sync.WaitGroup
}

// NewTileGrid builds a grid whose tile count matches the core count,
// split as close to square as the factorization allows.
func NewTileGrid(width, height, cores int) *TileGrid {
	var tilesX, tilesY int = splitGrid(cores)

	var grid TileGrid = TileGrid{
		TilesX:     tilesX,
		TilesY:     tilesY,
		TileWidth:  (width + tilesX - 1) / tilesX,
		TileHeight: (height + tilesY - 1) / tilesY,
	}

	grid.Tiles = make([][]Tile, tilesX)

	for x := range grid.Tiles {
		grid.Tiles[x] = make([]Tile, tilesY)

		for y := range grid.Tiles[x] {
			grid.Tiles[x][y] = Tile{X: x * grid.TileWidth, Y: y * grid.TileHeight}
		}
	}

	return &grid
}

func splitGrid(cores int) (int, int) {
	if cores < 1 {
		cores = 1
	}

	var rows int = 1

	for factor := 1; factor*factor <= cores; factor++ {
		if cores%factor == 0 {
			rows = factor
		}
	}

	return cores / rows, rows
}

// Add bins a processed triangle into every tile its bounds touch.
func (grid *TileGrid) Add(triangle *ProcessedTriangle) {
	var xMin int = clamp(triangle.MinX/grid.TileWidth, 0, grid.TilesX-1)
	var yMin int = clamp(triangle.MinY/grid.TileHeight, 0, grid.TilesY-1)
	var xMax int = clamp(triangle.MaxX/grid.TileWidth, 0, grid.TilesX-1)
	var yMax int = clamp(triangle.MaxY/grid.TileHeight, 0, grid.TilesY-1)

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			grid.mutex.Lock()
			grid.Tiles[x][y].Triangles = append(grid.Tiles[x][y].Triangles, *triangle)
			grid.mutex.Unlock()
		}
	}
}

// Rasterize renders every binned triangle of one tile into the buffer and
// empties the bin.
func (tile *Tile) Rasterize(buffer *Buffer, grid *TileGrid, fragment FragmentShader) {
	var xMax int = tile.X + grid.TileWidth - 1
	var yMax int = tile.Y + grid.TileHeight - 1

	for index := range tile.Triangles {
		var triangle *ProcessedTriangle = &tile.Triangles[index]

		var minX int = clamp(triangle.MinX, tile.X, xMax)
		var minY int = clamp(triangle.MinY, tile.Y, yMax)
		var maxX int = clamp(triangle.MaxX, tile.X, xMax)
		var maxY int = clamp(triangle.MaxY, tile.Y, yMax)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if inside, u, s, t := triangle.Inside(x, y); inside {
					var color Vertex = Vertex{
						u*triangle.Triangle.Colors[0][X] + s*triangle.Triangle.Colors[1][X] + t*triangle.Triangle.Colors[2][X],
						u*triangle.Triangle.Colors[0][Y] + s*triangle.Triangle.Colors[1][Y] + t*triangle.Triangle.Colors[2][Y],
						u*triangle.Triangle.Colors[0][Z] + s*triangle.Triangle.Colors[1][Z] + t*triangle.Triangle.Colors[2][Z],
					}

					color = fragment(color)

					buffer.Set(x, y, byte(color[X]*255), byte(color[Y]*255), byte(color[Z]*255))
				}
			}
		}
	}

	tile.Triangles = tile.Triangles[:0]

	grid.waitGroup.Done()
}
