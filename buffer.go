package losange

import "sync"

// PixelOrder is the byte layout of one pixel in the framebuffer. Ebiten
// wants RGBA, SDL window surfaces are usually BGRA.
type PixelOrder int

const (
	OrderRGBA PixelOrder = iota
	OrderBGRA
)

// Buffer is the framebuffer the rasterizer writes into. It either owns
// its frame (NewBuffer) or wraps pixels owned by a window surface
// (WrapFrame).
type Buffer struct {
	Frame []byte

	Width, Height int

	Pitch         int
	BytesPerPixel int

	r, g, b int

	waitGroup sync.WaitGroup
}

// NewBuffer allocates an RGBA framebuffer of the given size.
func NewBuffer(width, height int) *Buffer {
	var buffer Buffer = Buffer{
		Frame:         make([]byte, width*height*4),
		Width:         width,
		Height:        height,
		Pitch:         width * 4,
		BytesPerPixel: 4,
	}

	buffer.r, buffer.g, buffer.b = channelOffsets(OrderRGBA)

	return &buffer
}

// WrapFrame adopts an externally owned frame, such as an SDL surface.
func WrapFrame(frame []byte, width, height, pitch, bytesPerPixel int, order PixelOrder) *Buffer {
	var buffer Buffer = Buffer{
		Frame:         frame,
		Width:         width,
		Height:        height,
		Pitch:         pitch,
		BytesPerPixel: bytesPerPixel,
	}

	buffer.r, buffer.g, buffer.b = channelOffsets(order)

	return &buffer
}

func channelOffsets(order PixelOrder) (r, g, b int) {
	if order == OrderBGRA {
		return 2, 1, 0
	}

	return 0, 1, 2
}

func (buffer *Buffer) Set(x, y int, r, g, b byte) {
	var position int = y*buffer.Pitch + x*buffer.BytesPerPixel

	buffer.Frame[position+buffer.r] = r
	buffer.Frame[position+buffer.g] = g
	buffer.Frame[position+buffer.b] = b
}

// At reads one pixel back as RGB bytes.
func (buffer *Buffer) At(x, y int) (r, g, b byte) {
	var position int = y*buffer.Pitch + x*buffer.BytesPerPixel

	return buffer.Frame[position+buffer.r], buffer.Frame[position+buffer.g], buffer.Frame[position+buffer.b]
}

func (buffer *Buffer) clearChunk(tx, ty, tileWidth, tileHeight int, r, g, b byte) {
	for y := ty; y < ty+tileHeight && y < buffer.Height; y++ {
		for x := tx; x < tx+tileWidth && x < buffer.Width; x++ {
			buffer.Set(x, y, r, g, b)
		}
	}

	buffer.waitGroup.Done()
}

// Clear fills the whole frame with one color, one goroutine per tile.
func (buffer *Buffer) Clear(grid *TileGrid, r, g, b byte) {
	for ty := 0; ty < buffer.Height; ty += grid.TileHeight {
		for tx := 0; tx < buffer.Width; tx += grid.TileWidth {
			buffer.waitGroup.Add(1)

			go buffer.clearChunk(tx, ty, grid.TileWidth, grid.TileHeight, r, g, b)
		}
	}

	buffer.waitGroup.Wait()
}
