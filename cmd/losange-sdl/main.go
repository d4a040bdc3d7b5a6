package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/amelie-qqch/losange"
)

var (
	width      = flag.Int("width", 640, "framebuffer width")
	height     = flag.Int("height", 360, "framebuffer height")
	cores      = flag.Int("cores", runtime.NumCPU(), "worker goroutines")
	topology   = flag.String("topology", "fan", "primitive topology: list, strip or fan")
	palette    = flag.String("palette", "", "palette YAML file, empty for the default palette")
	bench      = flag.String("bench", "", "directory for framerate logs, empty to disable")
	iterations = flag.Int("iterations", 0, "stop after this many frames, 0 to run until quit")
)

func main() {
	flag.Parse()

	parsedTopology, err := losange.ParseTopology(*topology)
	if err != nil {
		log.Fatal(err)
	}

	var colors losange.Palette

	if *palette != "" {
		if colors, err = losange.LoadPalette(*palette); err != nil {
			log.Fatal(err)
		}
	}

	pipeline, err := losange.NewPipeline(losange.Config{
		Width:    *width,
		Height:   *height,
		Cores:    *cores,
		Topology: parsedTopology,
		Palette:  colors,
	})

	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("Losange", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(*width), int32(*height), sdl.WINDOW_SHOWN)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		panic(err)
	}

	var frameBuffer *losange.Buffer = losange.WrapFrame(surface.Pixels(),
		*width, *height, int(surface.Pitch), surface.BytesPerPixel(), losange.OrderBGRA)

	var logger *losange.Logger

	if *bench != "" {
		if logger, err = losange.NewLogger(*bench, parsedTopology, *cores); err != nil {
			log.Fatal(err)
		}

		defer logger.Close()
	}

	running := true

	var iteration int = 0
	currentTime := time.Now()

	for running {
		benchmark := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		frameBuffer.Clear(pipeline.Grid(), 16, 16, 16)
		pipeline.Draw(frameBuffer, losange.QuadVertexCount)

		window.UpdateSurface()

		if logger != nil {
			logger.Log(1 / time.Since(benchmark).Seconds())
		}

		iteration++

		if *iterations > 0 && iteration >= *iterations {
			fmt.Println("\nTime Taken:", time.Since(currentTime).Milliseconds(), "Milliseconds")
			break
		}
	}
}
