package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/amelie-qqch/losange"
)

var (
	width    = flag.Int("width", 640, "framebuffer width")
	height   = flag.Int("height", 360, "framebuffer height")
	cores    = flag.Int("cores", runtime.NumCPU(), "worker goroutines")
	topology = flag.String("topology", "fan", "primitive topology: list, strip or fan")
	palette  = flag.String("palette", "", "palette YAML file, empty for the default palette")
	bench    = flag.String("bench", "", "directory for framerate logs, empty to disable")
)

type Game struct {
	pipeline *losange.Pipeline
	buffer   *losange.Buffer

	palettes []losange.Palette
	current  int

	logger *losange.Logger
}

func (game *Game) Update() error {
	// 1 and 2 switch between the built-in palettes; the geometry table
	// never changes.
	if inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.Key2) {
		var selected int = 0

		if inpututil.IsKeyJustPressed(ebiten.Key2) {
			selected = 1
		}

		if selected != game.current && selected < len(game.palettes) {
			pipeline, err := losange.NewPipeline(losange.Config{
				Width:    *width,
				Height:   *height,
				Cores:    *cores,
				Topology: game.pipeline.Topology(),
				Palette:  game.palettes[selected],
			})

			if err != nil {
				return err
			}

			game.pipeline = pipeline
			game.current = selected
		}
	}

	return nil
}

func (game *Game) Draw(screen *ebiten.Image) {
	game.buffer.Clear(game.pipeline.Grid(), 16, 16, 16)
	game.pipeline.Draw(game.buffer, losange.QuadVertexCount)

	screen.WritePixels(game.buffer.Frame)

	if game.logger != nil {
		game.logger.Log(ebiten.ActualFPS())
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS - %s", ebiten.ActualFPS(), game.pipeline.Topology()))
}

func (game *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return *width, *height
}

func main() {
	flag.Parse()

	parsedTopology, err := losange.ParseTopology(*topology)
	if err != nil {
		log.Fatal(err)
	}

	var palettes []losange.Palette = []losange.Palette{losange.DefaultPalette(), losange.EmberPalette()}

	if *palette != "" {
		loaded, err := losange.LoadPalette(*palette)
		if err != nil {
			log.Fatal(err)
		}

		palettes[0] = loaded
	}

	pipeline, err := losange.NewPipeline(losange.Config{
		Width:    *width,
		Height:   *height,
		Cores:    *cores,
		Topology: parsedTopology,
		Palette:  palettes[0],
	})

	if err != nil {
		log.Fatal(err)
	}

	var game Game = Game{
		pipeline: pipeline,
		buffer:   losange.NewBuffer(*width, *height),
		palettes: palettes,
	}

	if *bench != "" {
		logger, err := losange.NewLogger(*bench, parsedTopology, *cores)
		if err != nil {
			log.Fatal(err)
		}

		defer logger.Close()
		game.logger = logger
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Losange")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game); err != nil {
		log.Fatal(err)
	}
}
