package losange

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/cpuid/v2"
)

// Logger appends framerate samples to a results tree keyed by the CPU
// brand string, the topology and the core count, so benchmark runs from
// different machines land in separate files.
type Logger struct {
	File *os.File

	CurrentFPS float64
}

func NewLogger(directory string, topology Topology, cores int) (*Logger, error) {
	var path string = filepath.Join(directory, cpuid.CPU.BrandName, topology.String())

	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, err
	}

	path = filepath.Join(path, strconv.Itoa(cores)+".txt")

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return &Logger{File: file}, nil
}

// Log writes a sample when the framerate actually changed.
func (logger *Logger) Log(framerate float64) {
	if math.Floor(framerate) > 0 && logger.CurrentFPS != framerate {
		logger.CurrentFPS = framerate
		logger.File.WriteString(fmt.Sprintln(framerate))
	}
}

func (logger *Logger) Close() error {
	return logger.File.Close()
}
