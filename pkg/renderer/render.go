package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	ErrPixelOutOfRange = errors.New("pixel result outside the image")
	ErrDuplicatePixel  = errors.New("pixel result received twice")
)

// Config contains configuration for parallel rendering
type Config struct {
	TileSize   int  // Edge length of each tile (<= 0 uses DefaultTileSize)
	NumWorkers int  // Number of parallel workers (0 = use CPU count)
	Antialias  bool // Average 4 sub-pixel samples per pixel
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
		Antialias:  true,
	}
}

// Grid is the rendered image as height rows of width colors. Row 0 is the top
// of the image.
type Grid [][]core.Vec3

// NewGrid allocates a black width x height grid
func NewGrid(width, height int) Grid {
	grid := make(Grid, height)
	for row := range grid {
		grid[row] = make([]core.Vec3, width)
	}
	return grid
}

// Width returns the number of columns in the grid
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows in the grid
func (g Grid) Height() int {
	return len(g)
}

// Render traces every pixel of the scene on a pool of workers and gathers the
// results into a grid. The scene must not be modified while rendering.
func Render(ctx context.Context, s *scene.Scene, config Config, logger core.Logger) (Grid, RenderStats, error) {
	if logger == nil {
		logger = NopLogger{}
	}

	params, err := scene.Setup(s, config.Antialias)
	if err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	tiles := NewTileGrid(s.Width, s.Height, config.TileSize)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(s, params, len(tiles), config.NumWorkers)
	logger.Printf("Rendering %dx%d: %d tiles on %d workers...\n",
		s.Width, s.Height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile})
	}
	pool.Close()

	grid, err := collect(ctx, pool.Results(), s.Width, s.Height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := newRenderStats(s.Width, s.Height, config.Antialias, len(tiles), pool.GetNumWorkers())
	stats.Duration = time.Since(start)
	logger.Printf("Render complete: %s\n", stats)

	return grid, stats, nil
}

// collect receives exactly width*height pixel results in any order and writes
// each one into the grid with its row flipped so that row 0 is the top.
func collect(ctx context.Context, results <-chan PixelResult, width, height int) (Grid, error) {
	grid := NewGrid(width, height)
	written := make([]bool, width*height)
	total := width * height

	for received := 0; received < total; received++ {
		select {
		case result, ok := <-results:
			if !ok {
				return nil, fmt.Errorf("worker pool closed after %d of %d pixels", received, total)
			}
			if result.X < 0 || result.X >= width || result.Y < 0 || result.Y >= height {
				return nil, fmt.Errorf("(%d, %d): %w", result.X, result.Y, ErrPixelOutOfRange)
			}

			index := result.Y*width + result.X
			if written[index] {
				return nil, fmt.Errorf("(%d, %d): %w", result.X, result.Y, ErrDuplicatePixel)
			}
			written[index] = true

			grid[height-1-result.Y][result.X] = result.Color
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return grid, nil
}

// RenderSequential renders the scene on the calling goroutine, pixel by pixel.
// It produces the same grid as Render for the same scene and antialias flag.
func RenderSequential(s *scene.Scene, antialias bool, logger core.Logger) (Grid, RenderStats, error) {
	if logger == nil {
		logger = NopLogger{}
	}

	params, err := scene.Setup(s, antialias)
	if err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	logger.Printf("Rendering %dx%d sequentially...\n", s.Width, s.Height)

	grid := NewGrid(s.Width, s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			grid[s.Height-1-y][x] = PixelColor(s, params, x, y)
		}
	}

	stats := newRenderStats(s.Width, s.Height, antialias, 1, 1)
	stats.Duration = time.Since(start)
	logger.Printf("Render complete: %s\n", stats)

	return grid, stats, nil
}
