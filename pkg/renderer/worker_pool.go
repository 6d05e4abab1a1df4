package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile *Tile
}

// PixelResult is the color of one pixel at its absolute y-up coordinate
type PixelResult struct {
	X, Y  int
	Color core.Vec3
}

// WorkerPool renders tiles in parallel over a shared, read-only scene.
// All workers send pixel results into a single channel.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	scene       *scene.Scene
	params      scene.Params
	taskQueue   chan TileTask
	resultQueue chan PixelResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(s *scene.Scene, params scene.Params, numTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, numTiles), // Submitting never blocks
		resultQueue: make(chan PixelResult, numWorkers*64),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       s,
			params:      params,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Workers abandon their tiles when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Close signals that no more tasks will be submitted. The result channel is
// closed once every worker has finished.
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// Results returns the channel all workers send pixel results to
func (wp *WorkerPool) Results() <-chan PixelResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if !w.renderTile(ctx, task.Tile) {
			return
		}
	}
}

// renderTile sends one result per pixel in the tile; false means ctx was cancelled
func (w *Worker) renderTile(ctx context.Context, tile *Tile) bool {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			result := PixelResult{X: x, Y: y, Color: PixelColor(w.scene, w.params, x, y)}

			select {
			case w.resultQueue <- result:
			case <-ctx.Done():
				return false
			}
		}
	}
	return true
}
