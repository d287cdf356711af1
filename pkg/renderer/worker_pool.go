package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

// RowTask asks a worker to shade one image row
type RowTask struct {
	Row    int
	Buffer *PixelBuffer // Shared buffer; each row has exactly one writer
}

// RowResult reports a finished row back to the collector
type RowResult struct {
	Row     int
	Samples int
}

// WorkerPool manages parallel row rendering. Rows are handed out through a
// shared channel so faster workers pick up more rows.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker shades rows pulled from the task queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool sized for numRows rows. A non-positive
// numWorkers uses one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, numRows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, numRows),   // Buffer for every row
		resultQueue: make(chan RowResult, numRows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row draws from its own stream so the image does not depend on
		// which worker rendered it
		sampler := core.NewSeededSampler(rowSeed(w.raytracer.sampling.Seed, task.Row))
		samples := w.raytracer.renderRow(task.Row, task.Buffer, sampler)

		w.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}

// rowSeed derives the random seed for one row
func rowSeed(seed int64, row int) int64 {
	return seed*1_000_003 + int64(row) + 42
}
