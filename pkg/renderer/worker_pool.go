package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/scene"
)

// PatchTask represents one patch of one pass for the worker pool
type PatchTask struct {
	Patch  *Patch
	Pass   int
	TaskID int
}

// PatchResult contains the result from rendering a patch
type PatchResult struct {
	TaskID      int
	Pass        int
	PrimaryRays int
}

// WorkerPool manages parallel patch rendering into a shared accumulation buffer
type WorkerPool struct {
	taskQueue   chan PatchTask
	resultQueue chan PatchResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders patches taken from the pool's task queue
type Worker struct {
	ID          int
	scene       *scene.Scene
	accum       []core.Color3
	width       int
	taskQueue   chan PatchTask
	resultQueue chan PatchResult
}

// NewWorkerPool creates a worker pool writing into accum, a row-major buffer
// of the given width. maxTasks bounds the number of tasks in flight.
func NewWorkerPool(s *scene.Scene, accum []core.Color3, width, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan PatchTask, maxTasks),
		resultQueue: make(chan PatchResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       s,
			accum:       accum,
			width:       width,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a patch task to the worker pool
func (wp *WorkerPool) SubmitTask(task PatchTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed patch result
func (wp *WorkerPool) GetResult() (PatchResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Patches have disjoint bounds, so writes to the shared buffer never overlap
		rays := renderPatch(w.scene, task.Patch, w.accum, w.width)

		w.resultQueue <- PatchResult{
			TaskID:      task.TaskID,
			Pass:        task.Pass,
			PrimaryRays: rays,
		}
	}
}
