// Package systems holds long-lived engine services shared by the culling
// passes.
package systems

import (
	"fmt"
	"sync"

	"github.com/korkuveren/MARS/engine/core"
)

/** Definition for the body of a job. */
type JobStart func() error

/** Definition for the outcome callbacks of a job. */
type JobOnComplete func()
type JobOnFailure func(err error)

/**
 * @brief Describes a job to be run.
 */
type JobTask struct {
	/** @brief Invoked on a worker when the job starts. Required. */
	OnStart JobStart
	/** @brief Invoked when OnStart succeeds. Optional. */
	OnComplete JobOnComplete
	/** @brief Invoked with the error when OnStart fails. Optional. */
	OnFailure JobOnFailure
	/** @brief Invoked after either outcome. Optional. */
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}
	js.start()
	return js, nil
}

// Workers returns the number of worker goroutines.
func (js *JobSystem) Workers() int {
	return js.numWorkers
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				if err := job.OnStart(); err != nil {
					core.LogError("job failed: %s", err.Error())
					if job.OnFailure != nil {
						job.OnFailure(err)
					}
				} else if job.OnComplete != nil {
					job.OnComplete()
				}

				if job.OnCompletionCallback != nil {
					job.OnCompletionCallback()
				}
			}
		}()
	}
}

/**
 * @brief Shuts the job system down after the queued jobs have run.
 */
func (js *JobSystem) Shutdown() error {
	js.mutex.Lock()
	if js.isClosed {
		js.mutex.Unlock()
		return core.ErrNotInitialized
	}
	js.isClosed = true
	close(js.jobQueue)
	js.mutex.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 * @param jt The job to be executed.
 * @return core.ErrNotInitialized once the system was shut down.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	if js.isClosed {
		return core.ErrNotInitialized
	}
	js.jobQueue <- jt
	return nil
}
