// Package pool provides the bounded worker pool used for parallel API calls
// (image downloads, judge scoring).
package pool

import "sync"

type Completed[T any] struct {
	Result T
	Error  error
}

// Run consumes items from queue with at most maxWorkers goroutines and sends
// one Completed per item on the completed channel, which is closed once the
// queue is drained. The queue must already be closed by the caller.
func Run[In any, Out any](worker func(In) (Out, error), queue chan In, completed chan Completed[Out], maxWorkers int) {
	workers := min(len(queue), maxWorkers)
	if workers < 1 {
		workers = 1
	}

	go func() {
		wg := sync.WaitGroup{}
		wg.Add(workers)

		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()

				for next := range queue {
					res, err := worker(next)
					completed <- Completed[Out]{Result: res, Error: err}
				}
			}()
		}

		wg.Wait()
		close(completed)
	}()
}
