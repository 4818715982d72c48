// Package worker runs a fixed set of independent tasks in parallel and waits
// for all of them.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// Task is one unit of work. It receives its own index and must only write to
// state owned by that index.
type Task func(index int) error

// ForkJoin starts n goroutines, one per index in [0, n), and returns once all
// of them have finished.
//
// ctx is only consulted before anything is started; once launched, every
// task runs to completion. The errors of all failed tasks are combined, in
// index order, into one error. A panicking task is reported as
// errs.ErrWorkerPanic rather than crashing the process.
func ForkJoin(ctx context.Context, n int, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	results := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = fmt.Errorf("%w: task %d: %v", errs.ErrWorkerPanic, i, r)
				}
			}()

			results[i] = task(i)
		}()
	}
	wg.Wait()

	var result *multierror.Error
	for _, err := range results {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
