/*
File    : go-giulio/objects/future.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// FutureResult is the outcome of a completed async computation: exactly one
// of Value and Err is set.
type FutureResult struct {
	Value GiulioObject
	Err   *giuerrors.RuntimeError
}

// Future represents a pending async computation. It is a single-shot
// container: the inner computation is taken exactly once on await, and a
// second await fails. The computation runs in its own goroutine as soon as
// the future is spawned; Take hands out the channel carrying its result.
//
// Each future carries a uuid so tasks are distinguishable in debug output
// even though future values never compare equal.
type Future struct {
	ID string

	mu    sync.Mutex
	ch    chan FutureResult
	taken bool
}

// GetType returns the type of the Future object
func (f *Future) GetType() GiulioType {
	return FutureType
}

// ToString returns "[future]"
func (f *Future) ToString() string {
	return "[future]"
}

// ToObject returns a detailed representation including the task id
func (f *Future) ToObject() string {
	return fmt.Sprintf("<future(%s)>", f.ID)
}

// SpawnFuture starts run in its own goroutine and returns a future for its
// result. A panic inside run is lifted to an InvalidOperation runtime error
// and delivered on await, matching the behavior of a thrown value inside an
// async task.
func SpawnFuture(run func() FutureResult) *Future {
	fut := &Future{
		ID: uuid.NewString(),
		ch: make(chan FutureResult, 1),
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				fut.ch <- FutureResult{
					Err: giuerrors.NewInvalidOperation("Future panicked: %v", r),
				}
			}
		}()
		fut.ch <- run()
	}()
	return fut
}

// Take claims the future's one-shot result channel. The first call returns
// the channel and true; every later call returns nil and false, which the
// evaluator reports as awaiting an exhausted future.
func (f *Future) Take() (<-chan FutureResult, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.taken {
		return nil, false
	}
	f.taken = true
	return f.ch, true
}
