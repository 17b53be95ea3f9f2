// Package task defines context-aware effectful computations and the trivial
// sequential/parallel combinators over them.
//
// Example:
//
//	resolve := task.From(func(ctx context.Context) (*url.URL, error) {
//		return client.Resolve(ctx, target)
//	})
//	hrefTask := task.Map(resolve, (*url.URL).String)
package task

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Task represents a computation that can be executed with a context.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps an arbitrary context-aware function into a Task.
//
// Example:
//
//	fetch := task.From(repo.Load)
//	value, err := fetch(ctx)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure lifts a value into a Task that respects cancellation.
func Pure[T any](value T) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// Fail creates a Task that immediately fails with err (or context error if
// err is nil).
func Fail[T any](err error) Task[T] {
	failureErr := err
	if failureErr == nil {
		failureErr = errors.New("task: nil error")
	}
	return func(ctx context.Context) (T, error) {
		var zero T
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		return zero, failureErr
	}
}

// Map transforms the Task result when it succeeds.
//
// Example:
//
//	getPath := task.Map(resolve, func(u *url.URL) string { return u.Path })
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	}
}

// FlatMap chains two Tasks.
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val)(ctx)
	}
}

// Timeout bounds the execution time of a Task.
//
// Example:
//
//	fast := task.Timeout(resolve, 500*time.Millisecond)
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctxWithTimeout)
	}
}

// Sequence runs tasks sequentially, failing fast on the first error.
//
// Example:
//
//	all := task.Sequence([]task.Task[string]{taskA, taskB})
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results := make([]T, 0, len(tasks))
		for _, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			val, err := t(ctx)
			if err != nil {
				return nil, err
			}
			results = append(results, val)
		}
		return results, nil
	}
}

// SequencePar executes all tasks concurrently, failing fast on the first error.
func SequencePar[T any](tasks []Task[T]) Task[[]T] {
	return TraverseParN(tasks, len(tasks), func(t Task[T]) Task[T] {
		return t
	})
}

// Traverse maps input values to Tasks and runs them sequentially.
func Traverse[A any, B any](items []A, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results := make([]B, 0, len(items))
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			val, err := fn(item)(ctx)
			if err != nil {
				return nil, err
			}
			results = append(results, val)
		}
		return results, nil
	}
}

// TraversePar executes fn for each input element concurrently.
//
// Example:
//
//	tasks := task.TraversePar(targets, func(t string) task.Task[*url.URL] {
//		return resolveTarget(t)
//	})
func TraversePar[A any, B any](items []A, fn func(A) Task[B]) Task[[]B] {
	return TraverseParN(items, len(items), fn)
}

// TraverseParN is a bounded parallel traversal that limits concurrency to n.
func TraverseParN[A any, B any](items []A, n int, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		if len(items) == 0 {
			return []B{}, nil
		}
		workers := clampParallelism(len(items), n)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		results := make([]B, len(items))
		jobs := make(chan workItem[A], len(items))
		errCh := make(chan error, 1)
		var wg sync.WaitGroup

		worker := func() {
			defer wg.Done()
			for job := range jobs {
				val, err := fn(job.item)(ctx)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}
				results[job.index] = val
			}
		}

		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go worker()
		}

		for idx, item := range items {
			jobs <- workItem[A]{index: idx, item: item}
		}
		close(jobs)
		wg.Wait()

		select {
		case err := <-errCh:
			return nil, err
		default:
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

type workItem[T any] struct {
	index int
	item  T
}

func clampParallelism(total, requested int) int {
	if requested <= 0 {
		return 1
	}
	if requested > total {
		return total
	}
	return requested
}
