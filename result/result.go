// Package result provides a success/error abstraction similar to Go's (T, error).
//
// Example:
//
//	res := urlpath.FromPathname("/health").ToURL("https://samhh.com")
//	u, err := res.Unwrap()
//	_ = u
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) to
// make transformations predictable.
package result

import "errors"

// Result represents the outcome of a computation that may succeed with a value
// or fail with an error. It never panics except in Unsafe helpers.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok("/foo/baz")
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error automatically converts it
// into a descriptive placeholder to avoid silent successes.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	res := result.FromTuple(url.Parse(base))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// UnsafeUnwrap returns the underlying value or panics if the Result is an error.
// It should only be used where success has already been established.
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	u, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback using fn when the Result is an error.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// Map transforms the value on success.
//
// Example:
//
//	href := result.Map(res, (*url.URL).String)
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present. This is the hook for
// callers that want to replace a raw parse error with their own error value.
//
// Example:
//
//	res := result.MapErr(p.ToURL(base), func(err error) error {
//		return fmt.Errorf("bad redirect target: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil {
		return r
	}
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// FlatMap chains computations, propagating the first error.
//
// Example:
//
//	res := result.FlatMap(parseBase(raw), resolveAgainst(p))
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Fold collapses the Result into a single value.
//
// Example:
//
//	message := result.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(u *url.URL) string { return u.String() },
//	)
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Tap executes fn when the Result is Ok and returns the original Result.
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapErr executes fn when the Result is Err and returns the original Result.
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Traverse maps input values to Results and sequences them.
//
// Example:
//
//	res := result.Traverse(bases, func(b string) result.Result[*url.URL] {
//		return p.ToURL(b)
//	})
func Traverse[A any, B any](items []A, fn func(A) Result[B]) Result[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if res.err != nil {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok(values)
}

// Zip combines two results into one containing a pair of values, failing with
// the first error encountered.
func Zip[A any, B any](ra Result[A], rb Result[B]) Result[Tuple2[A, B]] {
	if ra.err != nil {
		return Err[Tuple2[A, B]](ra.err)
	}
	if rb.err != nil {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Ok(Tuple2[A, B]{First: ra.value, Second: rb.value})
}

// Tuple2 represents a pair of values.
type Tuple2[A any, B any] struct {
	First  A
	Second B
}
