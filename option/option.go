// Package option implements a generic Option type for presence/absence semantics.
package option

import (
	"errors"
	"fmt"

	"github.com/jessekelly881/fpstd/result"
)

// Option represents presence or absence of a value of type T. The zero value is
// None, so Options can be embedded safely. Values are stored inline (no pointer
// boxing), which makes Some(nil) safe for nil-capable types; use IsSome to
// distinguish between absence and an explicit nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
//
// Example:
//
//	first := option.Some("d1")
//	fmt.Println(first.IsSome()) // true
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
//
// Example:
//
//	missing := option.None[string]()
//	fmt.Println(missing.IsNone()) // true
func None[T any]() Option[T] {
	return Option[T]{ok: false}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
//
// Example:
//
//	values, ok := record["key"]
//	opt := option.FromOk(values, ok)
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports true when the Option contains a value (even if that value is
// nil).
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
//
// Example:
//
//	value, ok := opt.Get()
//	if !ok {
//		return
//	}
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the contained value or panics when the Option is None. It
// should only be used where presence has already been established.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value when present, otherwise it returns the
// provided fallback value.
//
// Example:
//
//	host := params.LookupFirst("host").GetOrElse("localhost")
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc behaves like GetOrElse but lazily evaluates the fallback only
// when necessary.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns the Option itself when it is Some, otherwise returns other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// ToPtr converts the Option into a pointer, returning nil when None. The
// returned pointer references a copy of the stored value to preserve
// immutability.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// Filter keeps the value when predicate returns true, otherwise it becomes None.
//
// Example:
//
//	long := name.Filter(func(s string) bool { return len(s) > 3 })
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Fold collapses the Option into a single value by selecting onNone when the
// Option is empty or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the contained value with fn when present, returning a new
// Option of type U.
//
// Example:
//
//	length := option.Map(first, func(s string) int { return len(s) })
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Tap executes fn when the Option is Some and returns the original Option.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Sequence converts a slice of Options into an Option of a slice, returning
// None as soon as any element is absent.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Traverse maps input values to Options and sequences them.
//
// Example:
//
//	names := option.Traverse(raw, nonempty.FromString)
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// ToResult converts an Option into a Result, producing errFactory() when the
// Option is None. If errFactory returns nil the function wraps a descriptive
// error to avoid silent failures.
//
// Example:
//
//	res := opt.ToResult(func() error { return errors.New("key unset") })
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
