package option_test

import (
	"errors"
	"testing"

	"github.com/jessekelly881/fpstd/option"
)

func TestSomeNilBehavior(t *testing.T) {
	var value any
	opt := option.Some(value)
	if opt.IsNone() {
		t.Fatalf("expected Some(nil) to be considered present")
	}
	got, ok := opt.Get()
	if !ok || got != nil {
		t.Fatalf("expected stored nil, got %v present %v", got, ok)
	}
}

func TestZeroValueIsNone(t *testing.T) {
	var zero option.Option[int]
	if !zero.IsNone() {
		t.Fatalf("zero value should be None")
	}
	if zero.ToPtr() != nil {
		t.Fatalf("zero value should not yield pointer")
	}
}

func TestUnsafeGet(t *testing.T) {
	if got := option.Some(7).UnsafeGet(); got != 7 {
		t.Fatalf("unexpected value %d", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on None")
		}
	}()
	option.None[int]().UnsafeGet()
}

func TestOptionToResult(t *testing.T) {
	opt := option.Some(42)
	res := opt.ToResult(func() error { return errors.New("missing") })
	if res.IsErr() {
		t.Fatalf("expected Ok, got err %v", res.Err())
	}
	if got := res.UnwrapOr(0); got != 42 {
		t.Fatalf("unexpected value %d", got)
	}

	none := option.None[int]()
	res = none.ToResult(func() error { return errors.New("boom") })
	if res.IsOk() {
		t.Fatalf("expected Err result")
	}

	res = none.ToResult(nil)
	if res.Err() == nil {
		t.Fatalf("nil factory should still produce an error")
	}
}

func TestOptionFilter(t *testing.T) {
	opt := option.Some(10)
	if opt.Filter(func(v int) bool { return v > 10 }).IsSome() {
		t.Fatalf("expected filter to drop value")
	}
	if !opt.Filter(func(v int) bool { return v == 10 }).IsSome() {
		t.Fatalf("expected filter to keep value")
	}
}

func TestOptionTap(t *testing.T) {
	calls := 0
	opt := option.Tap(option.Some(5), func(v int) {
		if v != 5 {
			t.Fatalf("unexpected value %d", v)
		}
		calls++
	})
	if opt.IsNone() {
		t.Fatalf("expected tap to keep value")
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
	none := option.Tap(option.None[int](), func(int) { calls++ })
	if none.IsSome() {
		t.Fatalf("expected none to stay none")
	}
	if calls != 1 {
		t.Fatalf("tap should not run for none")
	}
}

func TestOptionTraverseSequence(t *testing.T) {
	seqd := option.Sequence([]option.Option[int]{option.Some(1), option.Some(2)})
	if seqd.IsNone() {
		t.Fatalf("expected successful sequence")
	}
	values, _ := seqd.Get()
	if len(values) != 2 || values[1] != 2 {
		t.Fatalf("unexpected values: %v", values)
	}
	failed := option.Sequence([]option.Option[int]{option.Some(1), option.None[int]()})
	if failed.IsSome() {
		t.Fatalf("sequence should short circuit")
	}
	traversed := option.Traverse([]int{1, 2, 3}, func(v int) option.Option[int] {
		if v == 2 {
			return option.None[int]()
		}
		return option.Some(v * 2)
	})
	if traversed.IsSome() {
		t.Fatalf("expected traverse failure on drop")
	}
}

func TestOptionInterop(t *testing.T) {
	opt := option.FromOk(5, true)
	ptr := opt.ToPtr()
	if ptr == nil || *ptr != 5 {
		t.Fatalf("expected pointer copy")
	}
	fromPtr := option.FromPtr(ptr)
	if fromPtr.IsNone() {
		t.Fatalf("expected value from pointer")
	}
	none := option.FromPtr[int](nil)
	if none.IsSome() {
		t.Fatalf("expected none from nil ptr")
	}
	fromOkNone := option.FromOk(1, false)
	if fromOkNone.IsSome() {
		t.Fatalf("expected none from ok=false")
	}
}

func TestOptionFallbacks(t *testing.T) {
	if got := option.None[string]().GetOrElse("fallback"); got != "fallback" {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := option.Some("present").GetOrElse("fallback"); got != "present" {
		t.Fatalf("unexpected value %q", got)
	}
	lazy := option.None[string]().GetOrElseFunc(func() string { return "lazy" })
	if lazy != "lazy" {
		t.Fatalf("unexpected lazy fallback %q", lazy)
	}
	or := option.None[int]().OrElse(option.Some(3))
	if got, _ := or.Get(); got != 3 {
		t.Fatalf("unexpected OrElse value %d", got)
	}
}
