// Package fp provides lightweight functional composition helpers for Go.
//
// Example:
//
//	normalize := fp.Compose(
//		strings.ToLower,
//		strings.TrimSpace,
//	)
//	value := normalize("  /Foo/Bar  ")
package fp

// Identity returns the supplied value unchanged.
//
// Example:
//
//	keep := urlpath.FromPathname("/a").ModifyHash(fp.Identity)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	reset := fp.Constant("/")
//	p := p.ModifyPathname(func(string) string { return reset() })
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value, left to right. All functions
// must accept and return the same type.
//
// Example:
//
//	pathname := fp.Pipe("/api/v1/users",
//		func(s string) string { return s + "/42" },
//		strings.ToLower,
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	fn := fp.Compose(
//		func(s string) string { return s + "/edit" },
//		strings.TrimSpace,
//	)
//	value := fn(" /posts/1 ")
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	prefix := fp.Curry(func(pre, s string) string { return pre + s })
//	withSlash := prefix("/")
//	pathname := withSlash("users")
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Flip swaps the argument order of a binary function.
//
// Example:
//
//	trimTrailing := fp.Flip(strings.TrimSuffix)
//	pathname := trimTrailing("/", "/users/") // "/users"
func Flip[A any, B any, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}
