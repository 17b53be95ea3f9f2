// Package nonempty implements an opaque newtype for strings known to contain
// at least one character.
//
// A nonempty.String can only be produced through the constructors in this
// package, so holding one is proof that the underlying value is non-empty.
// Every transformation returns a fresh value of the same type; the wrapper is
// immutable.
//
// Example:
//
//	name := nonempty.UnsafeFromString("samhh")
//	fmt.Println(name.ToUpper()) // SAMHH
package nonempty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jessekelly881/fpstd/option"
)

// String wraps a string whose length is guaranteed to be at least one
// character. The zero value is invalid; always construct through FromString,
// UnsafeFromString, FromNumber or FromInt.
type String struct {
	value string
}

// FromString validates s and wraps it, returning None when s is empty.
//
// Example:
//
//	fmt.Println(nonempty.FromString("").IsNone()) // true
//	name, _ := nonempty.FromString("x").Get()
//	fmt.Println(name) // x
func FromString(s string) option.Option[String] {
	if s == "" {
		return option.None[String]()
	}
	return option.Some(String{value: s})
}

// UnsafeFromString wraps s, panicking when s is empty. Intended for literals
// or contexts in which the caller has already established non-emptiness.
func UnsafeFromString(s string) String {
	if s == "" {
		panic("nonempty: UnsafeFromString on empty string")
	}
	return String{value: s}
}

// FromNumber renders f in its shortest decimal form and wraps it. No float
// renders as the empty string, so this never panics.
//
// Example:
//
//	fmt.Println(nonempty.FromNumber(1.5)) // 1.5
func FromNumber(f float64) String {
	return UnsafeFromString(strconv.FormatFloat(f, 'g', -1, 64))
}

// FromInt renders n in base 10 and wraps it.
func FromInt(n int) String {
	return UnsafeFromString(strconv.Itoa(n))
}

// String returns the underlying value verbatim. It implements fmt.Stringer
// and is the sanctioned way to unwrap.
func (s String) String() string {
	return s.value
}

// Head returns the first rune as a new non-empty string.
func (s String) Head() String {
	_, size := utf8.DecodeRuneInString(s.value)
	return String{value: s.value[:size]}
}

// Last returns the final rune as a new non-empty string.
func (s String) Last() String {
	_, size := utf8.DecodeLastRuneInString(s.value)
	return String{value: s.value[len(s.value)-size:]}
}

// ToUpper uppercases the wrapped value. Case mapping never empties a string,
// so re-wrapping is safe.
func (s String) ToUpper() String {
	return String{value: strings.ToUpper(s.value)}
}

// ToLower lowercases the wrapped value.
func (s String) ToLower() String {
	return String{value: strings.ToLower(s.value)}
}

// Prepend places prefix before the wrapped value.
//
// Example:
//
//	path := nonempty.UnsafeFromString("users").Prepend("/")
//	fmt.Println(path) // /users
func (s String) Prepend(prefix string) String {
	return String{value: prefix + s.value}
}

// Append places suffix after the wrapped value.
func (s String) Append(suffix string) String {
	return String{value: s.value + suffix}
}

// Surround places affix on both sides of the wrapped value.
//
// Example:
//
//	quoted := nonempty.UnsafeFromString("id").Surround(`"`)
//	fmt.Println(quoted) // "id"
func (s String) Surround(affix string) String {
	return String{value: affix + s.value + affix}
}

// Reverse reverses the wrapped value rune-wise.
func (s String) Reverse() String {
	runes := []rune(s.value)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return String{value: string(runes)}
}

// Size returns the number of runes in the wrapped value. Always at least 1.
func (s String) Size() int {
	return utf8.RuneCountInString(s.value)
}

// Split divides the wrapped value around sep. Splitting may produce empty
// pieces, so the result is a slice of plain strings.
//
// Example:
//
//	parts := nonempty.UnsafeFromString("a/b/c").Split("/")
//	fmt.Println(parts) // [a b c]
func (s String) Split(sep string) []string {
	return strings.Split(s.value, sep)
}

// Includes reports whether substr occurs within the wrapped value.
func (s String) Includes(substr string) bool {
	return strings.Contains(s.value, substr)
}

// Equal reports structural equality of the underlying strings.
func (s String) Equal(other String) bool {
	return s.value == other.value
}

// Compare orders two values lexicographically, returning -1, 0 or 1 in the
// manner of strings.Compare.
func (s String) Compare(other String) int {
	return strings.Compare(s.value, other.value)
}

// Concat concatenates two non-empty strings. The result of joining two
// non-empty operands is itself non-empty, so this forms a semigroup under
// Equal.
func (s String) Concat(other String) String {
	return String{value: s.value + other.value}
}

// GoString implements fmt.GoStringer so %#v output names the constructor
// rather than exposing the private field.
func (s String) GoString() string {
	return fmt.Sprintf("nonempty.UnsafeFromString(%q)", s.value)
}
