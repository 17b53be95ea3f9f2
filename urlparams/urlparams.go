// Package urlparams implements an immutable, ordered multimap of URL query
// parameters with the standard application/x-www-form-urlencoded grammar.
//
// Params preserves insertion order and duplicate keys, unlike url.Values,
// whose map representation forgets the relative order of distinct keys. All
// mutating-looking operations (Set, Append, Delete) return independent
// copies and never touch their receiver.
//
// Example:
//
//	ps := urlparams.FromString("a=b&c=d1&c=d2")
//	fmt.Println(ps.Lookup("c")) // Some([d1 d2])
package urlparams

import (
	"net/url"
	"sort"
	"strings"

	"github.com/jessekelly881/fpstd/option"
	"github.com/jessekelly881/fpstd/seq"
)

// Pair is a single key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Params is an ordered sequence of key/value pairs. Keys are not required to
// be unique. The zero value is an empty collection.
type Params struct {
	pairs []Pair
}

// Empty returns a collection with no pairs.
func Empty() Params {
	return Params{}
}

// FromString parses a query string. A leading "?" is tolerated and stripped,
// "+" decodes to a space, and tokens that fail percent-decoding are kept
// literally, so parsing is total.
//
// Example:
//
//	ps := urlparams.FromString("?a=1&b=2")
//	fmt.Println(ps.Size()) // 2
func FromString(s string) Params {
	s = strings.TrimPrefix(s, "?")
	var pairs []Pair
	for s != "" {
		var segment string
		segment, s, _ = strings.Cut(s, "&")
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, Pair{Key: unescape(key), Value: unescape(value)})
	}
	return Params{pairs: pairs}
}

// FromTuples builds a collection from ordered pairs, preserving duplicates
// and order. The input slice is copied.
func FromTuples(pairs []Pair) Params {
	if len(pairs) == 0 {
		return Params{}
	}
	copied := make([]Pair, len(pairs))
	copy(copied, pairs)
	return Params{pairs: copied}
}

// FromRecord builds a collection from a key-to-values mapping. Keys are
// visited in lexicographic order so the output is deterministic, then values
// in per-key array order.
//
// Example:
//
//	ps := urlparams.FromRecord(map[string][]string{"b": {"2"}, "a": {"1"}})
//	fmt.Println(ps) // a=1&b=2
func FromRecord(record map[string][]string) Params {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := seq.FlatMap(keys, func(k string) []Pair {
		return seq.Map(record[k], func(v string) Pair {
			return Pair{Key: k, Value: v}
		})
	})
	return Params{pairs: pairs}
}

// ToTuples returns the ordered pairs. The result shares no backing array with
// the collection.
func (p Params) ToTuples() []Pair {
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// ToRecord groups values under their key in first-to-last encounter order.
// Keys with no occurrences are absent; no key ever maps to an empty slice.
//
// Example:
//
//	rec := urlparams.FromString("a=b&c=d1&c=d2").ToRecord()
//	fmt.Println(rec["c"]) // [d1 d2]
func (p Params) ToRecord() map[string][]string {
	grouped := seq.GroupBy(p.pairs, func(pr Pair) string { return pr.Key })
	record := make(map[string][]string, len(grouped))
	for key, group := range grouped {
		record[key] = seq.Map(group, func(pr Pair) string { return pr.Value })
	}
	return record
}

// String serializes the collection using the standard query grammar. Spaces
// encode as "+" and reserved characters are percent-encoded.
func (p Params) String() string {
	var b strings.Builder
	for i, pr := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pr.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pr.Value))
	}
	return b.String()
}

// LeadingString serializes like String but prefixes "?" when the collection
// is non-empty, returning "" otherwise. Useful when splicing into a URL.
func (p Params) LeadingString() string {
	if len(p.pairs) == 0 {
		return ""
	}
	return "?" + p.String()
}

// LookupFirst returns the first value associated with key.
//
// Example:
//
//	first := urlparams.FromString("a=b&c=d1&c=d2").LookupFirst("c")
//	fmt.Println(first) // Some(d1)
func (p Params) LookupFirst(key string) option.Option[string] {
	pr, ok := seq.Find(p.pairs, func(pr Pair) bool { return pr.Key == key })
	return option.Map(option.FromOk(pr, ok), func(pr Pair) string { return pr.Value })
}

// Lookup returns every value associated with key, in first-to-last append
// order, or None when the key is unassociated. The Some branch never carries
// an empty slice.
func (p Params) Lookup(key string) option.Option[[]string] {
	matches := seq.Filter(p.pairs, func(pr Pair) bool { return pr.Key == key })
	if len(matches) == 0 {
		return option.None[[]string]()
	}
	return option.Some(seq.Map(matches, func(pr Pair) string { return pr.Value }))
}

// Set returns a copy in which every occurrence of key is replaced by a single
// pair (key, value). The first occurrence's position is retained and later
// duplicates are removed; an unassociated key is appended at the end. The
// receiver is left untouched.
//
// Example:
//
//	ps := urlparams.FromString("a=1&c=x&a=2").Set("a", "3")
//	fmt.Println(ps) // a=3&c=x
func (p Params) Set(key, value string) Params {
	out := make([]Pair, 0, len(p.pairs)+1)
	replaced := false
	for _, pr := range p.pairs {
		if pr.Key != key {
			out = append(out, pr)
			continue
		}
		if !replaced {
			out = append(out, Pair{Key: key, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Pair{Key: key, Value: value})
	}
	return Params{pairs: out}
}

// Append returns a copy with a trailing (key, value) pair, leaving existing
// occurrences untouched.
func (p Params) Append(key, value string) Params {
	out := make([]Pair, 0, len(p.pairs)+1)
	out = append(out, p.pairs...)
	out = append(out, Pair{Key: key, Value: value})
	return Params{pairs: out}
}

// Delete returns a copy with every occurrence of key removed.
func (p Params) Delete(key string) Params {
	return Params{pairs: seq.Filter(p.pairs, func(pr Pair) bool {
		return pr.Key != key
	})}
}

// Keys returns the flattened, duplicate-preserving, insertion-ordered keys.
func (p Params) Keys() []string {
	return seq.Map(p.pairs, func(pr Pair) string { return pr.Key })
}

// Values returns the flattened, duplicate-preserving, insertion-ordered
// values.
func (p Params) Values() []string {
	return seq.Map(p.pairs, func(pr Pair) string { return pr.Value })
}

// Size returns the total number of pairs, duplicates included.
func (p Params) Size() int {
	return len(p.pairs)
}

// IsEmpty reports whether the collection holds zero pairs.
func (p Params) IsEmpty() bool {
	return len(p.pairs) == 0
}

// Clone returns a deep copy with an independent backing array.
func (p Params) Clone() Params {
	return FromTuples(p.pairs)
}

// Equal compares two collections by their grouped records: the relative order
// of distinct keys is ignored, while the first-to-last order of a key's
// duplicate values is respected.
//
// Example:
//
//	a := urlparams.FromString("a=1&b=2")
//	b := urlparams.FromString("b=2&a=1")
//	fmt.Println(a.Equal(b)) // true
func (p Params) Equal(other Params) bool {
	left, right := p.ToRecord(), other.ToRecord()
	if len(left) != len(right) {
		return false
	}
	for key, values := range left {
		otherValues, ok := right[key]
		if !ok || len(values) != len(otherValues) {
			return false
		}
		for i, v := range values {
			if v != otherValues[i] {
				return false
			}
		}
	}
	return true
}

// unescape percent-decodes a single token, falling back to the raw text when
// the token is not a valid encoding. "+" decodes to a space.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
