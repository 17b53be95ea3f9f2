package seq_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/jessekelly881/fpstd/seq"
)

func TestMap(t *testing.T) {
	got := seq.Map([]int{1, 2, 3}, strconv.Itoa)
	if len(got) != 3 || got[0] != "1" || got[2] != "3" {
		t.Fatalf("unexpected map output %v", got)
	}
	if empty := seq.Map([]int{}, strconv.Itoa); empty == nil || len(empty) != 0 {
		t.Fatalf("empty input should produce empty non-nil slice")
	}
}

func TestFilterImmutability(t *testing.T) {
	in := []string{"a", "", "b"}
	got := seq.Filter(in, func(s string) bool { return s != "" })
	if len(got) != 2 {
		t.Fatalf("unexpected filter output %v", got)
	}
	got[0] = "mutated"
	if in[0] != "a" {
		t.Fatalf("filter must not share backing array")
	}
}

func TestFlatMap(t *testing.T) {
	got := seq.FlatMap([]string{"a/b", "c"}, func(s string) []string {
		return strings.Split(s, "/")
	})
	if len(got) != 3 || got[1] != "b" {
		t.Fatalf("unexpected flatmap output %v", got)
	}
	empty := seq.FlatMap([]string{}, func(s string) []string { return nil })
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFoldLeft(t *testing.T) {
	total := seq.FoldLeft([]string{"a", "bb", "ccc"}, 0, func(acc int, s string) int {
		return acc + len(s)
	})
	if total != 6 {
		t.Fatalf("unexpected fold %d", total)
	}
}

func TestFindAnyAll(t *testing.T) {
	in := []int{1, 2, 3}
	v, ok := seq.Find(in, func(n int) bool { return n > 1 })
	if !ok || v != 2 {
		t.Fatalf("unexpected find %v %v", v, ok)
	}
	if _, ok := seq.Find(in, func(n int) bool { return n > 9 }); ok {
		t.Fatalf("expected no match")
	}
	if !seq.Any(in, func(n int) bool { return n == 3 }) {
		t.Fatalf("expected any match")
	}
	if seq.All(in, func(n int) bool { return n < 3 }) {
		t.Fatalf("expected all to fail")
	}
}

func TestGroupByPreservesEncounterOrder(t *testing.T) {
	type pair struct{ k, v string }
	in := []pair{{"c", "d1"}, {"a", "b"}, {"c", "d2"}}
	groups := seq.GroupBy(in, func(p pair) string { return p.k })
	if len(groups) != 2 {
		t.Fatalf("unexpected group count %d", len(groups))
	}
	c := groups["c"]
	if len(c) != 2 || c[0].v != "d1" || c[1].v != "d2" {
		t.Fatalf("group order lost: %v", c)
	}
}

func TestDistinctByPartition(t *testing.T) {
	in := []string{"a", "A", "b"}
	distinct := seq.DistinctBy(in, strings.ToLower)
	if len(distinct) != 2 || distinct[0] != "a" {
		t.Fatalf("unexpected distinct %v", distinct)
	}
	evens, odds := seq.Partition([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(evens) != 2 || len(odds) != 2 || evens[0] != 2 || odds[0] != 1 {
		t.Fatalf("unexpected partition %v %v", evens, odds)
	}
}
