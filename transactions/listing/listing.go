// Package listing filters and orders in-memory record collections.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Field extracts the searchable text of one record field. ok is false when
// the field has no value.
type Field[T any] func(item T) (value string, ok bool)

// Step transforms a collection.
type Step[T any] func([]T) []T

// Search keeps the records for which at least one field fuzzily matches query.
// An empty query returns data unchanged.
func Search[T any](data []T, fields []Field[T], query string) []T {
	needle := strings.ToLower(query)
	if needle == "" {
		return data
	}

	out := make([]T, 0, len(data))
	for _, item := range data {
		for _, field := range fields {
			value, ok := field(item)
			if ok && FuzzyMatch(value, needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FuzzyMatch reports whether the characters of query appear in value in
// order, not necessarily adjacent, ignoring case.
func FuzzyMatch(value, query string) bool {
	needle := []rune(strings.ToLower(query))
	if len(needle) == 0 {
		return true
	}

	i := 0
	for _, r := range strings.ToLower(value) {
		if r == needle[i] {
			i++
			if i == len(needle) {
				return true
			}
		}
	}
	return false
}

// SortAlphabetically returns a stably sorted copy of data ordered by key,
// compared case-insensitively.
func SortAlphabetically[T any](data []T, key func(T) string, order Order) []T {
	out := slices.Clone(data)
	slices.SortStableFunc(out, func(a, b T) int {
		c := strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
		if order == Desc {
			return -c
		}
		return c
	})
	return out
}

// SortByDate returns a stably sorted copy of data ordered by key. Records
// whose key is not a valid date come after all valid ones in either order.
func SortByDate[T any](data []T, key func(T) (time.Time, bool), order Order) []T {
	out := slices.Clone(data)
	slices.SortStableFunc(out, func(a, b T) int {
		ta, okA := key(a)
		tb, okB := key(b)

		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}

		c := cmp.Compare(ta.UnixNano(), tb.UnixNano())
		if order == Desc {
			return -c
		}
		return c
	})
	return out
}

// ParseDate adapts a string field to SortByDate using layout.
func ParseDate[T any](layout string, key func(T) string) func(T) (time.Time, bool) {
	return func(item T) (time.Time, bool) {
		t, err := time.Parse(layout, key(item))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// Pipe composes steps left to right. With no steps it returns its input.
func Pipe[T any](steps ...Step[T]) Step[T] {
	return func(data []T) []T {
		for _, step := range steps {
			if step != nil {
				data = step(data)
			}
		}
		return data
	}
}
