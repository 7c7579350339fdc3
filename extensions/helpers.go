package extensions

import (
	"strings"
)

// Map returns a new slice holding f applied to every element
func Map[T, U any](elements []T, f func(T) U) []U {
	results := make([]U, len(elements))
	for i, element := range elements {
		results[i] = f(element)
	}
	return results
}

// Fill returns a slice of length n where every element is value
func Fill[T any](n int, value T) []T {
	results := make([]T, n)
	for i := range results {
		results[i] = value
	}
	return results
}

// FilterMultiple return all elements that satisfy the predicate
func FilterMultiple[T any](elements []T, predicate func(T) bool) (results []T) {
	for _, element := range elements {
		if predicate(element) {
			results = append(results, element)
		}
	}
	return
}

// AreEqual is a simple case invariant string comparason
func AreEqual(s, c string) bool {
	return strings.EqualFold(s, c)
}

// AreAllEqual checks if a slice is complised of the same element by value
func AreAllEqual[T comparable](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return false
		}
	}
	return true
}
