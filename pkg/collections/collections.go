// Package collections holds small generic slice helpers.
package collections

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}
	return result
}

// Last returns the final element of items, or the zero value and false when empty.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}

// Compact returns items without zero values, preserving order.
func Compact[T comparable](items []T) []T {
	var zero T
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			result = append(result, item)
		}
	}
	return result
}
