package sorter

import (
	"slices"

	"github.com/gostonefire/coursehashmap/internal/model"
)

// Courses - Returns a copy of courses ordered ascending by identifier. The given slice is left untouched.
// The sort is not stable, courses sharing an identifier may come out in any order.
func Courses(courses []model.Course) []model.Course {
	return QuickSort(courses, func(c model.Course) string { return c.ID })
}

// QuickSort - Returns a copy of items ordered ascending by the string key of each item.
// Average performance is O(n log(n)), worst case O(n^2).
//   - items is the sequence to sort, it is not modified
//   - key returns the string to order an item by
func QuickSort[T any](items []T, key func(T) string) (sorted []T) {
	sorted = slices.Clone(items)
	quickSort(sorted, key, 0, len(sorted)-1)

	return
}

// quickSort - Sorts the range begin to end (inclusive) in place
func quickSort[T any](items []T, key func(T) string, begin, end int) {
	// Zero or one item left, range is sorted
	if begin >= end {
		return
	}

	// mid is the last index of the low partition
	mid := partition(items, key, begin, end)

	quickSort(items, key, begin, mid)
	quickSort(items, key, mid+1, end)
}

// partition - Splits the range begin to end (inclusive) around the key of its middle item so that no key in the
// low part sorts after any key in the high part. It returns the last index of the low part.
func partition[T any](items []T, key func(T) string, begin, end int) int {
	low := begin
	high := end

	pivot := key(items[low+(high-low)/2])

	for {
		for key(items[low]) < pivot {
			low++
		}

		for key(items[high]) > pivot {
			high--
		}

		if low >= high {
			return high
		}

		items[low], items[high] = items[high], items[low]
		low++
		high--
	}
}
