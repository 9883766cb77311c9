package pagination

import "strconv"

// DefaultPage is used when the request carries no usable page number.
const DefaultPage = 1

// ParsePage turns the raw query value into a 1-based page number,
// falling back to the default for anything absent or non-positive.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// Page slices one fixed-size page out of an eagerly loaded result set.
// Pages are 1-based; a page past the end yields an empty slice, never
// an error. Items keep their input order.
func Page[T any](items []T, page, size int) []T {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
