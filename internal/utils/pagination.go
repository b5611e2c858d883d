// Package utils provides small helpers shared across layers, independent of
// domain logic. Query-parameter parsing and paging bounds live here.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or
// malformed. Used for optional numeric query parameters.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampRange validates an offset/limit pair against a collection of length
// total and returns safe slice bounds. Offsets outside [0, total] are pulled
// back into range. A negative limit, or one larger than the remaining
// window, selects everything from offset to the end; the limit is capped
// before any arithmetic so extreme query values cannot overflow into an
// inverted range.
func ClampRange(offset, limit, total int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit < 0 || limit > total-offset {
		limit = total - offset
	}
	return offset, offset + limit
}
