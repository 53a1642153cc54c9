package models

// Page mirrors the envelope callers already consume: zero-based page number,
// requested size, and totals computed from one count query.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

func PageFrom[T any](content []T, page int, size int, total int64) Page[T] {
	var pages int
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
