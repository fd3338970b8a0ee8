package service

// QuestionsPerPage is the fixed page size of every paginated question list
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages past the end are empty.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := min(start+size, len(items))
	return items[start:end]
}
