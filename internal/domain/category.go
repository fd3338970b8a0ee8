package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// DefaultCategories are seeded into an empty categories table
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// Category groups questions under a label such as "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves every category ordered by id
	List(ctx context.Context) ([]*Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// CategoryMap converts categories into the id -> type mapping served to clients
func CategoryMap(categories []*Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
