package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves every question ordered by id
	List(ctx context.Context) ([]*Question, error)

	// ListByCategory retrieves the questions of one category ordered by id
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)

	// Search retrieves the questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]*Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create creates a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Update replaces every field of an existing question
	Update(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
