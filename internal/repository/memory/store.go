// Package memory provides process-local repositories for running the API
// without PostgreSQL. Data is lost on restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Store holds questions and categories behind a single lock and implements
// both domain.QuestionRepository and domain.CategoryRepository through its
// Questions and Categories views.
type Store struct {
	mu             sync.RWMutex
	questions      map[int]domain.Question
	categories     map[int]domain.Category
	nextQuestionID int
	nextCategoryID int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		questions:      make(map[int]domain.Question),
		categories:     make(map[int]domain.Category),
		nextQuestionID: 1,
		nextCategoryID: 1,
	}
}

// AddCategory stores a category and returns its assigned id
func (s *Store) AddCategory(categoryType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCategoryID
	s.nextCategoryID++
	s.categories[id] = domain.Category{ID: id, Type: categoryType}
	return id
}

// Ping always succeeds; it lets the store stand in for a database pool in health checks.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Questions returns the question repository view of the store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}

// Categories returns the category repository view of the store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

// QuestionRepository implements domain.QuestionRepository in memory
type QuestionRepository struct {
	store *Store
}

// List retrieves every question ordered by id
func (r *QuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	return r.filter(func(*domain.Question) bool { return true }), nil
}

// ListByCategory retrieves the questions of one category ordered by id
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return r.filter(func(q *domain.Question) bool { return q.Category == categoryID }), nil
}

// Search retrieves the questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q, ok := r.store.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

// Create creates a new question and sets its ID
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	question.ID = r.store.nextQuestionID
	r.store.nextQuestionID++
	r.store.questions[question.ID] = *question
	return nil
}

// Update replaces every field of an existing question
func (r *QuestionRepository) Update(ctx context.Context, question *domain.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.questions[question.ID]; !ok {
		return domain.ErrQuestionNotFound
	}
	r.store.questions[question.ID] = *question
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.store.questions, id)
	return nil
}

func (r *QuestionRepository) filter(keep func(*domain.Question) bool) []*domain.Question {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	questions := make([]*domain.Question, 0, len(r.store.questions))
	for _, q := range r.store.questions {
		if keep(&q) {
			questions = append(questions, &q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions
}

// CategoryRepository implements domain.CategoryRepository in memory
type CategoryRepository struct {
	store *Store
}

// List retrieves every category ordered by id
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}
