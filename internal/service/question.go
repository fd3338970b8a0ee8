package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// Broadcaster fans question events out to live subscribers
type Broadcaster interface {
	Broadcast(categoryID int, messageType string, payload []byte)
}

// QuestionPage is one page of questions plus the size of the full collection
type QuestionPage struct {
	Questions []*domain.Question
	Total     int
}

// NewQuestion holds the fields of a question to create
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionService handles question listing, search and edits
type QuestionService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	hub          Broadcaster
	log          *slog.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository, hub Broadcaster, log *slog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
		log:          log,
	}
}

// ListQuestions returns a page of all questions ordered by id.
// An empty page is reported as ErrPageNotFound.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	result, err := s.currentPage(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, ErrPageNotFound
	}
	return result, nil
}

// DeleteQuestion deletes a question and returns the requested page of the remaining ones
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int, page int) (*QuestionPage, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.publish(question.Category, websocket.MessageQuestionDeleted, map[string]int{
		"id":       question.ID,
		"category": question.Category,
	})

	return s.currentPage(ctx, page)
}

// CreateQuestion stores a new question and returns it with the requested page of questions
func (s *QuestionService) CreateQuestion(ctx context.Context, in NewQuestion, page int) (*domain.Question, *QuestionPage, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return nil, nil, fmt.Errorf("%w: question and answer are required", ErrInvalidQuestion)
	}

	if _, err := s.categoryRepo.GetByID(ctx, in.Category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown category %d", ErrInvalidQuestion, in.Category)
		}
		return nil, nil, err
	}

	question := &domain.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, nil, err
	}

	s.publish(question.Category, websocket.MessageQuestionCreated, question)

	result, err := s.currentPage(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return question, result, nil
}

// SearchQuestions returns a page of the questions containing term, ignoring case.
// Total is the number of matches.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	if term == "" {
		return nil, ErrEmptySearch
	}
	if page < 1 {
		return nil, ErrInvalidPage
	}

	matches, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions: Paginate(matches, page, QuestionsPerPage),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns the category and all of its questions
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID int) (*domain.Category, []*domain.Question, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}

	return category, questions, nil
}

func (s *QuestionService) currentPage(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	all, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions: Paginate(all, page, QuestionsPerPage),
		Total:     len(all),
	}, nil
}

func (s *QuestionService) publish(categoryID int, messageType string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to marshal event", slog.String("type", messageType), slog.Any("error", err))
		return
	}
	s.hub.Broadcast(categoryID, messageType, payload)
}
