package service

import (
	"context"
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AllCategories selects quiz questions from every category
const AllCategories = 0

// AnswerResult is the outcome of checking a quiz answer
type AnswerResult struct {
	Correct bool
	Answer  string
}

// QuizService picks quiz questions and checks answers
type QuizService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	intn         func(n int) int
}

// NewQuizService creates a new quiz service
func NewQuizService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		intn:         rand.Intn,
	}
}

// NextQuestion picks a random question from the category (or all categories
// for AllCategories) whose id is not in previous. It returns ErrQuizExhausted
// when no such question exists.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	candidates, err := s.candidates(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	used := make(map[int]bool, len(previous))
	for _, id := range previous {
		used[id] = true
	}

	unused := make([]*domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if !used[q.ID] {
			unused = append(unused, q)
		}
	}

	if len(unused) == 0 {
		return nil, ErrQuizExhausted
	}

	return unused[s.intn(len(unused))], nil
}

// CheckAnswer compares guess against the stored answer of a question
func (s *QuizService) CheckAnswer(ctx context.Context, questionID int, guess string) (*AnswerResult, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct: validation.IsCorrectAnswer(guess, question.Answer),
		Answer:  question.Answer,
	}, nil
}

func (s *QuizService) candidates(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	if categoryID == AllCategories {
		return s.questionRepo.List(ctx)
	}

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.questionRepo.ListByCategory(ctx, categoryID)
}
