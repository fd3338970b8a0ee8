package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	g := e.Group("/quizzes")
	g.POST("", h.NextQuestion)
	g.POST("/answer", h.CheckAnswer)
}

// QuizCategory identifies the category a quiz draws from. ID 0 means all categories.
type QuizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	PreviousQuestions []flexInt     `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// QuizResponse is the body of POST /quizzes. Question is null once the quiz is exhausted.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// AnswerRequest represents a quiz answer to check
type AnswerRequest struct {
	QuestionID *flexInt `json:"question_id" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
}

// AnswerResponse is the body of POST /quizzes/answer
type AnswerResponse struct {
	Success bool   `json:"success"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// NextQuestion returns a random question that has not been asked yet
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	question, err := h.quizService.NextQuestion(c.Request().Context(), int(req.QuizCategory.ID), toInts(req.PreviousQuestions))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizExhausted):
			return c.JSON(http.StatusOK, QuizResponse{Success: true})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return badRequest(err)
		default:
			return internalError(err)
		}
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}

// CheckAnswer reports whether an answer matches the stored answer of a question
func (h *QuizHandler) CheckAnswer(c echo.Context) error {
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	result, err := h.quizService.CheckAnswer(c.Request().Context(), int(*req.QuestionID), req.Answer)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return notFound(err)
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, AnswerResponse{
		Success: true,
		Correct: result.Correct,
		Answer:  result.Answer,
	})
}
