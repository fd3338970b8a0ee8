package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	g := e.Group("/questions")
	g.GET("", h.ListQuestions)
	g.POST("", h.CreateQuestion)
	g.POST("/search", h.SearchQuestions)
	g.DELETE("/:id", h.DeleteQuestion)
}

// QuestionsResponse is the body of GET /questions
type QuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     map[int]string     `json:"categories"`
}

// DeleteQuestionResponse is the body of DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int                `json:"deleted"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Category   *flexInt `json:"category" validate:"required"`
	Difficulty *flexInt `json:"difficulty" validate:"required"`
}

// CreateQuestionResponse is the body of POST /questions
type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        int                `json:"created"`
	Questions      []*domain.Question `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// SearchQuestionsRequest represents the request to search questions
type SearchQuestionsRequest struct {
	Search string `json:"search"`
}

// SearchQuestionsResponse is the body of POST /questions/search.
// CurrentCategory is always null.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// ListQuestions returns a page of questions with the category mapping
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageParam(c)
	if err != nil {
		return badRequest(err)
	}

	result, err := h.questionService.ListQuestions(ctx, page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return notFound(err)
		}
		return internalError(err)
	}

	categories, err := h.categoryService.Categories(ctx)
	if err != nil {
		return internalError(err)
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     categories,
	})
}

// DeleteQuestion deletes a question by id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound(err)
	}

	page, err := pageParam(c)
	if err != nil {
		return unprocessable(err)
	}

	result, err := h.questionService.DeleteQuestion(c.Request().Context(), id, page)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return notFound(err)
		}
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// CreateQuestion creates a new question
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	page, err := pageParam(c)
	if err != nil {
		return unprocessable(err)
	}

	question, result, err := h.questionService.CreateQuestion(c.Request().Context(), service.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(*req.Category),
		Difficulty: int(*req.Difficulty),
	}, page)
	if err != nil {
		return unprocessable(err)
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// SearchQuestions returns a page of questions whose text contains the search term
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}

	page, err := pageParam(c)
	if err != nil {
		return badRequest(err)
	}

	result, err := h.questionService.SearchQuestions(c.Request().Context(), req.Search, page)
	if err != nil {
		if errors.Is(err, service.ErrEmptySearch) {
			return badRequest(err)
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}
