package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	g := e.Group("/categories")
	g.GET("", h.ListCategories)
	g.GET("/:id/questions", h.ListCategoryQuestions)
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

// CategoryQuestionsResponse is the body of GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*domain.Question `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// ListCategories returns every category, including when there are none
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.Categories(c.Request().Context())
	if err != nil {
		return internalError(err)
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// ListCategoryQuestions returns all questions of one category.
// A non-numeric id matches no route (404); an unknown category is a bad request.
func (h *CategoryHandler) ListCategoryQuestions(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return badRequest(err)
		}
		return notFound(err)
	}

	category, questions, err := h.questionService.QuestionsByCategory(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return badRequest(err)
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
