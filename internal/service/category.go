package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryCache stores the category mapping between requests
type CategoryCache interface {
	GetCategories(ctx context.Context) (map[int]string, error)
	StoreCategories(ctx context.Context, categories map[int]string) error
}

// CategoryService handles category lookups
type CategoryService struct {
	categoryRepo domain.CategoryRepository
	cache        CategoryCache
	log          *slog.Logger
}

// NewCategoryService creates a new category service. cache may be nil.
func NewCategoryService(categoryRepo domain.CategoryRepository, cache CategoryCache, log *slog.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		log:          log,
	}
}

// Categories returns the id -> type mapping of every category
func (s *CategoryService) Categories(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		categories, err := s.cache.GetCategories(ctx)
		if err == nil {
			return categories, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			// Log error but continue
			s.log.Warn("category cache unavailable", slog.Any("error", err))
		}
	}

	list, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := domain.CategoryMap(list)

	if s.cache != nil {
		if err := s.cache.StoreCategories(ctx, categories); err != nil {
			s.log.Warn("failed to cache categories", slog.Any("error", err))
		}
	}

	return categories, nil
}
