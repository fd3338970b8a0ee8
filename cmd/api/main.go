package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logger"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// repositories is the storage backend selected by configuration
type repositories struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	db         handler.Pinger
	seeded     bool
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, flush := logger.New(cfg.IsProduction())
	defer flush()

	if err := run(cfg, logg); err != nil {
		logg.Error("server stopped", slog.Any("error", err))
		flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage
	repos, err := openStorage(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer repos.close()

	// Initialize category cache. The API keeps working without Redis.
	var categoryCache service.CategoryCache
	if cfg.CacheEnabled {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logg.Warn("redis unavailable, category cache disabled", slog.Any("error", err))
		} else {
			defer redisClient.Close()
			categories := cache.NewCategories(redisClient, cfg.CategoryCacheTTL)
			if repos.seeded {
				if err := categories.Invalidate(ctx); err != nil {
					logg.Warn("failed to invalidate category cache", slog.Any("error", err))
				}
			}
			categoryCache = categories
		}
	}

	// Initialize websocket hub
	hub := websocket.NewHub(logg)
	go hub.Run(ctx)

	// Initialize services
	categoryService := service.NewCategoryService(repos.categories, categoryCache, logg)
	questionService := service.NewQuestionService(repos.questions, repos.categories, hub, logg)
	quizService := service.NewQuizService(repos.questions, repos.categories)

	e := handler.NewServer(logg,
		handler.NewCategoryHandler(categoryService, questionService),
		handler.NewQuestionHandler(questionService, categoryService),
		handler.NewQuizHandler(quizService),
		handler.NewWebSocketHandler(hub),
		handler.NewHealthHandler(repos.db),
	)

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		logg.Info("http server listening", slog.String("addr", cfg.HTTPAddr), slog.String("storage", cfg.Storage))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logg.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	}

	// Stop the hub first so websocket clients are closed
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, logg *slog.Logger) (*repositories, error) {
	if cfg.Storage == config.StorageMemory {
		store := memory.NewStore()
		for _, categoryType := range domain.DefaultCategories {
			store.AddCategory(categoryType)
		}
		logg.Warn("using in-memory storage, data is lost on restart")
		return &repositories{
			questions:  store.Questions(),
			categories: store.Categories(),
			db:         store,
			seeded:     true,
			close:      func() {},
		}, nil
	}

	// Initialize database connection
	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	var seeded bool
	if cfg.SeedCategories {
		inserted, err := database.SeedCategories(ctx, pool, domain.DefaultCategories)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if inserted > 0 {
			logg.Info("seeded categories", slog.Int64("count", inserted))
			seeded = true
		}
	}

	return &repositories{
		questions:  postgres.NewQuestionRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		db:         pool,
		seeded:     seeded,
		close:      pool.Close,
	}, nil
}
