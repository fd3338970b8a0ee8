package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   SERIAL PRIMARY KEY,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id         SERIAL PRIMARY KEY,
		question   TEXT NOT NULL,
		answer     TEXT NOT NULL,
		category   INTEGER NOT NULL,
		difficulty INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category)`,
	// Rows imported with explicit ids leave the sequences behind.
	`SELECT setval(pg_get_serial_sequence('categories', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM categories`,
	`SELECT setval(pg_get_serial_sequence('questions', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM questions`,
}

// EnsureSchema creates the trivia tables when they do not exist yet
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SeedCategories inserts the given category labels when the categories table is empty
func SeedCategories(ctx context.Context, pool *pgxpool.Pool, types []string) (int64, error) {
	result, err := pool.Exec(ctx, `
		INSERT INTO categories (type)
		SELECT t FROM unnest($1::text[]) WITH ORDINALITY AS s(t, n)
		WHERE NOT EXISTS (SELECT 1 FROM categories)
		ORDER BY n
	`, types)
	if err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	return result.RowsAffected(), nil
}
