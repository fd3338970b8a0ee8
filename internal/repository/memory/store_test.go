package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestQuestionRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Questions()

	first := &domain.Question{Question: "a", Answer: "b", Category: 1, Difficulty: 1}
	second := &domain.Question{Question: "c", Answer: "d", Category: 1, Difficulty: 2}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Question)
}

func TestQuestionRepository_ListOrderedAndFiltered(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Questions()

	for i, cat := range []int{2, 1, 2, 3} {
		require.NoError(t, repo.Create(ctx, &domain.Question{Question: "q", Category: cat, Difficulty: i}))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := range all {
		assert.Equal(t, i+1, all[i].ID)
	}

	inTwo, err := repo.ListByCategory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, inTwo, 2)
	assert.Equal(t, 1, inTwo[0].ID)
	assert.Equal(t, 3, inTwo[1].ID)
}

func TestQuestionRepository_SearchIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Questions()

	require.NoError(t, repo.Create(ctx, &domain.Question{Question: "What is the TITLE of the book?"}))
	require.NoError(t, repo.Create(ctx, &domain.Question{Question: "Who painted it?"}))

	found, err := repo.Search(ctx, "title")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)
}

func TestQuestionRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Questions()

	q := &domain.Question{Question: "old", Answer: "x", Category: 1, Difficulty: 1}
	require.NoError(t, repo.Create(ctx, q))

	q.Question = "new"
	require.NoError(t, repo.Update(ctx, q))
	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Question)

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err = repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, q.ID), domain.ErrQuestionNotFound)
	assert.ErrorIs(t, repo.Update(ctx, q), domain.ErrQuestionNotFound)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	science := store.AddCategory("Science")
	art := store.AddCategory("Art")

	categories, err := store.Categories().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Category{{ID: science, Type: "Science"}, {ID: art, Type: "Art"}}, categories)

	_, err = store.Categories().GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
