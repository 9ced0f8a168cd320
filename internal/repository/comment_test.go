package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createTestPost(t, postRepo, "alice", "parent")

	t.Run("creates and increments counter", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, Username: "bob", Content: "nice"}
		require.NoError(t, repo.Create(ctx, comment))

		assert.NotEmpty(t, comment.ID)
		assert.False(t, comment.CreatedAt.IsZero())

		fetched, err := postRepo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fetched.Comments)
	})

	t.Run("missing post leaves no comment row", func(t *testing.T) {
		comment := &models.Comment{PostID: "no-such-id", Username: "bob", Content: "lost"}
		err := repo.Create(ctx, comment)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)

		var rows int64
		db.Model(&models.Comment{}).Where("post_id = ?", "no-such-id").Count(&rows)
		assert.EqualValues(t, 0, rows)
	})
}

func TestCommentRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createTestPost(t, postRepo, "alice", "parent")
	other := createTestPost(t, postRepo, "bob", "other")

	comment := &models.Comment{PostID: post.ID, Username: "bob", Content: "nice"}
	require.NoError(t, repo.Create(ctx, comment))

	t.Run("found", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, post.ID, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, comment.ID, fetched.ID)
		assert.Equal(t, "nice", fetched.Content)
	})

	t.Run("comment does not belong to post", func(t *testing.T) {
		_, err := repo.GetByID(ctx, other.ID, comment.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := repo.GetByID(ctx, post.ID, "no-such-id")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createTestPost(t, postRepo, "alice", "parent")

	first := &models.Comment{PostID: post.ID, Username: "bob", Content: "first"}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Comment{PostID: post.ID, Username: "carol", Content: "second"}
	require.NoError(t, repo.Create(ctx, second))

	t.Run("creation order", func(t *testing.T) {
		comments, err := repo.ListByPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("empty list for commentless post", func(t *testing.T) {
		bare := createTestPost(t, postRepo, "dave", "quiet")
		comments, err := repo.ListByPost(ctx, bare.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.ListByPost(ctx, "no-such-id")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCommentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createTestPost(t, postRepo, "alice", "parent")
	comment := &models.Comment{PostID: post.ID, Username: "bob", Content: "original"}
	require.NoError(t, repo.Create(ctx, comment))

	t.Run("updates content", func(t *testing.T) {
		updated, err := repo.Update(ctx, post.ID, comment.ID, "bob", "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := repo.Update(ctx, post.ID, "no-such-id", "bob", "edited")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	post := createTestPost(t, postRepo, "alice", "parent")
	comment := &models.Comment{PostID: post.ID, Username: "bob", Content: "short-lived"}
	require.NoError(t, repo.Create(ctx, comment))

	t.Run("removes comment and decrements counter", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, post.ID, comment.ID))

		fetched, err := postRepo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fetched.Comments)

		var rows int64
		db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&rows)
		assert.EqualValues(t, 0, rows)
	})

	t.Run("missing comment rolls the counter back", func(t *testing.T) {
		other := &models.Comment{PostID: post.ID, Username: "carol", Content: "staying"}
		require.NoError(t, repo.Create(ctx, other))

		err := repo.Delete(ctx, post.ID, "no-such-id")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)

		fetched, err := postRepo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fetched.Comments)
	})

	t.Run("missing post", func(t *testing.T) {
		err := repo.Delete(ctx, "no-such-id", comment.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Contains(t, appErr.Message, "post with ID no-such-id")
	})
}
