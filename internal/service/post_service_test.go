package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, string) (*models.Post, error)
	listFn    func(context.Context) ([]*models.Post, error)
	updateFn  func(context.Context, string, string, string) (*models.Post, error)
	deleteFn  func(context.Context, string) error
	likeFn    func(context.Context, string, string) error
	unlikeFn  func(context.Context, string, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Update(ctx context.Context, id, username, content string) (*models.Post, error) {
	return s.updateFn(ctx, id, username, content)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, postID, username string) error {
	return s.likeFn(ctx, postID, username)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, username string) error {
	return s.unlikeFn(ctx, postID, username)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listFn:    func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		updateFn: func(_ context.Context, _, _, _ string) (*models.Post, error) {
			return &models.Post{}, nil
		},
		deleteFn: func(_ context.Context, _ string) error { return nil },
		likeFn:   func(_ context.Context, _, _ string) error { return nil },
		unlikeFn: func(_ context.Context, _, _ string) error { return nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	ctx := context.Background()

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Content: "hello"})
		assertValidationError(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Username: "alice"})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = "generated-id"
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Username: "alice",
		Content:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", post.ID)
	assert.Equal(t, "alice", post.Username)
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "p1"})
		assertValidationError(t, err)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("boom")
		repo := noopPostRepo()
		repo.updateFn = func(_ context.Context, _, _, _ string) (*models.Post, error) {
			return nil, repoErr
		}
		svc := NewPostService(repo)
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
			PostID: "p1", Username: "alice", Content: "edited",
		})
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestPostService_LikePost(t *testing.T) {
	t.Parallel()

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo())
		err := svc.LikePost(context.Background(), LikeInput{PostID: "p1"})
		assertValidationError(t, err)
	})

	t.Run("passes through to repo", func(t *testing.T) {
		t.Parallel()
		var gotPost, gotUser string
		repo := noopPostRepo()
		repo.likeFn = func(_ context.Context, postID, username string) error {
			gotPost, gotUser = postID, username
			return nil
		}
		svc := NewPostService(repo)
		require.NoError(t, svc.LikePost(context.Background(), LikeInput{PostID: "p1", Username: "bob"}))
		assert.Equal(t, "p1", gotPost)
		assert.Equal(t, "bob", gotUser)
	})
}

func TestPostService_UnlikePost(t *testing.T) {
	t.Parallel()

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo())
		err := svc.UnlikePost(context.Background(), LikeInput{PostID: "p1"})
		assertValidationError(t, err)
	})

	t.Run("not found propagates", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.unlikeFn = func(_ context.Context, postID, _ string) error {
			return models.NewNotFoundError("post", postID)
		}
		svc := NewPostService(repo)
		err := svc.UnlikePost(context.Background(), LikeInput{PostID: "missing", Username: "bob"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
