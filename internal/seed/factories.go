// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds domain entities and persists them through the repositories,
// so the denormalized post counters stay consistent with the generated data.
type Factory struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewFactory creates a new Factory bound to the provided repositories.
func NewFactory(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{postRepo: postRepo, commentRepo: commentRepo}
}

// CreatePost constructs and persists a sample post.
// Optional override functions may modify the generated post before saving.
func (f *Factory) CreatePost(ctx context.Context, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Username: gofakeit.Username(),
		Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided post.
func (f *Factory) CreateComment(ctx context.Context, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   post.ID,
		Username: gofakeit.Username(),
		Content:  gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `username` on `post`.
func (f *Factory) CreateLike(ctx context.Context, post *models.Post, username string) error {
	return f.postRepo.Like(ctx, post.ID, username)
}
