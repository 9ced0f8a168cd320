// Package service implements the application's use cases on top of the repositories.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Username string
	Content  string
}

type UpdatePostInput struct {
	PostID   string
	Username string
	Content  string
}

type LikeInput struct {
	PostID   string
	Username string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Username == "" || in.Content == "" {
		return nil, models.NewValidationError("Username and content are required")
	}

	post := &models.Post{
		Username: in.Username,
		Content:  in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Username == "" || in.Content == "" {
		return nil, models.NewValidationError("Username and content are required")
	}
	return s.postRepo.Update(ctx, in.PostID, in.Username, in.Content)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.postRepo.Delete(ctx, id)
}

// LikePost records that the user likes the post. Repeated likes by the same
// user are absorbed by the repository as successful no-ops.
func (s *PostService) LikePost(ctx context.Context, in LikeInput) error {
	if in.Username == "" {
		return models.NewValidationError("Username is required")
	}
	return s.postRepo.Like(ctx, in.PostID, in.Username)
}

// UnlikePost removes the user's like. Unliking a post the user never liked
// succeeds without changing anything.
func (s *PostService) UnlikePost(ctx context.Context, in LikeInput) error {
	if in.Username == "" {
		return models.NewValidationError("Username is required")
	}
	return s.postRepo.Unlike(ctx, in.PostID, in.Username)
}
