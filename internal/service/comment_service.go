package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	PostID   string
	Username string
	Content  string
}

type UpdateCommentInput struct {
	PostID    string
	CommentID string
	Username  string
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Username == "" || in.Content == "" {
		return nil, models.NewValidationError("Username and content are required")
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		Username: in.Username,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, postID, commentID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Username == "" || in.Content == "" {
		return nil, models.NewValidationError("Username and content are required")
	}
	return s.commentRepo.Update(ctx, in.PostID, in.CommentID, in.Username, in.Content)
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return s.commentRepo.Delete(ctx, postID, commentID)
}
