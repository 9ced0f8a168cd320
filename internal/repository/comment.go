package repository

import (
	"context"
	"errors"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment operations. Every
// mutation keeps the owning post's comments counter in step with the rows.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, postID, commentID string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Update(ctx context.Context, postID, commentID, username, content string) (*models.Comment, error)
	Delete(ctx context.Context, postID, commentID string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and increments the owning post's counter in one
// transaction. The counter update runs first: it is the existence check, and
// its row lock serializes against cascade deletes so a comment can never land
// on a vanished post.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	now := nowUTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments", gorm.Expr("comments + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", comment.PostID)
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		First(&comment, "id = ? AND post_id = ?", commentID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("comment", commentID)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, models.NewNotFoundError("post", postID)
	}

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(ctx context.Context, postID, commentID, username, content string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Comment{}).
			Where("id = ? AND post_id = ?", commentID, postID).
			Updates(map[string]interface{}{
				"username":   username,
				"content":    content,
				"updated_at": nowUTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("comment", commentID)
		}
		return tx.First(&comment, "id = ? AND post_id = ?", commentID, postID).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes the comment and decrements the post's counter, clamped at
// zero so historical drift never produces a negative count. The decrement
// runs first for lock ordering; a missing comment rolls it back.
func (r *commentRepository) Delete(ctx context.Context, postID, commentID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comments", gorm.Expr("CASE WHEN comments > 0 THEN comments - 1 ELSE 0 END"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", postID)
		}

		del := tx.Where("id = ? AND post_id = ?", commentID, postID).
			Delete(&models.Comment{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return models.NewNotFoundError("comment", commentID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
