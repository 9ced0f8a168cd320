// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, id, username, content string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, postID, username string) error
	Unlike(ctx context.Context, postID, username string) error
}

// Transaction-local sentinels. Returning one rolls the transaction back so
// the no-op request leaves no trace; the caller converts it to success.
var (
	errLikeExists  = errors.New("like edge already exists")
	errLikeMissing = errors.New("like edge does not exist")
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := nowUTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = 0
	post.Comments = 0

	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).Order("created_at").Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(ctx context.Context, id, username, content string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
			"username":   username,
			"content":    content,
			"updated_at": nowUTC(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", id)
		}
		return tx.First(&post, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, id)
	return &post, nil
}

// Delete removes the post together with every comment and like edge that
// references it. The cascade is a single transaction: either the post and all
// of its children disappear, or nothing does.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", id)
		}

		comments := tx.Where("post_id = ?", id).Delete(&models.Comment{})
		if comments.Error != nil {
			return comments.Error
		}
		likes := tx.Where("post_id = ?", id).Delete(&models.Like{})
		if likes.Error != nil {
			return likes.Error
		}

		observability.CascadedRows.WithLabelValues("comments").Add(float64(comments.RowsAffected))
		observability.CascadedRows.WithLabelValues("likes").Add(float64(likes.RowsAffected))
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// Like inserts the (post, user) edge and increments the post's likes counter
// in one transaction. The counter update runs first: it doubles as the post
// existence check and takes the posts row lock, so concurrent likes, unlikes
// and cascade deletes of the same post serialize instead of interleaving.
// A duplicate edge rolls the whole transaction back and is reported as
// success, making the operation idempotent.
func (r *postRepository) Like(ctx context.Context, postID, username string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", postID)
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{PostID: postID, Username: username})
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			return errLikeExists
		}
		return nil
	})
	if errors.Is(err, errLikeExists) {
		observability.DuplicateLikes.Inc()
		return nil
	}
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// Unlike removes the (post, user) edge and decrements the likes counter,
// clamped at zero. The clamped decrement runs first for the same lock-order
// reason as Like. A missing edge rolls the transaction back (restoring the
// counter) and is reported as success.
func (r *postRepository) Unlike(ctx context.Context, postID, username string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", postID)
		}

		del := tx.Where("post_id = ? AND username = ?", postID, username).
			Delete(&models.Like{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return errLikeMissing
		}
		return nil
	})
	if errors.Is(err, errLikeMissing) {
		observability.NoopUnlikes.Inc()
		return nil
	}
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
