package seed

import (
	"context"
	"log"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"ripple/internal/repository"
)

// Options controls how much demo data Run generates.
type Options struct {
	Posts              int
	MaxCommentsPerPost int
	MaxLikesPerPost    int
}

// DefaultOptions returns a modest dataset suitable for local development.
func DefaultOptions() Options {
	return Options{
		Posts:              20,
		MaxCommentsPerPost: 5,
		MaxLikesPerPost:    8,
	}
}

// Run populates the database with demo posts, comments and likes. Everything
// goes through the repository layer so the per-post counters come out exact.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	factory := NewFactory(postRepo, commentRepo)

	for i := 0; i < opts.Posts; i++ {
		post, err := factory.CreatePost(ctx)
		if err != nil {
			return err
		}

		for j := 0; j < gofakeit.Number(0, opts.MaxCommentsPerPost); j++ {
			if _, err := factory.CreateComment(ctx, post); err != nil {
				return err
			}
		}

		// Distinct usernames per post, repeated likes would be no-ops.
		likers := map[string]struct{}{}
		for len(likers) < gofakeit.Number(0, opts.MaxLikesPerPost) {
			likers[gofakeit.Username()] = struct{}{}
		}
		for username := range likers {
			if err := factory.CreateLike(ctx, post, username); err != nil {
				return err
			}
		}
	}

	log.Printf("Seed complete: %d posts created", opts.Posts)
	return nil
}
