package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%s"
)

const (
	PostTTL = 5 * time.Minute

	// A reader that missed the cache before a mutation committed can write
	// its stale snapshot after the first delete. The second delete, after
	// this delay, clears anything that slipped through that window.
	invalidateDelay = 200 * time.Millisecond
)

func PostKey(postID string) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost removes the cached post now and once more shortly after.
func InvalidatePost(ctx context.Context, postID string) {
	key := PostKey(postID)
	Invalidate(ctx, key)

	c := client
	if c == nil {
		return
	}
	time.AfterFunc(invalidateDelay, func() {
		c.Del(context.Background(), key)
	})
}
