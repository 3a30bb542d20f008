package feed

import (
	"context"
	"sync"

	"advofeed/pkg/posts"
)

// BatchSource supplies the next page of posts for an infinite-scroll feed.
// A source signals exhaustion by returning an empty batch.
type BatchSource interface {
	NextBatch(ctx context.Context) ([]*posts.Post, error)
}

// Buffer accumulates feed pages for a single viewing session. It grows only
// by append; ranking reads a snapshot on every render.
type Buffer struct {
	mu      sync.Mutex
	posts   []*posts.Post
	seed    []*posts.Post
	source  BatchSource
	loading bool
	hasMore bool
}

func NewBuffer(seed []*posts.Post, source BatchSource) *Buffer {
	return &Buffer{
		posts:   copyPosts(seed),
		seed:    copyPosts(seed),
		source:  source,
		hasMore: source != nil,
	}
}

// LoadMore fetches one batch and appends it. At most one load is in flight
// per buffer: a call made while another is loading, or after the source is
// exhausted, is a no-op. Overlapping scroll triggers therefore cannot
// duplicate appends. On a source error the buffer and hasMore are left
// untouched and the error is returned for the caller to handle.
func (b *Buffer) LoadMore(ctx context.Context) error {
	b.mu.Lock()
	if b.loading || !b.hasMore {
		b.mu.Unlock()
		return nil
	}
	b.loading = true
	b.mu.Unlock()

	batch, err := b.source.NextBatch(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false

	if err != nil {
		return err
	}

	if len(batch) == 0 {
		b.hasMore = false
		return nil
	}

	b.posts = append(b.posts, batch...)
	return nil
}

// Posts returns a snapshot copy of the accumulated collection.
func (b *Buffer) Posts() []*posts.Post {
	b.mu.Lock()
	defer b.mu.Unlock()

	return copyPosts(b.posts)
}

func (b *Buffer) IsLoading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loading
}

func (b *Buffer) HasMore() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hasMore
}

// Reset drops accumulated pages back to the initial seed, for callers that
// invalidate the session when the filter context changes.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.posts = copyPosts(b.seed)
	b.hasMore = b.source != nil
}

func copyPosts(in []*posts.Post) []*posts.Post {
	out := make([]*posts.Post, len(in))
	copy(out, in)

	return out
}
