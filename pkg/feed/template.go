package feed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"advofeed/pkg/posts"

	"github.com/google/uuid"
)

// TemplateConfig names the policies a recycled-template source applies to
// each batch, so none of them hide inside the source as hard-coded behavior.
type TemplateConfig struct {
	// RefreshTimestamps re-randomizes each copy's creation time into the
	// past 24 hours, keeping recycled demo content inside the trending
	// window forever. Off, copies keep the template timestamps and age out.
	RefreshTimestamps bool

	// Delay simulates network latency before a batch is returned.
	Delay time.Duration

	// Now is the clock used for timestamp refresh. Defaults to time.Now.
	Now func() time.Time

	// Seed makes the timestamp jitter reproducible in tests.
	Seed int64
}

// TemplateSource recycles a fixed template batch, standing in for a backend
// page fetch. Each copy gets a freshly synthesized id so ids stay unique
// across any number of loads.
type TemplateSource struct {
	mu       sync.Mutex
	template []*posts.Post
	cfg      TemplateConfig
	rnd      *rand.Rand
}

func NewTemplateSource(template []*posts.Post, cfg TemplateConfig) *TemplateSource {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &TemplateSource{
		template: copyPosts(template),
		cfg:      cfg,
		rnd:      rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (s *TemplateSource) NextBatch(ctx context.Context) ([]*posts.Post, error) {
	if s.cfg.Delay > 0 {
		select {
		case <-time.After(s.cfg.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.Now()
	batch := make([]*posts.Post, 0, len(s.template))
	for _, t := range s.template {
		p := clonePost(t)
		p.ID = fmt.Sprintf("%v-%s", t.ID, uuid.New().String())
		if s.cfg.RefreshTimestamps {
			p.Created = now.Add(-time.Duration(s.rnd.Int63n(int64(24 * time.Hour))))
		}

		batch = append(batch, p)
	}

	return batch, nil
}

func clonePost(in *posts.Post) *posts.Post {
	out := *in

	if in.Images != nil {
		out.Images = make([]string, len(in.Images))
		copy(out.Images, in.Images)
	}

	out.Likes = make(map[string]bool, len(in.Likes))
	for k, v := range in.Likes {
		out.Likes[k] = v
	}

	return &out
}
