package ranking

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"advofeed/pkg/posts"
)

type FilterMode string

const (
	Latest   FilterMode = "latest"
	Popular  FilterMode = "popular"
	Trending FilterMode = "trending"
)

type SortOrder string

const (
	Newest       SortOrder = "newest"
	Oldest       SortOrder = "oldest"
	MostLikes    SortOrder = "mostLikes"
	MostComments SortOrder = "mostComments"
)

var (
	ErrUnknownFilterMode = errors.New("unknown filter mode")
	ErrUnknownSortOrder  = errors.New("unknown sort order")
)

// ApplyFilter subsets and orders a post collection by the given mode. The
// input is validated up front and never mutated; the result is a fresh slice.
func ApplyFilter(in []*posts.Post, mode FilterMode, now time.Time, opts Options) ([]*posts.Post, error) {
	for _, p := range in {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	switch mode {
	case Latest:
		out := copyPosts(in)
		sort.SliceStable(out, func(i, j int) bool { return CompareLatest(out[i], out[j]) < 0 })
		return out, nil
	case Popular:
		out := copyPosts(in)
		sort.SliceStable(out, func(i, j int) bool { return ComparePopular(out[i], out[j]) < 0 })
		return out, nil
	case Trending:
		out := make([]*posts.Post, 0, len(in))
		for _, p := range in {
			// age > window excluded, age == window kept
			if now.Sub(p.Created) <= opts.TrendingWindow {
				out = append(out, p)
			}
		}

		scores := make([]float64, len(out))
		for i, p := range out {
			scores[i], _ = TrendingScore(p, now, opts)
		}

		sort.Stable(&permutation{posts: out, scores: scores})
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilterMode, mode)
	}
}

// ApplySortOverride reorders the sequence a filter produced. Oldest is
// defined as the exact reverse of the received order, not an ascending
// re-sort: reversing a trending feed yields the trending order reversed.
func ApplySortOverride(in []*posts.Post, order SortOrder) ([]*posts.Post, error) {
	out := copyPosts(in)

	switch order {
	case Newest:
		return out, nil
	case Oldest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out, nil
	case MostLikes:
		sort.SliceStable(out, func(i, j int) bool { return out[i].LikeCount() > out[j].LikeCount() })
		return out, nil
	case MostComments:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CommentCount > out[j].CommentCount })
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortOrder, order)
	}
}

// Rank is the composite the feed endpoints call on every request: filter
// first, then the secondary sort override. No state is kept between calls
// since both now and the collection change between requests.
func Rank(in []*posts.Post, mode FilterMode, order SortOrder, now time.Time, opts Options) ([]*posts.Post, error) {
	filtered, err := ApplyFilter(in, mode, now, opts)
	if err != nil {
		return nil, err
	}

	return ApplySortOverride(filtered, order)
}

func copyPosts(in []*posts.Post) []*posts.Post {
	out := make([]*posts.Post, len(in))
	copy(out, in)

	return out
}

// permutation keeps precomputed trending scores aligned with their posts
// while sorting, so each score is computed once per call.
type permutation struct {
	posts  []*posts.Post
	scores []float64
}

func (s *permutation) Len() int { return len(s.posts) }

func (s *permutation) Less(i, j int) bool { return s.scores[i] > s.scores[j] }

func (s *permutation) Swap(i, j int) {
	s.posts[i], s.posts[j] = s.posts[j], s.posts[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
