package ranking

import (
	"math"
	"time"

	"advofeed/pkg/posts"
)

// Weights controls how much each engagement counter contributes to the
// trending score. The defaults favor amplification signals over passive
// approval: a share counts 3x, a comment 2x, a like 1x.
type Weights struct {
	Like    float64
	Comment float64
	Share   float64
}

type Options struct {
	Weights Weights

	// TrendingWindow is the maximum post age the trending filter keeps.
	// A post aged exactly TrendingWindow is still included.
	TrendingWindow time.Duration

	// GravityOffset (hours) and GravityExp shape the time decay:
	// score = engagement / (hoursSincePost + GravityOffset)^GravityExp.
	GravityOffset float64
	GravityExp    float64
}

func DefaultOptions() Options {
	return Options{
		Weights:        Weights{Like: 1, Comment: 2, Share: 3},
		TrendingWindow: 24 * time.Hour,
		GravityOffset:  2,
		GravityExp:     1.5,
	}
}

// Engagement is the weighted counter sum a trending score decays over time.
func Engagement(p *posts.Post, w Weights) float64 {
	return w.Like*float64(p.LikeCount()) +
		w.Comment*float64(p.CommentCount) +
		w.Share*float64(p.Shares)
}

// TrendingScore computes the decayed engagement score of a post at the
// instant now. The caller supplies now, the core never reads the clock.
// Future-dated posts keep their negative age: no floor is applied.
func TrendingScore(p *posts.Post, now time.Time, opts Options) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	hoursSincePost := now.Sub(p.Created).Hours()
	divisor := math.Pow(hoursSincePost+opts.GravityOffset, opts.GravityExp)

	return Engagement(p, opts.Weights) / divisor, nil
}

// CompareLatest orders posts most recent first. It returns -1 when a ranks
// before b, 1 when after, 0 on a tie; ties are left to the stable sort.
func CompareLatest(a, b *posts.Post) int {
	if a.Created.After(b.Created) {
		return -1
	}
	if b.Created.After(a.Created) {
		return 1
	}

	return 0
}

// ComparePopular orders posts by unweighted counter sum, highest first.
func ComparePopular(a, b *posts.Post) int {
	return compareDesc(float64(a.EngagementTotal()), float64(b.EngagementTotal()))
}

// CompareTrending orders posts by trending score at now, highest first.
// Both posts must already be validated.
func CompareTrending(a, b *posts.Post, now time.Time, opts Options) int {
	scoreA, _ := TrendingScore(a, now, opts)
	scoreB, _ := TrendingScore(b, now, opts)

	return compareDesc(scoreA, scoreB)
}

func compareDesc(a, b float64) int {
	if a > b {
		return -1
	}
	if b > a {
		return 1
	}

	return 0
}
