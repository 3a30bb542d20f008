package posts

import (
	"errors"
	"time"
)

type Channel string

const (
	AllChannels Channel = "all"
	CompanyNews Channel = "company-news"
	Product     Channel = "product"
	Engineering Channel = "engineering"
	Marketing   Channel = "marketing"
	Culture     Channel = "culture"
)

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidCounter   = errors.New("invalid counter")
)

type Post struct {
	ID           interface{}     `bson:"_id,omitempty"`
	AuthorID     int64           `bson:"authorID"`
	Channel      Channel         `bson:"channel"`
	Content      string          `bson:"content"`
	Images       []string        `bson:"images,omitempty"`
	Video        string          `bson:"video,omitempty"`
	Created      time.Time       `bson:"created"`
	Likes        map[string]bool `bson:"likes"`
	CommentCount int64           `bson:"commentCount"`
	Shares       int64           `bson:"shares"`
}

func (p *Post) LikeCount() int64 {
	return int64(len(p.Likes))
}

func (p *Post) LikedBy(userID string) bool {
	return p.Likes[userID]
}

// EngagementTotal is the unweighted counter sum used by the "popular" ordering.
func (p *Post) EngagementTotal() int64 {
	return p.LikeCount() + p.CommentCount + p.Shares
}

// Validate rejects posts an upstream producer built incorrectly. Ranking
// treats these as programming errors, not transient conditions.
func (p *Post) Validate() error {
	if p.Created.IsZero() {
		return ErrInvalidTimestamp
	}

	if p.CommentCount < 0 || p.Shares < 0 {
		return ErrInvalidCounter
	}

	return nil
}
