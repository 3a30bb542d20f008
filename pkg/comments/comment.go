package comments

import "time"

// Comment is a reply on a colleague's post. Adding or deleting one also
// moves the post's commentCount, which is what the popular and trending
// feeds weigh, so the two writes go through the handler together.
type Comment struct {
	Created  time.Time   `bson:"created"`
	AuthorID int64       `bson:"authorID"`
	Body     string      `bson:"body"`
	ID       interface{} `bson:"_id,omitempty"`
	PostID   interface{} `bson:"postID"`
}
