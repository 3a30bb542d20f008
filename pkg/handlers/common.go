package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"advofeed/pkg/comments"
	"advofeed/pkg/posts"
	"advofeed/pkg/stats"
	"advofeed/pkg/user"
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

type PostsRepo interface {
	GetAll(context.Context) ([]*posts.Post, error)
	GetByID(context.Context, interface{}) (*posts.Post, error)
	GetByChannel(context.Context, posts.Channel) ([]*posts.Post, error)
	GetByAuthorID(context.Context, interface{}) ([]*posts.Post, error)
	Add(context.Context, *posts.Post) (interface{}, error)
	Delete(context.Context, interface{}) (bool, error)
	LikeByUser(context.Context, interface{}, int64) (*posts.Post, error)
	UnlikeByUser(context.Context, interface{}, int64) (*posts.Post, error)
	Share(context.Context, interface{}) (*posts.Post, error)
	IncCommentCount(context.Context, interface{}, int64) error

	ParseID(string) (interface{}, error)
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	Add(user *user.User) (int64, error)
}

type CommentsRepo interface {
	GetByPostID(ctx context.Context, id interface{}) ([]*comments.Comment, error)
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
	Add(ctx context.Context, comment *comments.Comment) (interface{}, error)
	Delete(ctx context.Context, id interface{}) (bool, error)

	ParseID(in string) (interface{}, error)
}

type StatsRepo interface {
	RecordShare(userID int64, postID string, created time.Time) (int64, error)
	TopSharers(limit int) ([]*stats.LeaderboardEntry, error)
}

type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type PostResponse struct {
	ID           interface{}        `json:"id"`
	Author       *Author            `json:"author"`
	Channel      posts.Channel      `json:"channel"`
	Content      string             `json:"content"`
	Images       []string           `json:"images,omitempty"`
	Video        string             `json:"video,omitempty"`
	Created      time.Time          `json:"timestamp"`
	Likes        int64              `json:"likes"`
	CommentCount int64              `json:"comments"`
	Shares       int64              `json:"shares"`
	HasLiked     bool               `json:"hasLiked"`
	CommentsList []*CommentResponse `json:"commentsList"`
}

type CommentResponse struct {
	Created time.Time   `json:"created"`
	Author  *Author     `json:"author"`
	Body    string      `json:"body"`
	ID      interface{} `json:"id"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

func writeJSON(w http.ResponseWriter, v interface{}, status int) error {
	respBytes, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.WriteHeader(status)
	w.Write(respBytes)

	return nil
}

func getPostData(p *posts.Post, viewerID int64, ur UsersRepo, cr CommentsRepo) (*PostResponse, error) {
	author, err := ur.GetByID(p.AuthorID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	postComments, err := cr.GetByPostID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return MapToPostResponse(p, author, viewerID, postComments, ur)
}

func MapToPostResponse(post *posts.Post, author *user.User, viewerID int64, postComments []*comments.Comment, usersRepo UsersRepo) (*PostResponse, error) {
	commentsResp, err := mapToCommentsResponse(postComments, usersRepo)
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		ID:           post.ID,
		Author:       &Author{ID: author.ID, Username: author.Username, Role: author.Role, Avatar: author.Avatar},
		Channel:      post.Channel,
		Content:      post.Content,
		Images:       post.Images,
		Video:        post.Video,
		Created:      post.Created,
		Likes:        post.LikeCount(),
		CommentCount: post.CommentCount,
		Shares:       post.Shares,
		HasLiked:     viewerID != 0 && post.LikedBy(formatUserID(viewerID)),
		CommentsList: commentsResp,
	}, nil
}

func formatUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func mapToCommentsResponse(postComments []*comments.Comment, usersRepo UsersRepo) ([]*CommentResponse, error) {
	result := make([]*CommentResponse, 0, len(postComments))
	for _, c := range postComments {
		author, err := usersRepo.GetByID(c.AuthorID)
		if err != nil {
			return nil, err
		}

		mapped := &CommentResponse{
			Created: c.Created,
			Author:  &Author{ID: author.ID, Username: author.Username, Role: author.Role, Avatar: author.Avatar},
			Body:    c.Body,
			ID:      c.ID,
		}
		result = append(result, mapped)
	}

	return result, nil
}
