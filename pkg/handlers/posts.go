package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"advofeed/pkg/comments"
	"advofeed/pkg/posts"
	"advofeed/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	Sm           session.SessionManager
	PostsRepo    PostsRepo
	UsersRepo    UsersRepo
	CommentsRepo CommentsRepo
	StatsRepo    StatsRepo
	Logger       *zap.SugaredLogger
}

type CreatePostReq struct {
	Channel *string
	Content *string
	Images  []string
	Video   *string
}

func (p *CreatePostReq) validate() []*CustomError {
	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		err = content.Empty()
		if err != nil {
			return err
		}
		err = content.MaxLength(3000)
		if err != nil {
			return err
		}
		return content.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
	}()

	channel := &Validator{value: p.Channel, location: "body", field: "channel"}
	channelErr := func() *CustomError {
		err := channel.Required()
		if err != nil {
			return err
		}
		return channel.Empty()
	}()

	var videoErr *CustomError
	if p.Video != nil && *p.Video != "" {
		video := &Validator{value: p.Video, location: "body", field: "video"}
		videoErr = video.URL()
	}

	var imagesErr *CustomError
	for _, img := range p.Images {
		if _, err := url.ParseRequestURI(img); err != nil {
			imagesErr = &CustomError{Location: "body", Param: "images", Value: img, Msg: "is invalid"}
			break
		}
	}

	return mergeErrors(contentErr, channelErr, videoErr, imagesErr)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post := &posts.Post{
		AuthorID: sess.User.ID,
		Channel:  posts.Channel(*req.Channel),
		Content:  *req.Content,
		Images:   req.Images,
		Created:  time.Now(),
		Likes:    map[string]bool{},
	}
	if req.Video != nil {
		post.Video = *req.Video
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post.ID = id

	u, err := h.UsersRepo.GetByID(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postResp, err := MapToPostResponse(post, u, sess.User.ID, []*comments.Comment{}, h.UsersRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, postResp, http.StatusCreated)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postWithData, err := getPostData(post, viewerID(r), h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, postWithData, http.StatusOK)
}

func (h *PostHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	u, err := h.UsersRepo.GetByUsername(username)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if u == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	userPosts, err := h.PostsRepo.GetByAuthorID(ctx, u.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsWithData, err := getPostsWithData(userPosts, viewerID(r), h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, postsWithData, http.StatusOK)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ok, err := h.PostsRepo.Delete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if ok {
		WriteResponse(w, "success", http.StatusOK)
		return
	}

	WriteResponse(w, "post not found", http.StatusNotFound)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostsRepo.LikeByUser)
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostsRepo.UnlikeByUser)
}

// Share bumps the post's share counter and records the event for the
// leaderboard. A failed leaderboard write is logged but does not fail the
// share itself.
func (h *PostHandler) Share(w http.ResponseWriter, r *http.Request) {
	postIDStr := mux.Vars(r)["post_id"]
	id, err := h.PostsRepo.ParseID(postIDStr)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.Share(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err = h.StatsRepo.RecordShare(sess.User.ID, postIDStr, time.Now()); err != nil {
		h.Logger.Error(err.Error())
	}

	h.writePostResponse(w, post, sess.User.ID)
}

func (h *PostHandler) react(w http.ResponseWriter, r *http.Request,
	reaction func(context.Context, interface{}, int64) (*posts.Post, error)) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := reaction(ctx, id, sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writePostResponse(w, post, sess.User.ID)
}

func (h *PostHandler) writePostResponse(w http.ResponseWriter, post *posts.Post, viewer int64) {
	res, err := getPostData(post, viewer, h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, res, http.StatusOK)
}

func getPostsWithData(postsDb []*posts.Post, viewer int64, ur UsersRepo, cr CommentsRepo) ([]*PostResponse, error) {
	result := make([]*PostResponse, 0, len(postsDb))
	for _, p := range postsDb {
		postWithData, err := getPostData(p, viewer, ur, cr)
		if err != nil {
			return nil, err
		}

		result = append(result, postWithData)
	}

	return result, nil
}

// viewerID resolves the authenticated viewer when the auth middleware put a
// session into the context, 0 otherwise. Read routes work without a session;
// hasLiked is simply false for anonymous viewers.
func viewerID(r *http.Request) int64 {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		return 0
	}

	return sess.User.ID
}
