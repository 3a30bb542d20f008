package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"advofeed/pkg/comments"
	"advofeed/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentsRepo CommentsRepo
	PostsRepo    PostsRepo
	UsersRepo    UsersRepo
	Logger       *zap.SugaredLogger
}

type AddCommentReq struct {
	Comment *string `json:"comment"`
}

func (req *AddCommentReq) validate() []*CustomError {
	comment := &Validator{value: req.Comment, location: "body", field: "comment"}
	commentErr := func() *CustomError {
		err := comment.Required()
		if err != nil {
			return err
		}
		err = comment.Empty()
		if err != nil {
			return err
		}
		return comment.MaxLength(2000)
	}()

	return mergeErrors(commentErr)
}

// Add stores the comment and bumps the post's comment counter, which feeds
// the ranking engagement sum.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	postID, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req AddCommentReq
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

	comment := &comments.Comment{
		Created:  time.Now(),
		AuthorID: sess.User.ID,
		Body:     *req.Comment,
		PostID:   postID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	id, err := h.CommentsRepo.Add(ctx, comment)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	comment.ID = id

	if err = h.PostsRepo.IncCommentCount(ctx, postID, 1); err != nil {
		h.Logger.Error(err.Error())
	}

	post, err := h.PostsRepo.GetByID(ctx, postID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	res, err := getPostData(post, sess.User.ID, h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, res, http.StatusCreated)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	commentID, err := h.CommentsRepo.ParseID(mux.Vars(r)["comment_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ok, err := h.CommentsRepo.Delete(ctx, commentID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}

	if err = h.PostsRepo.IncCommentCount(ctx, postID, -1); err != nil {
		h.Logger.Error(err.Error())
	}

	post, err := h.PostsRepo.GetByID(ctx, postID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	res, err := getPostData(post, viewerID(r), h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, res, http.StatusOK)
}
