package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"advofeed/pkg/posts"
	"advofeed/pkg/ranking"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// FeedHandler serves the ranked feed. Filter mode and sort override come
// from query params; the evaluation instant is taken once per request so
// every post in the response is scored against the same clock.
type FeedHandler struct {
	PostsRepo    PostsRepo
	UsersRepo    UsersRepo
	CommentsRepo CommentsRepo
	Logger       *zap.SugaredLogger
	Ranking      ranking.Options
	Now          func() time.Time
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	feedPosts, err := h.PostsRepo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeRanked(w, r, feedPosts)
}

func (h *FeedHandler) GetChannelFeed(w http.ResponseWriter, r *http.Request) {
	channel := posts.Channel(mux.Vars(r)["channel"])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	feedPosts, err := h.PostsRepo.GetByChannel(ctx, channel)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeRanked(w, r, feedPosts)
}

func (h *FeedHandler) writeRanked(w http.ResponseWriter, r *http.Request, feedPosts []*posts.Post) {
	mode := ranking.FilterMode(queryOrDefault(r, "filter", string(ranking.Latest)))
	order := ranking.SortOrder(queryOrDefault(r, "sort", string(ranking.Newest)))

	ranked, err := ranking.Rank(feedPosts, mode, order, h.now(), h.Ranking)
	if err != nil {
		if errors.Is(err, ranking.ErrUnknownFilterMode) || errors.Is(err, ranking.ErrUnknownSortOrder) {
			WriteResponse(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsWithData, err := getPostsWithData(ranked, viewerID(r), h.UsersRepo, h.CommentsRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, postsWithData, http.StatusOK)
}

func (h *FeedHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}

	return time.Now()
}

func queryOrDefault(r *http.Request, name, def string) string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}

	return val
}
