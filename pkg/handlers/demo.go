package handlers

import (
	"errors"
	"net/http"
	"time"

	"advofeed/pkg/feed"
	"advofeed/pkg/ranking"

	"go.uber.org/zap"
)

// DemoFeedHandler serves a feed backed by an in-memory buffer instead of the
// post store, for running the service without a backend. GetFeed ranks the
// buffer snapshot; LoadMore appends the next recycled batch. The buffer owns
// single-flight loading, the handler only triggers it.
type DemoFeedHandler struct {
	Buffer       *feed.Buffer
	UsersRepo    UsersRepo
	CommentsRepo CommentsRepo
	Logger       *zap.SugaredLogger
	Ranking      ranking.Options
	Now          func() time.Time
}

type LoadMoreResponse struct {
	Loaded  bool `json:"loaded"`
	HasMore bool `json:"hasMore"`
	Total   int  `json:"total"`
}

func (h *DemoFeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	mode := ranking.FilterMode(queryOrDefault(r, "filter", string(ranking.Latest)))
	order := ranking.SortOrder(queryOrDefault(r, "sort", string(ranking.Newest)))

	ranked, err := ranking.Rank(h.Buffer.Posts(), mode, order, h.now(), h.Ranking)
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

func (h *DemoFeedHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	before := len(h.Buffer.Posts())
	if err := h.Buffer.LoadMore(r.Context()); err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "load failed", http.StatusBadGateway)
		return
	}

	after := h.Buffer.Posts()
	writeJSON(w, &LoadMoreResponse{
		Loaded:  len(after) > before,
		HasMore: h.Buffer.HasMore(),
		Total:   len(after),
	}, http.StatusOK)
}

func (h *DemoFeedHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}

	return time.Now()
}
