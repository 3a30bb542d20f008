package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const defaultLeaderboardSize = 10

type LeaderboardHandler struct {
	StatsRepo StatsRepo
	Logger    *zap.SugaredLogger
}

type LeaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Shares   int64  `json:"shares"`
}

func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			WriteResponse(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.StatsRepo.TopSharers(limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := make([]*LeaderboardEntryResponse, 0, len(entries))
	for i, e := range entries {
		resp = append(resp, &LeaderboardEntryResponse{
			Rank:     i + 1,
			UserID:   e.UserID,
			Username: e.Username,
			Shares:   e.Shares,
		})
	}

	writeJSON(w, resp, http.StatusOK)
}
