package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"advofeed/pkg/session"

	"go.uber.org/zap"
)

var authRoutes = map[string]string{
	"/api/posts": http.MethodPost,
}

func needsAuth(r *http.Request) bool {
	if m, ok := authRoutes[r.URL.Path]; ok && m == r.Method {
		return true
	}

	// reactions are GET but mutate state, so they need a viewer
	for _, suffix := range []string{"/like", "/unlike", "/share"} {
		if strings.HasSuffix(r.URL.Path, suffix) {
			return true
		}
	}

	// comment add/delete and post delete
	if strings.HasPrefix(r.URL.Path, "/api/post/") &&
		(r.Method == http.MethodPost || r.Method == http.MethodDelete) {
		return true
	}

	return false
}

func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sess, err := sm.Check(ctx, r)

		if !needsAuth(r) {
			// read routes stay open, but a valid session resolves the
			// viewer so feeds can mark hasLiked
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), session.SessionKey, sess))
			}

			next.ServeHTTP(w, r)
			return
		}

		if err != nil {
			logger.Error(err.Error())
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		authCtx := context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(authCtx))
	})
}
