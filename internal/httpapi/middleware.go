package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/asakaida/banken/internal/entities"
)

// SubjectHeader carries the caller identity, set by the verifying front
// proxy. Authentication itself happens upstream; this service only trusts
// the header value.
const SubjectHeader = "X-Auth-Subject"

type contextKey string

const callerKey contextKey = "caller"

// identity stores the caller identity from SubjectHeader in the request
// context. A missing header yields an empty caller; guarded routes reject
// that with 401.
func identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := strings.TrimSpace(r.Header.Get(SubjectHeader))
		ctx := context.WithValue(r.Context(), callerKey, entities.UserID(subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) entities.UserID {
	caller, _ := ctx.Value(callerKey).(entities.UserID)
	return caller
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}
