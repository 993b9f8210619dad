// Package server wires the card pipeline to HTTP.
//
// Each request runs the same state machine: validate the username, consult
// the freshness cache, fetch from GitHub on a miss, render, respond. The
// response body is a valid SVG document for every outcome, including
// failures, so embedding clients degrade to an error card instead of a
// broken image. Cache population and analytics run after the response and
// never block it.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pixelquest/rpgcard/pkg/analytics"
	"github.com/pixelquest/rpgcard/pkg/buildinfo"
	"github.com/pixelquest/rpgcard/pkg/github"
)

// DefaultBrowserMaxAge is the Cache-Control max-age on success responses.
// Deliberately shorter than the server-side freshness TTL so browsers
// revalidate well before the server would serve stale data.
const DefaultBrowserMaxAge = 2 * time.Minute

// Server holds the collaborators of the request orchestrator.
type Server struct {
	store         *github.Store
	client        *github.Client
	recorder      *analytics.Recorder
	logger        *log.Logger
	browserMaxAge time.Duration
}

// New creates a server. recorder may be nil to disable analytics; a
// non-positive browserMaxAge falls back to DefaultBrowserMaxAge.
func New(store *github.Store, client *github.Client, recorder *analytics.Recorder, logger *log.Logger, browserMaxAge time.Duration) *Server {
	if browserMaxAge <= 0 {
		browserMaxAge = DefaultBrowserMaxAge
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:         store,
		client:        client,
		recorder:      recorder,
		logger:        logger,
		browserMaxAge: browserMaxAge,
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/rpg/{username}", s.handleCard)
	r.Get("/preview/{username}", s.handlePreview)
	return r
}

// handleRoot is the liveness endpoint.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "rpgcard %s ok\n", buildinfo.Version)
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestIDMiddleware tags every request with a UUID for log and analytics
// correlation.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestID retrieves the request ID, empty outside the middleware.
func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
