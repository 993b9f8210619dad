package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pixelquest/rpgcard/pkg/analytics"
	"github.com/pixelquest/rpgcard/pkg/card"
	"github.com/pixelquest/rpgcard/pkg/errors"
	"github.com/pixelquest/rpgcard/pkg/github"
	"github.com/pixelquest/rpgcard/pkg/observability"

	"github.com/go-chi/chi/v5"
)

// handleCard runs the per-request pipeline:
//
//	validate -> cache lookup -> (miss) fetch -> (ok) populate cache async -> render
//
// Every outcome, success or failure, responds with image/svg+xml.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	username := chi.URLParam(r, "username")
	opts := card.ParseOptions(r.URL.Query())

	record, cacheHit, err := s.lookup(ctx, username)

	var svg []byte
	status := http.StatusOK
	errorCode := ""

	if err != nil {
		code := errors.GetCode(err)
		status = errors.HTTPStatus(code)
		errorCode = string(code)
		svg = card.RenderError(code, opts.Theme)
		observability.Render().OnErrorCardRender(ctx, errorCode)
		// Error cards are moment-in-time; don't let intermediaries pin them.
		w.Header().Set("Cache-Control", "no-store")
	} else {
		svg = card.RenderCard(record, opts)
		observability.Render().OnCardRender(ctx, username, time.Since(start))
		w.Header().Set("Cache-Control",
			fmt.Sprintf("public, max-age=%d", int(s.browserMaxAge.Seconds())))
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(svg)

	s.afterResponse(ctx, username, opts, status, cacheHit, errorCode, err, time.Since(start))
}

// lookup resolves a username to a record: cache first, upstream on a miss.
// A cache hit skips the upstream call entirely; a fetched record is written
// back without delaying the caller.
func (s *Server) lookup(ctx context.Context, username string) (*github.UserRecord, bool, error) {
	if err := github.ValidateUsername(username); err != nil {
		return nil, false, err
	}

	if record, ok := s.store.Get(ctx, username); ok {
		return record, true, nil
	}

	record, err := s.client.FetchUser(ctx, username)
	if err != nil {
		return nil, false, err
	}

	// Fire and forget: WithoutCancel keeps the write alive after the
	// response is flushed and the request context is torn down.
	go s.store.Set(context.WithoutCancel(ctx), record)

	return record, false, nil
}

// afterResponse logs the request and records the analytics event. Runs
// after the body is written; nothing here can affect the response.
func (s *Server) afterResponse(ctx context.Context, username string, opts card.Options, status int, cacheHit bool, errorCode string, err error, elapsed time.Duration) {
	logArgs := []any{
		"request_id", requestID(ctx),
		"user", username,
		"status", status,
		"cache_hit", cacheHit,
		"duration", elapsed.Round(time.Millisecond),
	}
	if err != nil {
		s.logger.Warn("card request failed", append(logArgs, "error", errors.UserMessage(err))...)
	} else {
		s.logger.Info("card served", logArgs...)
	}

	event := analytics.Event{
		RequestID: requestID(ctx),
		Username:  username,
		Theme:     opts.Theme,
		Lang:      opts.Lang,
		Font:      opts.Font,
		Status:    status,
		CacheHit:  cacheHit,
		ErrorCode: errorCode,
		Duration:  elapsed.Milliseconds(),
		At:        time.Now().UTC(),
	}
	go s.recorder.Record(event)
}
