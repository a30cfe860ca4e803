// Package handlers exposes the HTTP surface over the generation pipelines.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"eventstudio/internal/adapter/repo"
	"eventstudio/internal/infra"
	"eventstudio/internal/pipeline"
	imgprov "eventstudio/internal/providers/image"
	"eventstudio/internal/providers/text"
)

// HistoryStore is the persistence surface the handlers need; nil disables
// history entirely.
type HistoryStore interface {
	Save(ctx context.Context, generationType string, input, output any) error
	Recent(ctx context.Context, limit int) ([]repo.HistoryEntry, error)
}

// App is the handler container carrying the pipelines and their provider
// tiers for status reporting.
type App struct {
	Pipeline *pipeline.Service
	Text     text.Generator
	Images   []imgprov.Generator
	History  HistoryStore
	Logger   *infra.Logger
}

// NewApp constructs the handler container.
func NewApp(p *pipeline.Service, textGen text.Generator, images []imgprov.Generator, history HistoryStore, logger *infra.Logger) *App {
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &App{
		Pipeline: p,
		Text:     textGen,
		Images:   images,
		History:  history,
		Logger:   logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}

// recordHistory persists a generation outcome in the background so the
// response never waits on the database; storage failures are logged and
// swallowed.
func (a *App) recordHistory(generationType string, input, output any) {
	if a.History == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.History.Save(ctx, generationType, input, output); err != nil {
			a.Logger.Warn().Err(err).Str("type", generationType).Msg("handlers: failed to record history")
		}
	}()
}
