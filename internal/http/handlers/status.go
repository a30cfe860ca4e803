package handlers

import (
	"context"
	"net/http"
)

// Health handles GET /health.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "eventstudio",
	})
}

// modelProber is implemented by tiers that can cheaply probe individual
// hosted models.
type modelProber interface {
	ModelStatuses(ctx context.Context) map[string]bool
}

// ModelsStatus handles GET /models/status, reporting which provider tiers
// would be attempted for the next request plus per-model probe results where
// the tier supports them. The template tier is always available.
func (a *App) ModelsStatus(w http.ResponseWriter, r *http.Request) {
	providers := map[string]bool{
		"template": true,
	}
	providers["chat"] = a.Text != nil && a.Text.Available()
	models := map[string]bool{}
	for _, gen := range a.Images {
		available := gen.Available(r.Context())
		providers[gen.Name()] = available
		if prober, ok := gen.(modelProber); ok && available {
			for tag, up := range prober.ModelStatuses(r.Context()) {
				models[tag] = up
			}
		}
	}
	a.json(w, http.StatusOK, map[string]any{"providers": providers, "models": models})
}

// HistoryHandler handles GET /history. Without a configured database the endpoint
// answers with an empty list rather than failing.
func (a *App) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if a.History == nil {
		a.json(w, http.StatusOK, map[string]any{"history": []any{}, "count": 0})
		return
	}
	entries, err := a.History.Recent(r.Context(), 10)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: failed to load history")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load history")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"history": entries, "count": len(entries)})
}
