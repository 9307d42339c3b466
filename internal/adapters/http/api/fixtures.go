// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/matchline/internal/domain/model"
)

// FixturesDependencies defines the interface for fixture listings.
type FixturesDependencies interface {
	Fixtures(ctx context.Context, all bool) ([]model.Fixture, error)
}

// FixturesHandler handles fixture listing requests.
type FixturesHandler struct {
	deps FixturesDependencies
}

// NewFixturesHandler creates a new fixtures handler.
func NewFixturesHandler(deps FixturesDependencies) *FixturesHandler {
	return &FixturesHandler{deps: deps}
}

// HandleGetFixtures handles GET /matches requests. The listing is capped
// to the configured default unless ?all=true is passed.
func (h *FixturesHandler) HandleGetFixtures(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_fixtures"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	all := r.URL.Query().Get("all") == "true"
	fixtures, err := h.deps.Fixtures(r.Context(), all)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", WrapKind(op, ErrUpstream, err))
		return
	}
	if fixtures == nil {
		fixtures = []model.Fixture{}
	}
	writeJSON(w, http.StatusOK, fixtures)
}
