// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/matchline/internal/adapters/source"
	"github.com/okian/matchline/internal/domain/model"
)

// MatchDependencies defines the interface for match detail lookups.
type MatchDependencies interface {
	Match(ctx context.Context, matchID string) (model.MatchDetail, error)
}

// MatchHandler handles match detail requests.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandleGetMatch handles GET /match/{id} requests.
func (h *MatchHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_match"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	matchID := strings.TrimPrefix(r.URL.Path, "/match/")
	matchID = strings.TrimSuffix(matchID, "/")
	if !isNumeric(matchID) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	detail, err := h.deps.Match(r.Context(), matchID)
	if err != nil {
		switch {
		case errors.Is(err, source.ErrPageFetch), errors.Is(err, source.ErrFeedFetch):
			writeError(w, http.StatusBadGateway, "upstream_error", WrapKind(op, ErrUpstream, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// isNumeric reports whether id is a non-empty digit string.
func isNumeric(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
