package handlers

import (
	"context"
	"net/http"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// CCNSearcher resolves a facility name to CCN matches.
type CCNSearcher interface {
	SearchByName(ctx context.Context, name, state string) (*entities.CCNSearchResult, error)
}

// CCNHandler handles CCN search HTTP requests
type CCNHandler struct {
	searchService CCNSearcher
}

// NewCCNHandler creates a new CCN search handler
func NewCCNHandler(searchService CCNSearcher) *CCNHandler {
	return &CCNHandler{
		searchService: searchService,
	}
}

// SearchCCN handles GET /api/ccn/search?name=...&state=...
func (h *CCNHandler) SearchCCN(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.searchService.SearchByName(r.Context(), query.Get("name"), query.Get("state"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithResult(w, result.Summary, result)
}
