package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
)

// FacilityResolver resolves an NPI to its classification.
type FacilityResolver interface {
	GetFacilityType(ctx context.Context, npi string) (*entities.ClassificationResult, error)
}

// RelatedResolver expands an NPI to its related NPIs.
type RelatedResolver interface {
	GetRelated(ctx context.Context, npi string) (*entities.RelatedResult, error)
}

// ProfileResolver composes classification and related-NPI expansion.
type ProfileResolver interface {
	GetProfile(ctx context.Context, npi string) (*entities.ProfileResult, error)
}

// FacilityHandler handles facility resolution HTTP requests
type FacilityHandler struct {
	facilityService FacilityResolver
	relatedService  RelatedResolver
	profileService  ProfileResolver
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(facilityService FacilityResolver, relatedService RelatedResolver, profileService ProfileResolver) *FacilityHandler {
	return &FacilityHandler{
		facilityService: facilityService,
		relatedService:  relatedService,
		profileService:  profileService,
	}
}

// GetFacilityType handles GET /api/facilities/{npi}
func (h *FacilityHandler) GetFacilityType(w http.ResponseWriter, r *http.Request) {
	result, err := h.facilityService.GetFacilityType(r.Context(), r.PathValue("npi"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithResult(w, result.Summary, result.Facility)
}

// GetRelated handles GET /api/facilities/{npi}/related
func (h *FacilityHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	result, err := h.relatedService.GetRelated(r.Context(), r.PathValue("npi"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithResult(w, result.Summary, result)
}

// GetProfile handles GET /api/facilities/{npi}/profile
func (h *FacilityHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.GetProfile(r.Context(), r.PathValue("npi"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithResult(w, result.Summary, result)
}

// Helper functions

// respondWithResult renders the success envelope shared by every operation:
// a status tag, a one-line human-readable report and the structured data.
func respondWithResult(w http.ResponseWriter, report string, data interface{}) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"report": report,
		"data":   data,
	})
}

// respondWithAppError maps the error taxonomy onto HTTP statuses.
func respondWithAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			status = http.StatusBadRequest
		case apperrors.ErrorTypeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrorTypeExternal:
			status = http.StatusBadGateway
		case apperrors.ErrorTypeUnavailable:
			status = http.StatusServiceUnavailable
		default:
			message = "internal server error"
		}
	}

	respondWithJSON(w, status, map[string]string{
		"status":        "error",
		"error_message": message,
	})
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
