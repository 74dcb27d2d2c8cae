package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
	"github.com/hawkerwatch/hygiene-api/internal/services"
)

// StallGetter defines the interface that the service must implement.
type StallGetter interface {
	Get(ctx context.Context, stallID uuid.UUID) (*models.StallDB, error)
}

// NewGetStallHandler returns an HTTP handler for a single stall lookup.
// @Summary Get a stall
// @Description Returns one stall by id
// @Tags stalls
// @Produce json
// @Param id path string true "Stall id"
// @Success 200 {object} handlers.StallPayload "Stall"
// @Failure 404 {object} handlers.StallErrorResponse "Stall not found"
// @Router /stalls/{id} [get]
func NewGetStallHandler(svc StallGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stallID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(StallErrorResponse{
				Error: "Stall not found",
			})
			return
		}

		stall, err := svc.Get(r.Context(), stallID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrStallNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(StallErrorResponse{
					Error: "Stall not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(StallErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toStallPayload(*stall))
	}
}
