package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// ReviewLister defines the interface that the service must implement.
type ReviewLister interface {
	ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.ReviewDB, error)
}

// NewListReviewsHandler returns an HTTP handler for a stall's reviews.
// @Summary List reviews for a stall
// @Description Returns the stall's reviews, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Stall id"
// @Success 200 {array} handlers.ReviewPayload "Reviews"
// @Failure 500 {object} handlers.ReviewErrorResponse "Internal server error"
// @Router /reviews/stall/{id} [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stallID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]ReviewPayload{})
			return
		}

		reviews, err := svc.ListByStall(r.Context(), stallID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		payloads := make([]ReviewPayload, 0, len(reviews))
		for _, review := range reviews {
			payloads = append(payloads, toReviewPayload(review))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(payloads)
	}
}
