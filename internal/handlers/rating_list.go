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

// RatingLister defines the interface that the service must implement.
type RatingLister interface {
	ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.RatingDB, error)
}

// NewListRatingsHandler returns an HTTP handler for a stall's ratings.
// @Summary List ratings for a stall
// @Description Returns every rating submitted for the stall
// @Tags ratings
// @Produce json
// @Param id path string true "Stall id"
// @Success 200 {array} handlers.RatingPayload "Ratings"
// @Failure 500 {object} handlers.RatingErrorResponse "Internal server error"
// @Router /ratings/stall/{id} [get]
func NewListRatingsHandler(svc RatingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stallID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]RatingPayload{})
			return
		}

		ratings, err := svc.ListByStall(r.Context(), stallID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		payloads := make([]RatingPayload, 0, len(ratings))
		for _, rating := range ratings {
			payloads = append(payloads, toRatingPayload(rating))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(payloads)
	}
}
