package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/middlewares"
	"github.com/hawkerwatch/hygiene-api/internal/models"
	"github.com/hawkerwatch/hygiene-api/internal/services"
)

// RatingSubmitter defines the interface that the service must implement.
type RatingSubmitter interface {
	Submit(ctx context.Context, user *models.UserDB, stallID uuid.UUID, input services.RatingInput) (models.RatingDB, error)
}

// RatingPayload is the public view of a rating.
// swagger:model RatingPayload
type RatingPayload struct {
	ID           string    `json:"id"`
	StallID      string    `json:"stall_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	WaterQuality float64   `json:"water_quality"`
	Masks        float64   `json:"masks"`
	Gloves       float64   `json:"gloves"`
	Cleanliness  float64   `json:"cleanliness"`
	Overall      float64   `json:"overall"`
	CreatedAt    time.Time `json:"created_at"`
}

func toRatingPayload(rating models.RatingDB) RatingPayload {
	return RatingPayload{
		ID:           rating.RatingID.String(),
		StallID:      rating.StallID.String(),
		UserID:       rating.UserID.String(),
		UserName:     rating.UserName,
		WaterQuality: rating.WaterQuality,
		Masks:        rating.Masks,
		Gloves:       rating.Gloves,
		Cleanliness:  rating.Cleanliness,
		Overall:      rating.Overall,
		CreatedAt:    rating.CreatedAt,
	}
}

// CreateRatingRequest represents the JSON body for rating submission
// swagger:model CreateRatingRequest
type CreateRatingRequest struct {
	// Stall id
	// required: true
	StallID string `json:"stall_id"`

	// Water quality score, 1 to 5
	// required: true
	// default: 4
	WaterQuality float64 `json:"water_quality"`

	// Mask usage score, 1 to 5
	// required: true
	// default: 4
	Masks float64 `json:"masks"`

	// Glove usage score, 1 to 5
	// required: true
	// default: 4
	Gloves float64 `json:"gloves"`

	// Cleanliness score, 1 to 5
	// required: true
	// default: 4
	Cleanliness float64 `json:"cleanliness"`
}

// RatingErrorResponse represents an error response for rating endpoints
// swagger:model RatingErrorResponse
type RatingErrorResponse struct {
	// Error message
	// default: rating values must be between 1 and 5
	Error string `json:"error"`
}

// NewCreateRatingHandler returns an HTTP handler for rating submission.
// A resubmission by the same user for the same stall replaces the prior
// rating; the stall's aggregates are recomputed before the response.
// @Summary Submit a rating
// @Description Upserts the authenticated user's rating for a stall and recomputes the stall's aggregate scores.
// @Tags ratings
// @Accept json
// @Produce json
// @Param createRatingRequest body handlers.CreateRatingRequest true "Rating submission"
// @Success 200 {object} handlers.RatingPayload "Upserted rating"
// @Failure 400 {object} handlers.RatingErrorResponse "Out-of-range value / invalid request"
// @Failure 401 {object} handlers.RatingErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RatingErrorResponse "Stall not found"
// @Router /ratings [post]
// @Security BearerAuth
func NewCreateRatingHandler(svc RatingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		stallID, err := uuid.Parse(req.StallID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RatingErrorResponse{
				Error: "Stall not found",
			})
			return
		}

		rating, err := svc.Submit(r.Context(), user, stallID, services.RatingInput{
			WaterQuality: req.WaterQuality,
			Masks:        req.Masks,
			Gloves:       req.Gloves,
			Cleanliness:  req.Cleanliness,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRatingOutOfRange):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RatingErrorResponse{
					Error: "rating values must be between 1 and 5",
				})
			case errors.Is(err, services.ErrStallNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RatingErrorResponse{
					Error: "Stall not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RatingErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toRatingPayload(rating))
	}
}
