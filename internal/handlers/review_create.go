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

// ReviewCreator defines the interface that the service must implement.
type ReviewCreator interface {
	Create(ctx context.Context, user *models.UserDB, stallID uuid.UUID, comment string) (models.ReviewDB, error)
}

// ReviewPayload is the public view of a review.
// swagger:model ReviewPayload
type ReviewPayload struct {
	ID        string    `json:"id"`
	StallID   string    `json:"stall_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewPayload(review models.ReviewDB) ReviewPayload {
	return ReviewPayload{
		ID:        review.ReviewID.String(),
		StallID:   review.StallID.String(),
		UserID:    review.UserID.String(),
		UserName:  review.UserName,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// CreateReviewRequest represents the JSON body for review creation
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Stall id
	// required: true
	StallID string `json:"stall_id"`

	// Free-text comment
	// required: true
	Comment string `json:"comment"`
}

// ReviewErrorResponse represents an error response for review endpoints
// swagger:model ReviewErrorResponse
type ReviewErrorResponse struct {
	// Error message
	// default: Stall not found
	Error string `json:"error"`
}

// NewCreateReviewHandler returns an HTTP handler for review creation.
// @Summary Post a review
// @Description Creates a free-text review stamped with the authenticated user's name
// @Tags reviews
// @Accept json
// @Produce json
// @Param createReviewRequest body handlers.CreateReviewRequest true "Review creation request"
// @Success 201 {object} handlers.ReviewPayload "Created review"
// @Failure 400 {object} handlers.ReviewErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ReviewErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ReviewErrorResponse "Stall not found"
// @Router /reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		stallID, err := uuid.Parse(req.StallID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Error: "Stall not found",
			})
			return
		}

		review, err := svc.Create(r.Context(), user, stallID, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrStallNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReviewErrorResponse{
					Error: "Stall not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReviewErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toReviewPayload(review))
	}
}
