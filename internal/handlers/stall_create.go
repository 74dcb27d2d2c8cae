package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/middlewares"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// StallCreator defines the interface that the service must implement.
type StallCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description, address, city, area string, photos []string) (models.StallDB, error)
}

// StallPayload is the public view of a stall, including its derived
// hygiene scores.
// swagger:model StallPayload
type StallPayload struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Area              string    `json:"area"`
	Photos            []string  `json:"photos"`
	WaterQualityScore float64   `json:"water_quality_score"`
	MasksScore        float64   `json:"masks_score"`
	GlovesScore       float64   `json:"gloves_score"`
	CleanlinessScore  float64   `json:"cleanliness_score"`
	OverallScore      float64   `json:"overall_score"`
	RatingCount       int       `json:"rating_count"`
	OwnerID           string    `json:"owner_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func toStallPayload(stall models.StallDB) StallPayload {
	photos := []string(stall.Photos)
	if photos == nil {
		photos = []string{}
	}
	return StallPayload{
		ID:                stall.StallID.String(),
		Name:              stall.Name,
		Description:       stall.Description,
		Address:           stall.Address,
		City:              stall.City,
		Area:              stall.Area,
		Photos:            photos,
		WaterQualityScore: stall.WaterQualityScore,
		MasksScore:        stall.MasksScore,
		GlovesScore:       stall.GlovesScore,
		CleanlinessScore:  stall.CleanlinessScore,
		OverallScore:      stall.OverallScore,
		RatingCount:       stall.RatingCount,
		OwnerID:           stall.OwnerID.String(),
		CreatedAt:         stall.CreatedAt,
	}
}

func toStallPayloads(stalls []models.StallDB) []StallPayload {
	payloads := make([]StallPayload, 0, len(stalls))
	for _, stall := range stalls {
		payloads = append(payloads, toStallPayload(stall))
	}
	return payloads
}

// CreateStallRequest represents the JSON body for stall creation
// swagger:model CreateStallRequest
type CreateStallRequest struct {
	// Stall name
	// required: true
	// default: Ahmed's Chaat Corner
	Name string `json:"name"`

	// Description
	// required: true
	Description string `json:"description"`

	// Street address
	// required: true
	Address string `json:"address"`

	// City
	// required: true
	// default: Karachi
	City string `json:"city"`

	// Area within the city
	// required: true
	// default: Clifton
	Area string `json:"area"`

	// Photo references
	Photos []string `json:"photos"`
}

// StallErrorResponse represents an error response for stall endpoints
// swagger:model StallErrorResponse
type StallErrorResponse struct {
	// Error message
	// default: Stall not found
	Error string `json:"error"`
}

// NewCreateStallHandler returns an HTTP handler for stall creation.
// @Summary Create a stall
// @Description Creates a new stall owned by the authenticated user. Scores start at zero.
// @Tags stalls
// @Accept json
// @Produce json
// @Param createStallRequest body handlers.CreateStallRequest true "Stall creation request"
// @Success 201 {object} handlers.StallPayload "Created stall"
// @Failure 400 {object} handlers.StallErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.StallErrorResponse "Unauthorized"
// @Router /stalls [post]
// @Security BearerAuth
func NewCreateStallHandler(svc StallCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StallErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req CreateStallRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StallErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		stall, err := svc.Create(r.Context(), user.UserID, req.Name, req.Description, req.Address, req.City, req.Area, req.Photos)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StallErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toStallPayload(stall))
	}
}
