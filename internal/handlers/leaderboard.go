package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// Leaderboarder defines the interface that the service must implement.
type Leaderboarder interface {
	Leaderboard(ctx context.Context, city, area string) ([]models.StallDB, error)
}

// LeaderboardErrorResponse represents an error response for the leaderboard
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard.
// @Summary Leaderboard
// @Description Returns the top 50 stalls by overall score, optionally filtered by city and area.
// @Tags leaderboard
// @Produce json
// @Param city query string false "Case-insensitive substring match on city"
// @Param area query string false "Case-insensitive substring match on area"
// @Success 200 {array} handlers.StallPayload "Top stalls"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc Leaderboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		stalls, err := svc.Leaderboard(r.Context(), q.Get("city"), q.Get("area"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toStallPayloads(stalls))
	}
}
