package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// StallSearcher defines the interface that the service must implement.
type StallSearcher interface {
	Search(ctx context.Context, city, area, search string) ([]models.StallDB, error)
}

// NewListStallsHandler returns an HTTP handler for ranked stall search.
// @Summary List stalls
// @Description Lists stalls filtered by city, area, and free-text search, ranked by overall score descending.
// @Tags stalls
// @Produce json
// @Param city query string false "Case-insensitive substring match on city"
// @Param area query string false "Case-insensitive substring match on area"
// @Param search query string false "Free text matched against name, description, city, or area"
// @Success 200 {array} handlers.StallPayload "Ranked stalls"
// @Failure 500 {object} handlers.StallErrorResponse "Internal server error"
// @Router /stalls [get]
func NewListStallsHandler(svc StallSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		stalls, err := svc.Search(r.Context(), q.Get("city"), q.Get("area"), q.Get("search"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StallErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toStallPayloads(stalls))
	}
}
