package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hawkerwatch/hygiene-api/internal/middlewares"
)

// MeErrorResponse represents an error response for the profile endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the authenticated user's
// profile. Secret fields are never part of the payload.
// @Summary Current user profile
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserPayload "User profile"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toUserPayload(user))
	}
}
