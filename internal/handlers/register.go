package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
	"github.com/hawkerwatch/hygiene-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (string, *models.UserDB, error)
}

// UserPayload is the public view of a user. The password hash is never
// part of it.
// swagger:model UserPayload
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserPayload(user *models.UserDB) UserPayload {
	return UserPayload{
		ID:        user.UserID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Session token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated user
	User UserPayload `json:"user"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email and returns a session token. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Email already registered / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: token,
			User:  toUserPayload(user),
		})
	}
}
