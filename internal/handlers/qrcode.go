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

// QRGenerator defines the interface that the service must implement.
type QRGenerator interface {
	Generate(ctx context.Context, stallID uuid.UUID) (string, *models.StallDB, error)
}

// QRCodeResponse represents a rendered QR summary for a stall
// swagger:model QRCodeResponse
type QRCodeResponse struct {
	// PNG QR code as a base64 data URL
	QRCode string `json:"qr_code"`

	// Stall the code was rendered for
	Stall StallPayload `json:"stall"`
}

// QRCodeErrorResponse represents an error response for the QR endpoint
// swagger:model QRCodeErrorResponse
type QRCodeErrorResponse struct {
	// Error message
	// default: Stall not found
	Error string `json:"error"`
}

// NewQRCodeHandler returns an HTTP handler rendering a stall's hygiene
// summary as a scannable QR image.
// @Summary Stall QR code
// @Description Encodes the stall's hygiene score summary into a PNG QR code, returned as a base64 data URL.
// @Tags qrcode
// @Produce json
// @Param id path string true "Stall id"
// @Success 200 {object} handlers.QRCodeResponse "QR code and stall"
// @Failure 404 {object} handlers.QRCodeErrorResponse "Stall not found"
// @Router /qrcode/{id} [get]
func NewQRCodeHandler(svc QRGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stallID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(QRCodeErrorResponse{
				Error: "Stall not found",
			})
			return
		}

		dataURL, stall, err := svc.Generate(r.Context(), stallID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrStallNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(QRCodeErrorResponse{
					Error: "Stall not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(QRCodeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QRCodeResponse{
			QRCode: dataURL,
			Stall:  toStallPayload(*stall),
		})
	}
}
