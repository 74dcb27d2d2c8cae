package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// qrImageSize is the rendered PNG edge length in pixels.
const qrImageSize = 256

// QRCodeService renders a scannable summary of a stall's hygiene
// scores.
type QRCodeService struct {
	stalls StallReader
}

// NewQRCodeService creates a new QRCodeService.
func NewQRCodeService(stalls StallReader) *QRCodeService {
	return &QRCodeService{stalls: stalls}
}

// Generate encodes the stall's score summary into a PNG QR code and
// returns it as a base64 data URL together with the stall record.
func (s *QRCodeService) Generate(ctx context.Context, stallID uuid.UUID) (string, *models.StallDB, error) {
	stall, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to get stall", "stall_id", stallID, "error", err)
		return "", nil, err
	}
	if stall == nil {
		return "", nil, ErrStallNotFound
	}

	payload := fmt.Sprintf(
		"Hygiene Score: %.1f/5.0\nWater: %.1f | Masks: %.1f | Gloves: %.1f | Clean: %.1f\nStall: %s",
		stall.OverallScore,
		stall.WaterQualityScore,
		stall.MasksScore,
		stall.GlovesScore,
		stall.CleanlinessScore,
		stall.Name,
	)

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		logger.Log.Errorw("failed to encode qr code", "stall_id", stallID, "error", err)
		return "", nil, err
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return dataURL, stall, nil
}
