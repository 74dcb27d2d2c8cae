package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, review models.ReviewDB) error
}

// ReviewService handles review creation and listing.
type ReviewService struct {
	stalls StallReader
	reader ReviewReader
	writer ReviewWriter
}

// NewReviewService creates a new ReviewService.
func NewReviewService(stalls StallReader, reader ReviewReader, writer ReviewWriter) *ReviewService {
	return &ReviewService{
		stalls: stalls,
		reader: reader,
		writer: writer,
	}
}

// Create stores a review stamped with the submitting user's id and
// display name. Users may post any number of reviews per stall.
func (s *ReviewService) Create(ctx context.Context, user *models.UserDB, stallID uuid.UUID, comment string) (models.ReviewDB, error) {
	stall, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to get stall", "stall_id", stallID, "error", err)
		return models.ReviewDB{}, err
	}
	if stall == nil {
		return models.ReviewDB{}, ErrStallNotFound
	}

	review := models.ReviewDB{
		ReviewID:  uuid.New(),
		StallID:   stallID,
		UserID:    user.UserID,
		UserName:  user.Name,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, review); err != nil {
		logger.Log.Errorw("failed to save review", "stall_id", stallID, "error", err)
		return models.ReviewDB{}, err
	}

	return review, nil
}

// ListByStall returns the stall's reviews, newest first.
func (s *ReviewService) ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.ReviewDB, error) {
	reviews, err := s.reader.ListByStall(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "stall_id", stallID, "error", err)
		return nil, err
	}
	return reviews, nil
}
