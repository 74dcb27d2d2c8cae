package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// Error variables
var (
	ErrStallNotFound    = errors.New("stall not found")
	ErrRatingOutOfRange = errors.New("rating values must be between 1 and 5")
)

// RatingInput carries the four category values of a submission.
type RatingInput struct {
	WaterQuality float64
	Masks        float64
	Gloves       float64
	Cleanliness  float64
}

// StallReader looks up stalls.
type StallReader interface {
	GetByID(ctx context.Context, stallID uuid.UUID) (*models.StallDB, error)
}

// StallScoreWriter writes the derived aggregate fields onto a stall.
type StallScoreWriter interface {
	UpdateScores(ctx context.Context, stallID uuid.UUID, scores models.StallScores) error
}

// RatingReader defines read operations on the rating ledger.
type RatingReader interface {
	ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.RatingDB, error)
}

// RatingWriter defines write operations on the rating ledger.
type RatingWriter interface {
	Upsert(ctx context.Context, rating models.RatingDB) (models.RatingDB, error)
}

// CacheInvalidator drops cached leaderboard pages after a recompute.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RatingService handles rating submission and aggregate recompute.
type RatingService struct {
	stalls      StallReader
	scores      StallScoreWriter
	reader      RatingReader
	writer      RatingWriter
	cache       CacheInvalidator
	kafkaWriter KafkaWriter
}

// NewRatingService creates a new RatingService.
func NewRatingService(
	stalls StallReader,
	scores StallScoreWriter,
	reader RatingReader,
	writer RatingWriter,
	cache CacheInvalidator,
	kafkaWriter KafkaWriter,
) *RatingService {
	return &RatingService{
		stalls:      stalls,
		scores:      scores,
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// round2 rounds a score to two decimal places before publication.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Submit validates and stores a user's rating for a stall, then
// recomputes the stall's aggregates before returning, so the caller's
// next read of the stall sees the updated scores. A resubmission by the
// same user replaces the prior row instead of adding one.
func (s *RatingService) Submit(ctx context.Context, user *models.UserDB, stallID uuid.UUID, input RatingInput) (models.RatingDB, error) {
	for _, v := range []float64{input.WaterQuality, input.Masks, input.Gloves, input.Cleanliness} {
		if v < 1 || v > 5 {
			return models.RatingDB{}, ErrRatingOutOfRange
		}
	}

	stall, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to get stall", "stall_id", stallID, "error", err)
		return models.RatingDB{}, err
	}
	if stall == nil {
		return models.RatingDB{}, ErrStallNotFound
	}

	overall := (input.WaterQuality + input.Masks + input.Gloves + input.Cleanliness) / 4

	rating := models.RatingDB{
		RatingID:     uuid.New(),
		StallID:      stallID,
		UserID:       user.UserID,
		UserName:     user.Name,
		WaterQuality: input.WaterQuality,
		Masks:        input.Masks,
		Gloves:       input.Gloves,
		Cleanliness:  input.Cleanliness,
		Overall:      overall,
		CreatedAt:    time.Now().UTC(),
	}

	saved, err := s.writer.Upsert(ctx, rating)
	if err != nil {
		logger.Log.Errorw("failed to upsert rating", "stall_id", stallID, "user_id", user.UserID, "error", err)
		return models.RatingDB{}, err
	}

	if err := s.Recompute(ctx, stallID); err != nil {
		return models.RatingDB{}, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
		}
	}

	s.publishRating(ctx, saved)

	return saved, nil
}

// Recompute reloads the stall's full rating set and rewrites its five
// score fields and rating count. The overall score is the mean of the
// four per-category means, each published value rounded to two
// decimals. Idempotent: with no ledger change it rewrites the same
// values.
func (s *RatingService) Recompute(ctx context.Context, stallID uuid.UUID) error {
	ratings, err := s.reader.ListByStall(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "stall_id", stallID, "error", err)
		return err
	}

	var scores models.StallScores
	if n := float64(len(ratings)); n > 0 {
		var water, masks, gloves, clean float64
		for _, r := range ratings {
			water += r.WaterQuality
			masks += r.Masks
			gloves += r.Gloves
			clean += r.Cleanliness
		}
		avgWater := water / n
		avgMasks := masks / n
		avgGloves := gloves / n
		avgClean := clean / n

		scores = models.StallScores{
			WaterQuality: round2(avgWater),
			Masks:        round2(avgMasks),
			Gloves:       round2(avgGloves),
			Cleanliness:  round2(avgClean),
			Overall:      round2((avgWater + avgMasks + avgGloves + avgClean) / 4),
			RatingCount:  len(ratings),
		}
	}

	if err := s.scores.UpdateScores(ctx, stallID, scores); err != nil {
		logger.Log.Errorw("failed to update stall scores", "stall_id", stallID, "error", err)
		return err
	}

	return nil
}

// ListByStall returns every rating for the stall.
func (s *RatingService) ListByStall(ctx context.Context, stallID uuid.UUID) ([]models.RatingDB, error) {
	ratings, err := s.reader.ListByStall(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "stall_id", stallID, "error", err)
		return nil, err
	}
	return ratings, nil
}

// publishRating publishes an accepted rating to Kafka.
func (s *RatingService) publishRating(ctx context.Context, rating models.RatingDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "rating_id", rating.RatingID)
		return
	}

	data, err := json.Marshal(rating)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rating for Kafka", "rating_id", rating.RatingID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(rating.StallID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rating to Kafka", "rating_id", rating.RatingID, "error", err)
	} else {
		logger.Log.Infow("Rating published to Kafka", "rating_id", rating.RatingID, "stall_id", rating.StallID)
	}
}
