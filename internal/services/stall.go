package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
	"github.com/hawkerwatch/hygiene-api/internal/repositories"
)

const (
	// searchLimit is the hard cap on search results.
	searchLimit = 1000
	// leaderboardLimit caps the leaderboard page.
	leaderboardLimit = 50
)

// StallLister lists stalls by filter.
type StallLister interface {
	StallReader
	List(ctx context.Context, filter repositories.StallFilter) ([]models.StallDB, error)
}

// StallWriter creates stall records.
type StallWriter interface {
	Save(ctx context.Context, stall models.StallDB) error
}

// LeaderboardCache caches leaderboard pages by filter pair.
type LeaderboardCache interface {
	Get(ctx context.Context, city, area string) ([]models.StallDB, error)
	Set(ctx context.Context, city, area string, stalls []models.StallDB) error
}

// StallService handles stall creation, lookup, search, and the
// leaderboard view.
type StallService struct {
	reader StallLister
	writer StallWriter
	cache  LeaderboardCache
}

// NewStallService creates a new StallService.
func NewStallService(reader StallLister, writer StallWriter, cache LeaderboardCache) *StallService {
	return &StallService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create stores a new stall owned by the given user. Scores and rating
// count start at zero and are only ever touched by the recompute.
func (s *StallService) Create(ctx context.Context, ownerID uuid.UUID, name, description, address, city, area string, photos []string) (models.StallDB, error) {
	stall := models.StallDB{
		StallID:     uuid.New(),
		Name:        name,
		Description: description,
		Address:     address,
		City:        city,
		Area:        area,
		Photos:      models.Photos(photos),
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, stall); err != nil {
		logger.Log.Errorw("failed to save stall", "name", name, "error", err)
		return models.StallDB{}, err
	}

	return stall, nil
}

// Get returns a single stall or ErrStallNotFound.
func (s *StallService) Get(ctx context.Context, stallID uuid.UUID) (*models.StallDB, error) {
	stall, err := s.reader.GetByID(ctx, stallID)
	if err != nil {
		logger.Log.Errorw("failed to get stall", "stall_id", stallID, "error", err)
		return nil, err
	}
	if stall == nil {
		return nil, ErrStallNotFound
	}
	return stall, nil
}

// Search returns stalls matching the filters, ranked by overall score
// descending. Free text matches name, description, city, or area.
func (s *StallService) Search(ctx context.Context, city, area, search string) ([]models.StallDB, error) {
	stalls, err := s.reader.List(ctx, repositories.StallFilter{
		City:   city,
		Area:   area,
		Search: search,
		Limit:  searchLimit,
	})
	if err != nil {
		logger.Log.Errorw("failed to search stalls", "city", city, "area", area, "error", err)
		return nil, err
	}
	return stalls, nil
}

// Leaderboard returns the top stalls by overall score for the filter
// pair, serving from the cache when a fresh page exists.
func (s *StallService) Leaderboard(ctx context.Context, city, area string) ([]models.StallDB, error) {
	if s.cache != nil {
		if stalls, err := s.cache.Get(ctx, city, area); err == nil {
			return stalls, nil
		}
	}

	stalls, err := s.reader.List(ctx, repositories.StallFilter{
		City:  city,
		Area:  area,
		Limit: leaderboardLimit,
	})
	if err != nil {
		logger.Log.Errorw("failed to load leaderboard", "city", city, "area", area, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, city, area, stalls); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "city", city, "area", area, "error", err)
		}
	}

	return stalls, nil
}
