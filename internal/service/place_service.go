package service

import (
	"context"
	"strings"

	"github.com/Thonkla/PlaceMate/internal/cache"
	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/repo"

	"golang.org/x/sync/singleflight"
)

type PlaceService struct {
	repo  repo.PlaceRepo
	cache *cache.PlaceCache
	sf    singleflight.Group
	log   logger.Logger
}

// NewPlaceService creates a PlaceService. If c is nil, caching is disabled.
func NewPlaceService(r repo.PlaceRepo, c *cache.PlaceCache, log logger.Logger) *PlaceService {
	return &PlaceService{repo: r, cache: c, log: log}
}

// Search matches place names case-insensitively. Concurrent identical
// queries share one database round trip.
func (s *PlaceService) Search(ctx context.Context, q string) ([]dom.Place, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, invalid("missing query parameter")
	}
	if s.cache == nil {
		return s.repo.Search(ctx, q)
	}

	v, err, _ := s.sf.Do(cache.SearchKey(q), func() (interface{}, error) {
		if list, err := s.cache.GetSearch(ctx, q); err == nil && list != nil {
			return list, nil
		} else if err != nil {
			s.log.Warn("Place cache read failed", "error", err)
		}
		list, err := s.repo.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetSearch(ctx, q, list); err != nil {
			s.log.Warn("Place cache write failed", "error", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Place), nil
}
