// Package catalog serves the read-only video catalog through an LRU cache.
package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// Service defines the catalog operations. It also satisfies repository.Catalog
// so it can stand in for the store wherever lookups are needed.
type Service interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
	GetCacheStats() CacheStats
	InvalidateCache()
}

type service struct {
	repo  repository.Catalog
	cache *videoCache
}

// NewService creates a catalog service with the given cache configuration
func NewService(repo repository.Catalog, cfg CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newVideoCache(cfg),
	}
}

// ListVideos returns every video, served from cache when fresh
func (s *service) ListVideos(ctx context.Context) ([]domain.Video, error) {
	if videos, ok := s.cache.getList(); ok {
		return videos, nil
	}
	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	s.cache.setList(videos)
	return videos, nil
}

// GetVideo returns one video or domain.ErrVideoNotFound
func (s *service) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	if v, ok := s.cache.getVideo(id); ok {
		return v, nil
	}
	v, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.setVideo(v)
	return v, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.stats()
}

func (s *service) InvalidateCache() {
	s.cache.clear()
}
