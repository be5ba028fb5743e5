package memory

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// ListVideos returns the catalog in seed order
func (s *Store) ListVideos(ctx context.Context) ([]domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Video, 0, len(s.videoOrder))
	for _, id := range s.videoOrder {
		out = append(out, s.videos[id])
	}
	return out, nil
}

// GetVideo looks up a single catalog entry
func (s *Store) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	return &v, nil
}
