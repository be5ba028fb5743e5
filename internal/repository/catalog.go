package repository

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// Catalog defines read-only access to the video catalog
type Catalog interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
	// GetVideo returns domain.ErrVideoNotFound for unknown ids
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
}
