// Package progress records per-video playback state. A completed record is
// what makes a video claimable.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// Service defines the progress operations
type Service interface {
	RecordProgress(ctx context.Context, userID, videoID string, currentTime int, completed bool) (*domain.VideoProgress, error)
}

type service struct {
	ledger repository.Ledger
	now    func() time.Time
}

// NewService creates a new progress service
func NewService(ledger repository.Ledger) Service {
	return &service{
		ledger: ledger,
		now:    time.Now,
	}
}

// RecordProgress overwrites the stored playback state for (userID, videoID).
// Updates are last-write-wins; a completed flag can be cleared by a later report
// until the video is claimed. Balance is never touched.
func (s *service) RecordProgress(ctx context.Context, userID, videoID string, currentTime int, completed bool) (*domain.VideoProgress, error) {
	if userID == "" || videoID == "" || currentTime < 0 {
		return nil, fmt.Errorf("%w: userId, videoId and non-negative currentTime required", domain.ErrInvalidInput)
	}

	var snapshot domain.VideoProgress
	_, err := s.ledger.UpdateAccount(ctx, userID, func(acc *domain.Account) error {
		snapshot = acc.RecordProgress(videoID, currentTime, completed, s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	logger.FromContext(ctx).Debug("Progress recorded",
		"user_id", userID,
		"video_id", videoID,
		"current_time", currentTime,
		"completed", completed)

	return &snapshot, nil
}
