// Package reward is the claim engine: it turns a completed video into a
// one-time balance credit and triggers the referral commission.
package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// ClaimResult is returned for a successful claim
type ClaimResult struct {
	Reward       decimal.Decimal
	NewBalance   decimal.Decimal
	PlatformNet  decimal.Decimal
	Level        domain.Level
	LevelChanged bool
}

// Service defines the claim operations
type Service interface {
	Claim(ctx context.Context, userID, videoID string) (*ClaimResult, error)
}

// CommissionPayer credits the inviter of a viewer who just earned a reward
type CommissionPayer interface {
	PayCommission(ctx context.Context, inviterID, inviteeID string, viewerReward decimal.Decimal) (decimal.Decimal, error)
}

type service struct {
	ledger    repository.Ledger
	catalog   repository.Catalog
	split     domain.RevenueSplit
	referrals CommissionPayer
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new claim service
func NewService(ledger repository.Ledger, catalog repository.Catalog, split domain.RevenueSplit, referrals CommissionPayer, publisher event.Publisher) Service {
	return &service{
		ledger:    ledger,
		catalog:   catalog,
		split:     split,
		referrals: referrals,
		publisher: publisher,
		now:       time.Now,
	}
}

// Claim credits the viewer reward for a completed video exactly once.
//
// Checks run under the account lock in a fixed order: unknown account, then
// missing video id, then progress not completed, then already claimed, then
// unknown video. The video is looked up before the account is locked so the
// lock never waits on a catalog read; a lookup miss is only reported once the
// earlier checks pass. The inviter commission is paid after the viewer's
// credit commits and is not rolled back if it fails.
func (s *service) Claim(ctx context.Context, userID, videoID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: userId required", domain.ErrInvalidInput)
	}

	var (
		video    *domain.Video
		videoErr error
	)
	if videoID != "" {
		video, videoErr = s.catalog.GetVideo(ctx, videoID)
		if videoErr != nil && !errors.Is(videoErr, domain.ErrVideoNotFound) {
			log.Error("Claim failed", "user_id", userID, "video_id", videoID, "error", videoErr)
			return nil, fmt.Errorf("failed to load video %s: %w", videoID, videoErr)
		}
	}

	var (
		breakdown domain.RewardBreakdown
		prevLevel domain.Level
		inviterID string
	)
	acc, err := s.ledger.UpdateAccount(ctx, userID, func(acc *domain.Account) error {
		if videoID == "" {
			return fmt.Errorf("%w: videoId required", domain.ErrInvalidInput)
		}
		p, ok := acc.Progress[videoID]
		if !ok || !p.Completed {
			return domain.ErrNotCompleted
		}
		if acc.HasWatched(videoID) {
			return domain.ErrAlreadyClaimed
		}
		if videoErr != nil {
			return videoErr
		}

		breakdown = s.split.Compute(video.Value)
		prevLevel = acc.Level
		inviterID = acc.InviterID

		acc.Credit(breakdown.ViewerReward)
		acc.MarkWatched(videoID)
		acc.BumpDailyCount(s.now())
		return nil
	})
	if err != nil {
		if isRejection(err) {
			log.Warn("Claim rejected", "user_id", userID, "video_id", videoID, "reason", err)
		} else {
			log.Error("Claim failed", "user_id", userID, "video_id", videoID, "error", err)
		}
		return nil, fmt.Errorf("failed to claim %s: %w", videoID, err)
	}

	result := &ClaimResult{
		Reward:       breakdown.ViewerReward,
		NewBalance:   acc.Balance,
		PlatformNet:  breakdown.PlatformNet,
		Level:        acc.Level,
		LevelChanged: acc.Level != prevLevel,
	}

	log.Info("Reward claimed",
		"user_id", userID,
		"video_id", videoID,
		"reward", result.Reward.StringFixed(domain.MoneyPlaces),
		"new_balance", result.NewBalance.StringFixed(domain.MoneyPlaces),
		"level", result.Level)

	if inviterID != "" && s.referrals != nil {
		if _, err := s.referrals.PayCommission(ctx, inviterID, userID, breakdown.ViewerReward); err != nil {
			log.Error("Referral commission failed", "inviter_id", inviterID, "invitee_id", userID, "error", err)
		}
	}

	s.publish(ctx, event.NewRewardClaimedEvent(domain.RewardClaimedPayload{
		UserID:       userID,
		VideoID:      videoID,
		Reward:       result.Reward.InexactFloat64(),
		PlatformNet:  result.PlatformNet.InexactFloat64(),
		NewBalance:   result.NewBalance.InexactFloat64(),
		Level:        result.Level,
		LevelChanged: result.LevelChanged,
	}))

	return result, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "event_type", evt.Type, "error", err)
	}
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrNotCompleted) ||
		errors.Is(err, domain.ErrAlreadyClaimed) ||
		errors.Is(err, domain.ErrVideoNotFound) ||
		errors.Is(err, domain.ErrUserNotFound)
}
