package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/psp"
	"github.com/osse101/Ycine_Go/internal/reward"
)

// ============================================================================
// MOCKS
// ============================================================================

type MockReferralService struct {
	mock.Mock
}

func (m *MockReferralService) Signup(ctx context.Context, name, inviteCode string) (*domain.Account, bool, error) {
	args := m.Called(ctx, name, inviteCode)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Bool(1), args.Error(2)
}

func (m *MockReferralService) Login(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockReferralService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockReferralService) InviteInfo(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockReferralService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockReferralService) PayCommission(ctx context.Context, inviterID, inviteeID string, viewerReward decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, inviterID, inviteeID, viewerReward)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Claim(ctx context.Context, userID, videoID string) (*reward.ClaimResult, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reward.ClaimResult), args.Error(1)
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) RecordProgress(ctx context.Context, userID, videoID string, currentTime int, completed bool) (*domain.VideoProgress, error) {
	args := m.Called(ctx, userID, videoID, currentTime, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoProgress), args.Error(1)
}

type MockWithdrawalService struct {
	mock.Mock
}

func (m *MockWithdrawalService) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalService) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

type MockCardLinkService struct {
	mock.Mock
}

func (m *MockCardLinkService) Initiate(ctx context.Context, userID string) (*psp.SetupSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*psp.SetupSession), args.Error(1)
}

func (m *MockCardLinkService) Complete(ctx context.Context, payload psp.Payload) (*cardlink.LinkResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardlink.LinkResult), args.Error(1)
}

func (m *MockCardLinkService) ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentLink), args.Error(1)
}

func (m *MockCardLinkService) DemoMode() bool {
	return m.Called().Bool(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalogService) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockCatalogService) GetCacheStats() catalog.CacheStats {
	return m.Called().Get(0).(catalog.CacheStats)
}

func (m *MockCatalogService) InvalidateCache() {
	m.Called()
}
