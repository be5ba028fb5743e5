package referral

import (
	"context"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/database/memory"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
)

func newTestService(t *testing.T) (*service, *memory.Store, *event.MemoryBus) {
	t.Helper()
	store := memory.NewStore(nil)
	bus := event.NewMemoryBus()
	svc := NewService(store, domain.DefaultRevenueSplit(), bus).(*service)
	return svc, store, bus
}

func TestSignup_CreatesAccount(t *testing.T) {
	svc, _, bus := newTestService(t)
	var created atomic.Int32
	bus.Subscribe(event.AccountCreated, func(context.Context, event.Event) error {
		created.Add(1)
		return nil
	})

	acc, isNew, err := svc.Signup(context.Background(), "  Omar Ali  ", "")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "Omar Ali", acc.Name)
	assert.NotEmpty(t, acc.ID)
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, domain.LevelBronze, acc.Level)
	assert.Regexp(t, regexp.MustCompile(`^OMARAL-[A-Z0-9]{4}$`), acc.InviteCode)
	assert.Equal(t, int32(1), created.Load())
}

func TestSignup_IdempotentByName(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	inviter, _, err := svc.Signup(ctx, "inviter", "")
	require.NoError(t, err)
	first, _, err := svc.Signup(ctx, "alice", "")
	require.NoError(t, err)

	again, isNew, err := svc.Signup(ctx, "alice", inviter.InviteCode)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, again.ID)
	assert.Empty(t, again.InviterID)

	stored, err := store.GetAccountByID(ctx, inviter.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Invites)
}

func TestSignup_WithInviteCode(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	inviter, _, err := svc.Signup(ctx, "inviter", "")
	require.NoError(t, err)

	invitee, _, err := svc.Signup(ctx, "invitee", inviter.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, inviter.ID, invitee.InviterID)

	stored, err := store.GetAccountByID(ctx, inviter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Invites)
}

func TestSignup_UnknownInviteCodeIgnored(t *testing.T) {
	svc, _, _ := newTestService(t)

	acc, isNew, err := svc.Signup(context.Background(), "bob", "NOPE-0000")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Empty(t, acc.InviterID)
}

func TestSignup_RegeneratesCollidingInviteCode(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	calls := 0
	svc.newCode = func(name string) (string, error) {
		calls++
		if calls <= 2 {
			return "FIXED-CODE", nil
		}
		return "FRESH-CODE", nil
	}

	_, _, err := svc.Signup(ctx, "first", "")
	require.NoError(t, err)
	second, _, err := svc.Signup(ctx, "second", "")
	require.NoError(t, err)

	assert.Equal(t, "FRESH-CODE", second.InviteCode)
	assert.Equal(t, 3, calls)
}

func TestSignup_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	svc.newCode = func(string) (string, error) { return "SAME-CODE", nil }

	_, _, err := svc.Signup(ctx, "first", "")
	require.NoError(t, err)
	_, _, err = svc.Signup(ctx, "second", "")
	assert.Error(t, err)
}

func TestSignup_RequiresName(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, _, err := svc.Signup(context.Background(), "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignup_ConcurrentSameName(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		created atomic.Int32
		ids     sync.Map
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, isNew, err := svc.Signup(ctx, "racer", "")
			if err != nil {
				return
			}
			if isNew {
				created.Add(1)
			}
			ids.Store(acc.ID, true)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	count := 0
	ids.Range(func(_, _ any) bool { count++; return true })
	assert.Equal(t, 1, count)

	all, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLoginAndLookups(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	acc, _, err := svc.Signup(ctx, "alice", "")
	require.NoError(t, err)

	got, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	_, err = svc.Login(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Login(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inviter, err := svc.InviteInfo(ctx, acc.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, "alice", inviter.Name)

	_, err = svc.InviteInfo(ctx, "MISSING-0000")
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)

	profile, err := svc.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.InviteCode, profile.InviteCode)

	list, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPayCommission(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	inviter, _, err := svc.Signup(ctx, "inviter", "")
	require.NoError(t, err)

	amount, err := svc.PayCommission(ctx, inviter.ID, "someone", decimal.RequireFromString("54.00"))
	require.NoError(t, err)
	assert.Equal(t, "5.40", amount.StringFixed(2))

	stored, err := store.GetAccountByID(ctx, inviter.ID)
	require.NoError(t, err)
	assert.Equal(t, "5.40", stored.Balance.StringFixed(2))
	assert.Equal(t, "5.40", stored.TotalEarned.StringFixed(2))

	_, err = svc.PayCommission(ctx, "ghost", "someone", decimal.NewFromInt(90))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	zero, err := svc.PayCommission(ctx, "ghost", "someone", decimal.RequireFromString("0.04"))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestInvitePrefix(t *testing.T) {
	tests := map[string]string{
		"alice":          "ALICE",
		"Omar Ali Sal":   "OMARAL",
		" a b c d e f g": "ABCDEF",
		"élodie":         "ÉLODIE",
	}
	for in, want := range tests {
		assert.Equal(t, want, invitePrefix(in), in)
	}
}

func TestGenerateInviteCode(t *testing.T) {
	code, err := generateInviteCode("bob")
	require.NoError(t, err)
	assert.Regexp(t, `^BOB-[A-Z0-9]{4}$`, code)
}
