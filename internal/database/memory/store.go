// Package memory is an in-process implementation of the store interfaces.
// It backs the "memory" store backend and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Ycine_Go/internal/concurrency"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// Store keeps accounts, videos, payment links and withdrawals in maps.
// mu guards the maps; per-account locks serialize read-modify-write cycles.
type Store struct {
	mu           sync.RWMutex
	accountLocks *concurrency.LockManager

	accounts     map[string]*domain.Account // keyed by account ID
	byName       map[string]string          // name -> account ID
	byInviteCode map[string]string          // invite code -> account ID

	videos     map[string]domain.Video
	videoOrder []string

	paymentLinks []domain.PaymentLink
	withdrawals  []domain.Withdrawal

	now func() time.Time
}

var (
	_ repository.Ledger       = (*Store)(nil)
	_ repository.Catalog      = (*Store)(nil)
	_ repository.PaymentLinks = (*Store)(nil)
	_ repository.Withdrawals  = (*Store)(nil)
)

// NewStore creates an empty store serving the given catalog
func NewStore(videos []domain.Video) *Store {
	s := &Store{
		accountLocks: concurrency.NewLockManager(),
		accounts:     make(map[string]*domain.Account),
		byName:       make(map[string]string),
		byInviteCode: make(map[string]string),
		videos:       make(map[string]domain.Video, len(videos)),
		now:          time.Now,
	}
	for _, v := range videos {
		if _, dup := s.videos[v.ID]; !dup {
			s.videoOrder = append(s.videoOrder, v.ID)
		}
		s.videos[v.ID] = v
	}
	return s
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateAccountIfAbsent inserts acc unless its name is already taken
func (s *Store) CreateAccountIfAbsent(ctx context.Context, acc *domain.Account) (*domain.Account, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byName[acc.Name]; ok {
		return s.accounts[id].Clone(), false, nil
	}
	if _, taken := s.byInviteCode[acc.InviteCode]; taken {
		return nil, false, repository.ErrDuplicateInviteCode
	}

	stored := acc.Clone()
	s.accounts[stored.ID] = stored
	s.byName[stored.Name] = stored.ID
	s.byInviteCode[stored.InviteCode] = stored.ID
	return stored.Clone(), true, nil
}

// GetAccountByID returns a copy of the account
func (s *Store) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return acc.Clone(), nil
}

// GetAccountByName returns a copy of the account registered under name
func (s *Store) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.accounts[id].Clone(), nil
}

// GetAccountByInviteCode returns a copy of the account owning code
func (s *Store) GetAccountByInviteCode(ctx context.Context, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byInviteCode[code]
	if !ok {
		return nil, domain.ErrInviteNotFound
	}
	return s.accounts[id].Clone(), nil
}

// ListAccounts returns all accounts ordered by creation time
func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	out := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, *acc.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateAccount runs fn on a private copy under the account lock and swaps it in on success
func (s *Store) UpdateAccount(ctx context.Context, id string, fn repository.AccountMutator) (*domain.Account, error) {
	var updated *domain.Account
	err := s.accountLocks.WithLock(id, func() error {
		working, err := s.lockedCopy(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(working); err != nil {
			return err
		}
		updated = s.commit(working)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// lockedCopy must be called while holding the account lock
func (s *Store) lockedCopy(ctx context.Context, id string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	acc, ok := s.accounts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return acc.Clone(), nil
}

func (s *Store) commit(acc *domain.Account) *domain.Account {
	acc.UpdatedAt = s.now()
	s.mu.Lock()
	s.accounts[acc.ID] = acc
	s.mu.Unlock()
	return acc.Clone()
}
