package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

const accountColumns = `
	account_id::text, name, balance::text, total_earned::text, watched, progress,
	COALESCE(inviter_id::text, ''), invites, invite_code, daily_date, daily_count,
	last_withdraw, COALESCE(linked_payment_id::text, ''), is_verified, created_at, updated_at`

// scanAccount reads one row selected with accountColumns
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc                  domain.Account
		balance, totalEarned string
		progressJSON         []byte
	)
	err := row.Scan(
		&acc.ID,
		&acc.Name,
		&balance,
		&totalEarned,
		&acc.Watched,
		&progressJSON,
		&acc.InviterID,
		&acc.Invites,
		&acc.InviteCode,
		&acc.DailyCount.Date,
		&acc.DailyCount.Count,
		&acc.LastWithdraw,
		&acc.LinkedPaymentID,
		&acc.IsVerified,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if acc.Balance, err = parseAmount(balance); err != nil {
		return nil, err
	}
	if acc.TotalEarned, err = parseAmount(totalEarned); err != nil {
		return nil, err
	}
	acc.Progress = make(map[string]domain.VideoProgress)
	if len(progressJSON) > 0 {
		if err := json.Unmarshal(progressJSON, &acc.Progress); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeJSON, err)
		}
	}
	if acc.Watched == nil {
		acc.Watched = []string{}
	}
	acc.RecomputeLevel()
	return &acc, nil
}

// CreateAccountIfAbsent inserts the account unless the name is already registered
func (s *Store) CreateAccountIfAbsent(ctx context.Context, acc *domain.Account) (*domain.Account, bool, error) {
	progressJSON, err := json.Marshal(acc.Progress)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeJSON, err)
	}

	query := `
		INSERT INTO accounts (account_id, name, balance, total_earned, watched, progress,
		                      inviter_id, invites, invite_code, daily_date, daily_count,
		                      created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12, $12)
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + accountColumns

	created, err := scanAccount(s.db.QueryRow(ctx, query,
		acc.ID,
		acc.Name,
		acc.Balance.String(),
		acc.TotalEarned.String(),
		acc.Watched,
		progressJSON,
		acc.InviterID,
		acc.Invites,
		acc.InviteCode,
		acc.DailyCount.Date,
		acc.DailyCount.Count,
		acc.CreatedAt,
	))
	switch {
	case err == nil:
		return created, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, err := s.GetAccountByName(ctx, acc.Name)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case isUniqueViolation(err, ConstraintAccountsInviteCode):
		return nil, false, repository.ErrDuplicateInviteCode
	default:
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}
}

func (s *Store) getAccount(ctx context.Context, where string, arg any, notFound error) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	acc, err := scanAccount(s.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return acc, nil
}

// GetAccountByID retrieves an account by id
func (s *Store) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	if !isUUID(id) {
		return nil, domain.ErrUserNotFound
	}
	return s.getAccount(ctx, "account_id = $1", id, domain.ErrUserNotFound)
}

// GetAccountByName retrieves an account by its unique display name
func (s *Store) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	return s.getAccount(ctx, "name = $1", name, domain.ErrUserNotFound)
}

// GetAccountByInviteCode retrieves the owner of an invite code
func (s *Store) GetAccountByInviteCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.getAccount(ctx, "invite_code = $1", code, domain.ErrInviteNotFound)
}

// ListAccounts returns every account ordered by creation time
func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAccounts, err)
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAccounts, err)
		}
		out = append(out, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAccounts, err)
	}
	return out, nil
}

// UpdateAccount locks the row with SELECT ... FOR UPDATE, applies fn and writes it back in one transaction
func (s *Store) UpdateAccount(ctx context.Context, id string, fn repository.AccountMutator) (*domain.Account, error) {
	if !isUUID(id) {
		return nil, domain.ErrUserNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := lockAccount(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(acc); err != nil {
		return nil, err
	}

	updated, err := saveAccount(ctx, tx, acc)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return updated, nil
}

// lockAccount selects the account row for update inside tx
func lockAccount(ctx context.Context, tx pgx.Tx, id string) (*domain.Account, error) {
	if !isUUID(id) {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE`
	acc, err := scanAccount(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return acc, nil
}

// saveAccount writes every mutable account column. inviter_id and invite_code are write-once.
func saveAccount(ctx context.Context, tx pgx.Tx, acc *domain.Account) (*domain.Account, error) {
	progressJSON, err := json.Marshal(acc.Progress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeJSON, err)
	}

	query := `
		UPDATE accounts
		SET balance = $2::numeric,
		    total_earned = $3::numeric,
		    watched = $4,
		    progress = $5,
		    invites = $6,
		    daily_date = $7,
		    daily_count = $8,
		    last_withdraw = $9,
		    linked_payment_id = NULLIF($10, '')::uuid,
		    is_verified = $11,
		    updated_at = NOW()
		WHERE account_id = $1
		RETURNING ` + accountColumns

	updated, err := scanAccount(tx.QueryRow(ctx, query,
		acc.ID,
		acc.Balance.String(),
		acc.TotalEarned.String(),
		acc.Watched,
		progressJSON,
		acc.Invites,
		acc.DailyCount.Date,
		acc.DailyCount.Count,
		acc.LastWithdraw,
		acc.LinkedPaymentID,
		acc.IsVerified,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveAccount, err)
	}
	return updated, nil
}
