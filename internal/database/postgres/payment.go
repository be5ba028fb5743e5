package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

const paymentLinkColumns = `payment_id::text, account_id::text, token, last4, brand, source, verified, status, created_at, updated_at`

func scanPaymentLinks(rows pgx.Rows) ([]domain.PaymentLink, error) {
	defer rows.Close()

	var out []domain.PaymentLink
	for rows.Next() {
		var (
			l      domain.PaymentLink
			status string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &l.Token, &l.Last4, &l.Brand, &l.Source, &l.Verified, &status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.Status = domain.PaymentLinkStatus(status)
		out = append(out, l)
	}
	return out, rows.Err()
}

// FindVerifiedByCard returns verified links matching last4 and brand
func (s *Store) FindVerifiedByCard(ctx context.Context, card domain.CardFingerprint) ([]domain.PaymentLink, error) {
	query := `
		SELECT ` + paymentLinkColumns + `
		FROM payment_links
		WHERE verified AND last4 = $1 AND upper(brand) = $2
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query, card.Last4, card.Brand)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPaymentLinks, err)
	}
	links, err := scanPaymentLinks(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPaymentLinks, err)
	}
	return links, nil
}

func insertPaymentLink(ctx context.Context, q execer, link *domain.PaymentLink, verified bool) error {
	query := `
		INSERT INTO payment_links (payment_id, account_id, token, last4, brand, source, verified, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err := q.Exec(ctx, query,
		link.ID,
		link.UserID,
		link.Token,
		link.Last4,
		link.Brand,
		link.Source,
		verified,
		string(link.Status),
		link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPaymentLink, err)
	}
	return nil
}

// RecordAttempt appends an unverified audit entry
func (s *Store) RecordAttempt(ctx context.Context, link *domain.PaymentLink) error {
	if !isUUID(link.UserID) {
		return domain.ErrUserNotFound
	}
	return insertPaymentLink(ctx, s.db, link, false)
}

// BindToAccount appends a verified link and points the account at it in one transaction
func (s *Store) BindToAccount(ctx context.Context, link *domain.PaymentLink) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := lockAccount(ctx, tx, link.UserID)
	if err != nil {
		return err
	}

	link.Status = domain.PaymentLinkActive
	link.Verified = true
	if err := insertPaymentLink(ctx, tx, link, true); err != nil {
		return err
	}

	acc.LinkedPaymentID = link.ID
	acc.IsVerified = true
	if _, err := saveAccount(ctx, tx, acc); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// ListPaymentLinks returns link attempts, all of them when userID is empty
func (s *Store) ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID == "" {
		rows, err = s.db.Query(ctx, `SELECT `+paymentLinkColumns+` FROM payment_links ORDER BY created_at`)
	} else {
		if !isUUID(userID) {
			return nil, nil
		}
		rows, err = s.db.Query(ctx, `SELECT `+paymentLinkColumns+` FROM payment_links WHERE account_id = $1 ORDER BY created_at`, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPaymentLinks, err)
	}
	links, err := scanPaymentLinks(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPaymentLinks, err)
	}
	return links, nil
}
