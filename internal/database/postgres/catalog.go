package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Ycine_Go/internal/domain"
)

const videoColumns = `video_id, title, value::text, duration, thumbnail, src`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var (
		v     domain.Video
		value string
	)
	if err := row.Scan(&v.ID, &v.Title, &value, &v.Duration, &v.Thumbnail, &v.Src); err != nil {
		return nil, err
	}
	amount, err := parseAmount(value)
	if err != nil {
		return nil, err
	}
	v.Value = amount
	return &v, nil
}

// ListVideos returns the catalog ordered by id
func (s *Store) ListVideos(ctx context.Context) ([]domain.Video, error) {
	rows, err := s.db.Query(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY video_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVideos, err)
	}
	defer rows.Close()

	var out []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVideos, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVideos, err)
	}
	return out, nil
}

// GetVideo retrieves a single video
func (s *Store) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	v, err := scanVideo(s.db.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE video_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetVideo, err)
	}
	return v, nil
}
