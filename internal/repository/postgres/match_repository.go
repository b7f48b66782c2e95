package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	// Canonical order satisfies the user1_id < user2_id check constraint.
	user1ID, user2ID := domain.SortPair(match.User1ID, match.User2ID)
	if match.ID == "" {
		match.ID = uuid.NewString()
	}

	// Two users liking each other near-simultaneously can both pass the
	// usecase's existence check; the unique constraint plus DO NOTHING
	// resolves the race, and the loser refetches the winner's row.
	query := `
		INSERT INTO matches (id, user1_id, user2_id, context)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user1_id, user2_id, context) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, user1ID, user2ID, match.Context).
		Scan(&match.ID, &match.CreatedAt)
	match.User1ID = user1ID
	match.User2ID = user2ID
	if errors.Is(err, sql.ErrNoRows) {
		existing, getErr := r.GetByUsers(ctx, user1ID, user2ID, match.Context)
		if getErr != nil {
			return getErr
		}
		*match = *existing
		return nil
	}
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	query := `
		SELECT id, user1_id, user2_id, context, icebreakers, created_at
		FROM matches WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID, &match.User1ID, &match.User2ID, &match.Context,
		pq.Array(&match.Icebreakers), &match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID string, mctx domain.Context) (*domain.Match, error) {
	user1ID, user2ID = domain.SortPair(user1ID, user2ID)

	var match domain.Match
	query := `
		SELECT id, user1_id, user2_id, context, icebreakers, created_at
		FROM matches WHERE user1_id = $1 AND user2_id = $2 AND context = $3
	`
	err := r.db.QueryRowContext(ctx, query, user1ID, user2ID, mctx).Scan(
		&match.ID, &match.User1ID, &match.User2ID, &match.Context,
		pq.Array(&match.Icebreakers), &match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	query := `
		SELECT id, user1_id, user2_id, context, icebreakers, created_at
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		var match domain.Match
		if err := rows.Scan(
			&match.ID, &match.User1ID, &match.User2ID, &match.Context,
			pq.Array(&match.Icebreakers), &match.CreatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, &match)
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error {
	query := `UPDATE matches SET icebreakers = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
