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

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, first_name, age, gender, dating_preference,
	wants_friends, wants_dating, bio, major, class_year, interests,
	photos, icebreaker_answers, badges, blocked_ids,
	school_verified, phone_verified, created_at, updated_at
`

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO profiles (
			id, user_id, first_name, age, gender, dating_preference,
			wants_friends, wants_dating, bio, major, class_year, interests,
			photos, icebreaker_answers, badges, blocked_ids,
			school_verified, phone_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.FirstName, profile.Age,
		profile.Gender, profile.DatingPreference,
		profile.WantsFriends, profile.WantsDating,
		profile.Bio, profile.Major, profile.ClassYear, profile.Interests,
		pq.Array(profile.Photos), profile.IcebreakerAnswers,
		pq.Array(profile.Badges), pq.Array(profile.BlockedIDs),
		profile.SchoolVerified, profile.PhoneVerified,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

func (r *profileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	// Stable roster order; the candidate filter preserves it.
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $1, age = $2, gender = $3, dating_preference = $4,
		    wants_friends = $5, wants_dating = $6, bio = $7, major = $8,
		    class_year = $9, interests = $10, photos = $11,
		    icebreaker_answers = $12, badges = $13,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $14
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.FirstName, profile.Age, profile.Gender, profile.DatingPreference,
		profile.WantsFriends, profile.WantsDating, profile.Bio, profile.Major,
		profile.ClassYear, profile.Interests, pq.Array(profile.Photos),
		profile.IcebreakerAnswers, pq.Array(profile.Badges),
		profile.UserID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) AddBlocked(ctx context.Context, userID, blockedID string) error {
	query := `
		UPDATE profiles
		SET blocked_ids = array_append(blocked_ids, $1), updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND NOT ($1 = ANY(blocked_ids))
	`
	_, err := r.db.ExecContext(ctx, query, blockedID, userID)
	return err
}

func (r *profileRepository) SetVerification(ctx context.Context, userID string, schoolVerified, phoneVerified *bool) error {
	query := `
		UPDATE profiles
		SET school_verified = COALESCE($1, school_verified),
		    phone_verified = COALESCE($2, phone_verified),
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, schoolVerified, phoneVerified, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *profileRepository) scanOne(row rowScanner) (*domain.Profile, error) {
	profile, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) scanRow(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.FirstName, &profile.Age,
		&profile.Gender, &profile.DatingPreference,
		&profile.WantsFriends, &profile.WantsDating,
		&profile.Bio, &profile.Major, &profile.ClassYear, &profile.Interests,
		pq.Array(&profile.Photos), &profile.IcebreakerAnswers,
		pq.Array(&profile.Badges), pq.Array(&profile.BlockedIDs),
		&profile.SchoolVerified, &profile.PhoneVerified,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
