package postgres

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	query := `
		INSERT INTO messages (id, match_id, sender_id, message_text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.ID, message.MatchID, message.SenderID, message.MessageText,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) ListByMatch(ctx context.Context, matchID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, match_id, sender_id, message_text, created_at
		FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE match_id = $1`, matchID)
	return err
}
