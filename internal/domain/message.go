package domain

import "time"

// Message belongs to exactly one match and is append-only. The sender must
// be one of the match's two participants.
type Message struct {
	ID          string    `json:"id" db:"id"`
	MatchID     string    `json:"match_id" db:"match_id"`
	SenderID    string    `json:"sender_id" db:"sender_id"`
	MessageText string    `json:"message_text" db:"message_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
