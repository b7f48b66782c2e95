package domain

import "time"

// Match is an undirected pairing within a single context. User ids are
// stored sorted (User1ID < User2ID) so the unordered pair has exactly one
// representation.
type Match struct {
	ID          string    `json:"id" db:"id"`
	User1ID     string    `json:"user1_id" db:"user1_id"`
	User2ID     string    `json:"user2_id" db:"user2_id"`
	Context     Context   `json:"context" db:"context"`
	Icebreakers []string  `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) OtherUserID(userID string) (string, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return "", false
}

// SortPair returns the two ids in their canonical stored order.
func SortPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
