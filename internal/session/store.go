package session

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/realtime"
)

// Store is the logged-in viewer's local view of their matches and messages.
// Realtime insert events merge idempotently by id; the only removals are the
// explicit ones (unmatch). The store is owned by a single session and safe
// for concurrent use by its event goroutine.
type Store struct {
	mu       sync.RWMutex
	userID   string
	matches  map[string]*domain.Match
	messages map[string]map[string]*domain.Message // match id -> message id
}

func NewStore(userID string) *Store {
	return &Store{
		userID:   userID,
		matches:  make(map[string]*domain.Match),
		messages: make(map[string]map[string]*domain.Message),
	}
}

func (s *Store) UserID() string {
	return s.userID
}

// MergeMatch adds a match if its id is not yet present. Returns true when
// the match was new.
func (s *Store) MergeMatch(match *domain.Match) bool {
	if match == nil || match.ID == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; ok {
		return false
	}
	s.matches[match.ID] = match
	return true
}

// MergeMessage adds a message if its id is not yet present.
func (s *Store) MergeMessage(message *domain.Message) bool {
	if message == nil || message.ID == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.messages[message.MatchID]
	if !ok {
		byID = make(map[string]*domain.Message)
		s.messages[message.MatchID] = byID
	}
	if _, ok := byID[message.ID]; ok {
		return false
	}
	byID[message.ID] = message
	return true
}

// RemoveMatch drops a match and its messages after an unmatch.
func (s *Store) RemoveMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, matchID)
	delete(s.messages, matchID)
}

// Matches returns the cached matches, newest first.
func (s *Store) Matches() []*domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Match, 0, len(s.matches))
	for _, match := range s.matches {
		out = append(out, match)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Messages returns a match's cached messages ascending by created_at.
func (s *Store) Messages(matchID string) []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := s.messages[matchID]
	out := make([]*domain.Message, 0, len(byID))
	for _, message := range byID {
		out = append(out, message)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ApplyEvent merges a realtime insert event into the store. Matches not
// involving the session's user are ignored; unknown collections and event
// types are dropped.
func (s *Store) ApplyEvent(event realtime.Event) bool {
	if event.Type != realtime.EventInsert {
		return false
	}
	switch event.Collection {
	case realtime.CollectionMatches:
		var match domain.Match
		if err := json.Unmarshal(event.Payload, &match); err != nil {
			return false
		}
		if s.userID != "" && !match.HasUser(s.userID) {
			return false
		}
		return s.MergeMatch(&match)
	case realtime.CollectionMessages:
		var message domain.Message
		if err := json.Unmarshal(event.Payload, &message); err != nil {
			return false
		}
		return s.MergeMessage(&message)
	default:
		return false
	}
}
