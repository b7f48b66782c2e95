// Package memory provides in-memory repository implementations backing the
// use case tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
	order    []string
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]*domain.Profile)}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; ok {
		return domain.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.profiles[profile.UserID] = profile
	r.order = append(r.order, profile.UserID)
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(r.order))
	for _, userID := range r.order {
		if profile, ok := r.profiles[userID]; ok {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; !ok {
		return domain.ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	for i, id := range r.order {
		if id == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProfileRepository) AddBlocked(ctx context.Context, userID, blockedID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	if !profile.HasBlocked(blockedID) {
		profile.BlockedIDs = append(profile.BlockedIDs, blockedID)
	}
	return nil
}

func (r *ProfileRepository) SetVerification(ctx context.Context, userID string, schoolVerified, phoneVerified *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	if schoolVerified != nil {
		profile.SchoolVerified = *schoolVerified
	}
	if phoneVerified != nil {
		profile.PhoneVerified = *phoneVerified
	}
	return nil
}

type SwipeRepository struct {
	mu     sync.RWMutex
	swipes map[swipeKey]*domain.Swipe
}

type swipeKey struct {
	swiperID string
	swipedID string
	mctx     domain.Context
}

func NewSwipeRepository() *SwipeRepository {
	return &SwipeRepository{swipes: make(map[swipeKey]*domain.Swipe)}
}

func (r *SwipeRepository) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := swipeKey{swipe.SwiperID, swipe.SwipedID, swipe.Context}
	if existing, ok := r.swipes[key]; ok {
		existing.Liked = swipe.Liked
		*swipe = *existing
		return nil
	}
	swipe.ID = uuid.NewString()
	swipe.CreatedAt = time.Now()
	r.swipes[key] = swipe
	return nil
}

func (r *SwipeRepository) GetByUsers(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	swipe, ok := r.swipes[swipeKey{swiperID, swipedID, mctx}]
	if !ok {
		return nil, domain.ErrSwipeNotFound
	}
	return swipe, nil
}

func (r *SwipeRepository) FindLiked(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	swipe, ok := r.swipes[swipeKey{swiperID, swipedID, mctx}]
	if !ok || !swipe.Liked {
		return nil, domain.ErrSwipeNotFound
	}
	return swipe, nil
}

func (r *SwipeRepository) ListBySwiper(ctx context.Context, swiperID string, mctx domain.Context) ([]*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Swipe, 0)
	for key, swipe := range r.swipes {
		if key.swiperID == swiperID && key.mctx == mctx {
			out = append(out, swipe)
		}
	}
	sortSwipes(out)
	return out, nil
}

func (r *SwipeRepository) ListLikesReceived(ctx context.Context, swipedID string, mctx domain.Context) ([]*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Swipe, 0)
	for key, swipe := range r.swipes {
		if key.swipedID == swipedID && key.mctx == mctx && swipe.Liked {
			out = append(out, swipe)
		}
	}
	sortSwipes(out)
	return out, nil
}

func sortSwipes(swipes []*domain.Swipe) {
	sort.Slice(swipes, func(i, j int) bool {
		if swipes[i].CreatedAt.Equal(swipes[j].CreatedAt) {
			return swipes[i].ID < swipes[j].ID
		}
		return swipes[i].CreatedAt.Before(swipes[j].CreatedAt)
	})
}

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]*domain.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{matches: make(map[string]*domain.Match)}
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match.User1ID, match.User2ID = domain.SortPair(match.User1ID, match.User2ID)
	// Mirror the storage-level unique constraint on the canonical pair.
	for _, existing := range r.matches {
		if existing.User1ID == match.User1ID && existing.User2ID == match.User2ID && existing.Context == match.Context {
			*match = *existing
			return nil
		}
	}
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	match.CreatedAt = time.Now()
	r.matches[match.ID] = match
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return match, nil
}

func (r *MatchRepository) GetByUsers(ctx context.Context, user1ID, user2ID string, mctx domain.Context) (*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user1ID, user2ID = domain.SortPair(user1ID, user2ID)
	for _, match := range r.matches {
		if match.User1ID == user1ID && match.User2ID == user2ID && match.Context == mctx {
			return match, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *MatchRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Match, 0)
	for _, match := range r.matches {
		if match.HasUser(userID) {
			out = append(out, match)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MatchRepository) UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return domain.ErrMatchNotFound
	}
	match.Icebreakers = icebreakers
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

type MessageRepository struct {
	mu       sync.RWMutex
	messages map[string][]*domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[string][]*domain.Message)}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	r.messages[message.MatchID] = append(r.messages[message.MatchID], message)
	return nil
}

func (r *MessageRepository) ListByMatch(ctx context.Context, matchID string) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*domain.Message(nil), r.messages[matchID]...), nil
}

func (r *MessageRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, matchID)
	return nil
}

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byPhone map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byPhone: make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byPhone[user.Phone]; ok {
		return domain.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.byID[user.ID] = user
	r.byPhone[user.Phone] = user
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byPhone[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byPhone, user.Phone)
	return nil
}
