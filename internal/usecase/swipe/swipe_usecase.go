package swipe

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/infrastructure/gemini"
	"github.com/campusmeet/campusmeet-backend/internal/realtime"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
)

type SwipeUseCase struct {
	swipeRepo    repository.SwipeRepository
	matchRepo    repository.MatchRepository
	profileRepo  repository.ProfileRepository
	bus          *realtime.Bus
	geminiClient *gemini.Client
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	bus *realtime.Bus,
	geminiClient *gemini.Client,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:    swipeRepo,
		matchRepo:    matchRepo,
		profileRepo:  profileRepo,
		bus:          bus,
		geminiClient: geminiClient,
	}
}

// SwipeRequest represents a swipe action.
type SwipeRequest struct {
	TargetID string `json:"target_id" binding:"required"`
	Context  string `json:"context" binding:"required,oneof=friends dating"`
	Liked    bool   `json:"liked"`
}

// SwipeResponse represents the swipe result.
type SwipeResponse struct {
	IsMatch bool          `json:"is_match"`
	Swipe   *domain.Swipe `json:"swipe,omitempty"`
	Match   *domain.Match `json:"match,omitempty"`
}

// RecordSwipe upserts the swipe and, for a like, checks for mutual
// reciprocation and creates a deduplicated match. The mutual-check and match
// paths are best-effort: a transient failure there still returns the
// recorded swipe as "no match" rather than failing the whole action.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, swiperID string, req *SwipeRequest) (*SwipeResponse, error) {
	mctx, err := domain.ParseContext(req.Context)
	if err != nil {
		return nil, err
	}
	if swiperID == req.TargetID {
		return nil, domain.ErrCannotSwipeSelf
	}

	swiper, err := uc.profileRepo.GetByUserID(ctx, swiperID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swiper profile: %w", err)
	}
	if !swiper.PhoneVerified {
		return nil, domain.ErrPhoneNotVerified
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, req.TargetID); err != nil {
		return nil, fmt.Errorf("failed to get target profile: %w", err)
	}

	swipe := &domain.Swipe{
		SwiperID: swiperID,
		SwipedID: req.TargetID,
		Context:  mctx,
		Liked:    req.Liked,
	}
	if err := uc.swipeRepo.Upsert(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	response := &SwipeResponse{Swipe: swipe}
	if !req.Liked {
		return response, nil
	}

	// The mutual-check is issued only after the swipe is recorded: it reads
	// the opposite direction, not our own row.
	reciprocal, err := uc.swipeRepo.FindLiked(ctx, req.TargetID, swiperID, mctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSwipeNotFound) {
			log.Printf("swipe: mutual-check failed for %s->%s (%s): %v", swiperID, req.TargetID, mctx, err)
		}
		return response, nil
	}
	if reciprocal == nil {
		return response, nil
	}

	match, err := uc.createMatch(ctx, swiperID, req.TargetID, mctx)
	if err != nil {
		log.Printf("swipe: match creation failed for %s/%s (%s): %v", swiperID, req.TargetID, mctx, err)
		return response, nil
	}

	response.IsMatch = true
	response.Match = match

	if err := uc.bus.Publish(ctx, realtime.CollectionMatches, match); err != nil {
		log.Printf("swipe: failed to publish match event: %v", err)
	}
	if uc.geminiClient != nil {
		go uc.attachIcebreakers(context.WithoutCancel(ctx), match)
	}

	return response, nil
}

// createMatch is duplicate-proof: an existing match for the unordered pair
// and context is returned unchanged, and the storage layer's unique
// constraint covers the window between check and insert.
func (uc *SwipeUseCase) createMatch(ctx context.Context, user1ID, user2ID string, mctx domain.Context) (*domain.Match, error) {
	existing, err := uc.matchRepo.GetByUsers(ctx, user1ID, user2ID, mctx)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, err
	}

	user1ID, user2ID = domain.SortPair(user1ID, user2ID)
	match := &domain.Match{
		User1ID: user1ID,
		User2ID: user2ID,
		Context: mctx,
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// GetLikesReceived lists the users who liked the given user in a context.
func (uc *SwipeUseCase) GetLikesReceived(ctx context.Context, userID string, rawContext string) ([]*domain.Swipe, error) {
	mctx, err := domain.ParseContext(rawContext)
	if err != nil {
		return nil, err
	}
	likes, err := uc.swipeRepo.ListLikesReceived(ctx, userID, mctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}
	return likes, nil
}

// attachIcebreakers asks the AI client for opening-line suggestions and
// stores them on the match. Failures only cost the suggestions.
func (uc *SwipeUseCase) attachIcebreakers(ctx context.Context, match *domain.Match) {
	p1, err := uc.profileRepo.GetByUserID(ctx, match.User1ID)
	if err != nil {
		return
	}
	p2, err := uc.profileRepo.GetByUserID(ctx, match.User2ID)
	if err != nil {
		return
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, p1.Interests, p2.Interests)
	if err != nil {
		log.Printf("swipe: icebreaker generation failed for match %s: %v", match.ID, err)
		return
	}
	if err := uc.matchRepo.UpdateIcebreakers(ctx, match.ID, icebreakers); err != nil {
		log.Printf("swipe: failed to store icebreakers for match %s: %v", match.ID, err)
	}
}
