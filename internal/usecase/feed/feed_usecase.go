package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/compatibility"
)

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	swipeRepo   repository.SwipeRepository
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	swipeRepo repository.SwipeRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
	}
}

// CandidateResponse is one deck entry. The compatibility result is purely
// informational: it never orders or gates the deck.
type CandidateResponse struct {
	Profile       *domain.Profile      `json:"profile"`
	Compatibility compatibility.Result `json:"compatibility"`
}

// Candidates returns the viewer's swipe deck for one context.
func (uc *FeedUseCase) Candidates(ctx context.Context, viewerID string, rawContext string) ([]*CandidateResponse, error) {
	mctx, err := domain.ParseContext(rawContext)
	if err != nil {
		return nil, err
	}

	viewer, err := uc.profileRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return []*CandidateResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}

	roster, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	swipes, err := uc.swipeRepo.ListBySwiper(ctx, viewerID, mctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}
	swiped := make(map[string]bool, len(swipes))
	for _, swipe := range swipes {
		swiped[swipe.SwipedID] = true
	}

	candidates, err := FilterCandidates(viewer, roster, swiped, mctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		responses = append(responses, &CandidateResponse{
			Profile:       candidate,
			Compatibility: compatibility.Score(viewer, candidate),
		})
	}
	return responses, nil
}

// FilterCandidates applies the deck eligibility rules and preserves roster
// order. Rules, per candidate: no self, no re-presentation within the
// context, blocking excludes in both directions, and the candidate must have
// opted into the pool. Dating additionally requires mutual gender-preference
// compatibility, and a viewer who opted out of dating gets an empty deck
// outright.
func FilterCandidates(viewer *domain.Profile, roster []*domain.Profile, swiped map[string]bool, mctx domain.Context) ([]*domain.Profile, error) {
	if !mctx.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContext, mctx)
	}
	if viewer == nil {
		return []*domain.Profile{}, nil
	}
	if mctx == domain.ContextDating && !viewer.WantsDating {
		return []*domain.Profile{}, nil
	}

	candidates := make([]*domain.Profile, 0, len(roster))
	for _, candidate := range roster {
		if candidate.UserID == viewer.UserID {
			continue
		}
		if swiped[candidate.UserID] {
			continue
		}
		if viewer.HasBlocked(candidate.UserID) || candidate.HasBlocked(viewer.UserID) {
			continue
		}
		if !candidate.WantsContext(mctx) {
			continue
		}
		if mctx == domain.ContextDating {
			if !preferenceAllows(viewer.DatingPreference, candidate.Gender) {
				continue
			}
			if !preferenceAllows(candidate.DatingPreference, viewer.Gender) {
				continue
			}
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// preferenceAllows checks one direction of the gender-preference gate; the
// "both" preference imposes no constraint.
func preferenceAllows(pref domain.Preference, gender domain.Gender) bool {
	switch pref {
	case domain.PrefMen:
		return gender == domain.GenderMan
	case domain.PrefWomen:
		return gender == domain.GenderWoman
	default:
		return true
	}
}
