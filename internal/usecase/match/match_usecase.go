package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	profileRepo repository.ProfileRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		profileRepo: profileRepo,
	}
}

// ListMatches returns the user's matches across both contexts.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	matches, err := uc.matchRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if matches == nil {
		matches = []*domain.Match{}
	}
	return matches, nil
}

// Unmatch deletes the match and its messages. The underlying swipe rows
// stay: re-matching needs a fresh mutual re-swipe, which the upsert
// semantics permit.
func (uc *MatchUseCase) Unmatch(ctx context.Context, userID, matchID string) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(userID) {
		return domain.ErrNotMatchMember
	}

	if err := uc.messageRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match messages: %w", err)
	}
	if err := uc.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// Block adds the target to the user's blocked set and destroys any existing
// matches with them in both contexts. Blocking is symmetric for visibility:
// one direction in the data excludes both users from each other's decks.
func (uc *MatchUseCase) Block(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return domain.ErrCannotBlockSelf
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, targetID); err != nil {
		return err
	}

	if err := uc.profileRepo.AddBlocked(ctx, userID, targetID); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}

	for _, mctx := range domain.Contexts {
		match, err := uc.matchRepo.GetByUsers(ctx, userID, targetID, mctx)
		if err != nil {
			if errors.Is(err, domain.ErrMatchNotFound) {
				continue
			}
			return fmt.Errorf("failed to look up match: %w", err)
		}
		if err := uc.messageRepo.DeleteByMatch(ctx, match.ID); err != nil {
			return fmt.Errorf("failed to delete match messages: %w", err)
		}
		if err := uc.matchRepo.Delete(ctx, match.ID); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}
	}
	return nil
}
