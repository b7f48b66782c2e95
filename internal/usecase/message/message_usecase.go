package message

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/realtime"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	bus         *realtime.Bus
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	bus *realtime.Bus,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		bus:         bus,
	}
}

// SendRequest represents a message send.
type SendRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// Send appends a message to a match. The sender must be a participant and
// phone-verified; unlike the best-effort match paths, a storage failure here
// is surfaced because the caller needs delivery confirmation.
func (uc *MessageUseCase) Send(ctx context.Context, senderID, matchID, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(senderID) {
		return nil, domain.ErrNotMatchMember
	}

	sender, err := uc.profileRepo.GetByUserID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender profile: %w", err)
	}
	if !sender.PhoneVerified {
		return nil, domain.ErrPhoneNotVerified
	}

	message := &domain.Message{
		MatchID:     matchID,
		SenderID:    senderID,
		MessageText: text,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if err := uc.bus.Publish(ctx, realtime.CollectionMessages, message); err != nil {
		log.Printf("message: failed to publish message event: %v", err)
	}
	return message, nil
}

// List returns a match's messages ascending by created_at, restricted to
// participants.
func (uc *MessageUseCase) List(ctx context.Context, requesterID, matchID string) ([]*domain.Message, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(requesterID) {
		return nil, domain.ErrNotMatchMember
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}
