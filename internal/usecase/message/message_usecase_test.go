package message

import (
	"context"
	"testing"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc          *MessageUseCase
	matchRepo   *memory.MatchRepository
	profileRepo *memory.ProfileRepository
}

func newFixture(t *testing.T, userIDs ...string) *fixture {
	t.Helper()
	messageRepo := memory.NewMessageRepository()
	matchRepo := memory.NewMatchRepository()
	profileRepo := memory.NewProfileRepository()

	for _, id := range userIDs {
		require.NoError(t, profileRepo.Create(context.Background(), &domain.Profile{
			UserID:        id,
			FirstName:     id,
			Age:           20,
			WantsFriends:  true,
			WantsDating:   true,
			PhoneVerified: true,
		}))
	}

	return &fixture{
		uc:          NewMessageUseCase(messageRepo, matchRepo, profileRepo, nil),
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

func (f *fixture) createMatch(t *testing.T, user1, user2 string) *domain.Match {
	t.Helper()
	match := &domain.Match{User1ID: user1, User2ID: user2, Context: domain.ContextFriends}
	require.NoError(t, f.matchRepo.Create(context.Background(), match))
	return match
}

func TestSendEmptyMessage(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	match := f.createMatch(t, "alice", "bob")

	_, err := f.uc.Send(context.Background(), "alice", match.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestSendUnknownMatch(t *testing.T) {
	f := newFixture(t, "alice")
	_, err := f.uc.Send(context.Background(), "alice", "no-such-match", "hey")
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestSendRequiresMembership(t *testing.T) {
	f := newFixture(t, "alice", "bob", "mallory")
	match := f.createMatch(t, "alice", "bob")

	_, err := f.uc.Send(context.Background(), "mallory", match.ID, "hey")
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
}

func TestSendRequiresVerifiedPhone(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	match := f.createMatch(t, "alice", "bob")
	unverified := false
	require.NoError(t, f.profileRepo.SetVerification(context.Background(), "alice", nil, &unverified))

	_, err := f.uc.Send(context.Background(), "alice", match.ID, "hey")
	assert.ErrorIs(t, err, domain.ErrPhoneNotVerified)
}

func TestSendAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")
	match := f.createMatch(t, "alice", "bob")

	first, err := f.uc.Send(ctx, "alice", match.ID, "hey bob")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	second, err := f.uc.Send(ctx, "bob", match.ID, "hey alice")
	require.NoError(t, err)

	messages, err := f.uc.List(ctx, "alice", match.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID)
	assert.Equal(t, second.ID, messages[1].ID)
	assert.Equal(t, "hey bob", messages[0].MessageText)
}

func TestListRequiresMembership(t *testing.T) {
	f := newFixture(t, "alice", "bob", "mallory")
	match := f.createMatch(t, "alice", "bob")

	_, err := f.uc.List(context.Background(), "mallory", match.ID)
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
}

func TestListEmptyMatch(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	match := f.createMatch(t, "alice", "bob")

	messages, err := f.uc.List(context.Background(), "bob", match.ID)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
