package swipe

import (
	"context"
	"testing"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc          *SwipeUseCase
	profileRepo *memory.ProfileRepository
	swipeRepo   *memory.SwipeRepository
	matchRepo   *memory.MatchRepository
}

func newFixture(t *testing.T, userIDs ...string) *fixture {
	t.Helper()
	profileRepo := memory.NewProfileRepository()
	swipeRepo := memory.NewSwipeRepository()
	matchRepo := memory.NewMatchRepository()

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
		uc:          NewSwipeUseCase(swipeRepo, matchRepo, profileRepo, nil, nil),
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
	}
}

func TestRecordSwipeInvalidContext(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	_, err := f.uc.RecordSwipe(context.Background(), "alice", &SwipeRequest{
		TargetID: "bob", Context: "networking", Liked: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContext)
}

func TestRecordSwipeSelf(t *testing.T) {
	f := newFixture(t, "alice")
	_, err := f.uc.RecordSwipe(context.Background(), "alice", &SwipeRequest{
		TargetID: "alice", Context: "friends", Liked: true,
	})
	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)
}

func TestRecordSwipeRequiresVerifiedPhone(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	unverified := false
	require.NoError(t, f.profileRepo.SetVerification(context.Background(), "alice", nil, &unverified))

	_, err := f.uc.RecordSwipe(context.Background(), "alice", &SwipeRequest{
		TargetID: "bob", Context: "friends", Liked: true,
	})
	assert.ErrorIs(t, err, domain.ErrPhoneNotVerified)
}

func TestRecordSwipeUnknownTarget(t *testing.T) {
	f := newFixture(t, "alice")
	_, err := f.uc.RecordSwipe(context.Background(), "alice", &SwipeRequest{
		TargetID: "ghost", Context: "friends", Liked: true,
	})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRecordSwipePassNeverMatches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")

	// Bob already liked alice.
	_, err := f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)

	res, err := f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "friends", Liked: false})
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
	assert.Nil(t, res.Match)
}

func TestRecordSwipeUnreciprocatedLike(t *testing.T) {
	f := newFixture(t, "alice", "bob")

	res, err := f.uc.RecordSwipe(context.Background(), "alice", &SwipeRequest{
		TargetID: "bob", Context: "friends", Liked: true,
	})
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
	require.NotNil(t, res.Swipe)
	assert.True(t, res.Swipe.Liked)
}

func TestRecordSwipeMutualLikeCreatesMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "zara", "adam")

	_, err := f.uc.RecordSwipe(ctx, "zara", &SwipeRequest{TargetID: "adam", Context: "dating", Liked: true})
	require.NoError(t, err)

	res, err := f.uc.RecordSwipe(ctx, "adam", &SwipeRequest{TargetID: "zara", Context: "dating", Liked: true})
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
	require.NotNil(t, res.Match)

	// The pair is stored in canonical order regardless of who swiped last.
	assert.Equal(t, "adam", res.Match.User1ID)
	assert.Equal(t, "zara", res.Match.User2ID)
	assert.Equal(t, domain.ContextDating, res.Match.Context)
}

func TestRecordSwipeRepeatLikeDoesNotDuplicateMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")

	_, err := f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "friends", Liked: true})
	require.NoError(t, err)
	first, err := f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)
	require.True(t, first.IsMatch)

	// Re-swiping reports the same match instead of minting a second one.
	second, err := f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)
	require.True(t, second.IsMatch)
	assert.Equal(t, first.Match.ID, second.Match.ID)

	matches, err := f.matchRepo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRecordSwipeContextsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")

	// Mutual like in friends, one-way like in dating.
	_, err := f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "friends", Liked: true})
	require.NoError(t, err)
	_, err = f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "dating", Liked: true})
	require.NoError(t, err)

	res, err := f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)
	assert.True(t, res.IsMatch)

	// The dating like stays unreciprocated: no cross-context match.
	matches, err := f.matchRepo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, domain.ContextFriends, matches[0].Context)
}

func TestRecordSwipeUpsertOverwritesDecision(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob")

	_, err := f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "friends", Liked: false})
	require.NoError(t, err)

	// Changing pass to like keeps a single row and can complete a match.
	_, err = f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)
	res, err := f.uc.RecordSwipe(ctx, "alice", &SwipeRequest{TargetID: "bob", Context: "friends", Liked: true})
	require.NoError(t, err)
	assert.True(t, res.IsMatch)

	swipes, err := f.swipeRepo.ListBySwiper(ctx, "alice", domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.True(t, swipes[0].Liked)
}

func TestGetLikesReceived(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "alice", "bob", "carol")

	_, err := f.uc.RecordSwipe(ctx, "bob", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: true})
	require.NoError(t, err)
	_, err = f.uc.RecordSwipe(ctx, "carol", &SwipeRequest{TargetID: "alice", Context: "friends", Liked: false})
	require.NoError(t, err)

	likes, err := f.uc.GetLikesReceived(ctx, "alice", "friends")
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "bob", likes[0].SwiperID)

	_, err = f.uc.GetLikesReceived(ctx, "alice", "")
	assert.ErrorIs(t, err, domain.ErrInvalidContext)
}
