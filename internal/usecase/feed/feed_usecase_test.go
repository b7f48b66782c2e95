package feed

import (
	"context"
	"testing"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(userID string, gender domain.Gender, pref domain.Preference, friends, dating bool) *domain.Profile {
	return &domain.Profile{
		UserID:           userID,
		FirstName:        userID,
		Age:              20,
		Gender:           gender,
		DatingPreference: pref,
		WantsFriends:     friends,
		WantsDating:      dating,
	}
}

func TestFilterCandidatesExcludesSelf(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	roster := []*domain.Profile{viewer, newProfile("a", domain.GenderMan, domain.PrefEveryone, true, true)}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].UserID)
}

func TestFilterCandidatesExcludesSwiped(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	roster := []*domain.Profile{
		newProfile("liked", domain.GenderMan, domain.PrefEveryone, true, true),
		newProfile("passed", domain.GenderMan, domain.PrefEveryone, true, true),
		newProfile("fresh", domain.GenderMan, domain.PrefEveryone, true, true),
	}
	swiped := map[string]bool{"liked": true, "passed": true}

	out, err := FilterCandidates(viewer, roster, swiped, domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "fresh", out[0].UserID)
}

func TestFilterCandidatesBlockingIsSymmetric(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	viewer.BlockedIDs = []string{"blocked-by-viewer"}

	blockedViewer := newProfile("blocked-viewer", domain.GenderMan, domain.PrefEveryone, true, true)
	blockedViewer.BlockedIDs = []string{"v"}

	roster := []*domain.Profile{
		newProfile("blocked-by-viewer", domain.GenderMan, domain.PrefEveryone, true, true),
		blockedViewer,
		newProfile("ok", domain.GenderMan, domain.PrefEveryone, true, true),
	}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].UserID)
}

func TestFilterCandidatesContextOptIn(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	roster := []*domain.Profile{
		newProfile("friends-only", domain.GenderMan, domain.PrefEveryone, true, false),
		newProfile("dating-only", domain.GenderMan, domain.PrefEveryone, false, true),
	}

	friends, err := FilterCandidates(viewer, roster, nil, domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "friends-only", friends[0].UserID)

	dating, err := FilterCandidates(viewer, roster, nil, domain.ContextDating)
	require.NoError(t, err)
	require.Len(t, dating, 1)
	assert.Equal(t, "dating-only", dating[0].UserID)
}

func TestFilterCandidatesDatingPreferenceIsMutual(t *testing.T) {
	// Viewer is a woman seeking men. A man seeking women matches both ways;
	// a man seeking men fails the reverse direction; a woman seeking men
	// fails the forward direction.
	viewer := newProfile("v", domain.GenderWoman, domain.PrefMen, true, true)
	roster := []*domain.Profile{
		newProfile("man-seeking-women", domain.GenderMan, domain.PrefWomen, true, true),
		newProfile("man-seeking-men", domain.GenderMan, domain.PrefMen, true, true),
		newProfile("woman-seeking-men", domain.GenderWoman, domain.PrefMen, true, true),
	}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextDating)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "man-seeking-women", out[0].UserID)
}

func TestFilterCandidatesPrefEveryoneImposesNothing(t *testing.T) {
	viewer := newProfile("v", domain.GenderNonBinary, domain.PrefEveryone, true, true)
	roster := []*domain.Profile{
		newProfile("a", domain.GenderMan, domain.PrefEveryone, true, true),
		newProfile("b", domain.GenderWoman, domain.PrefEveryone, true, true),
		newProfile("c", domain.GenderNonBinary, domain.PrefEveryone, true, true),
	}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextDating)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestFilterCandidatesViewerOptedOutOfDating(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, false)
	roster := []*domain.Profile{
		newProfile("a", domain.GenderMan, domain.PrefEveryone, true, true),
	}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextDating)
	require.NoError(t, err)
	assert.Empty(t, out)

	// The friends pool is unaffected by the dating opt-out.
	out, err = FilterCandidates(viewer, roster, nil, domain.ContextFriends)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestFilterCandidatesPreservesRosterOrder(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	roster := []*domain.Profile{
		newProfile("c", domain.GenderMan, domain.PrefEveryone, true, true),
		newProfile("a", domain.GenderMan, domain.PrefEveryone, true, true),
		newProfile("b", domain.GenderMan, domain.PrefEveryone, true, true),
	}

	out, err := FilterCandidates(viewer, roster, nil, domain.ContextFriends)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].UserID)
	assert.Equal(t, "a", out[1].UserID)
	assert.Equal(t, "b", out[2].UserID)
}

func TestFilterCandidatesInvalidContext(t *testing.T) {
	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	_, err := FilterCandidates(viewer, nil, nil, domain.Context("networking"))
	assert.ErrorIs(t, err, domain.ErrInvalidContext)
}

func TestCandidatesViewerWithoutProfile(t *testing.T) {
	uc := NewFeedUseCase(memory.NewProfileRepository(), memory.NewSwipeRepository())

	out, err := uc.Candidates(context.Background(), "ghost", "friends")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCandidatesEndToEnd(t *testing.T) {
	ctx := context.Background()
	profileRepo := memory.NewProfileRepository()
	swipeRepo := memory.NewSwipeRepository()
	uc := NewFeedUseCase(profileRepo, swipeRepo)

	viewer := newProfile("v", domain.GenderWoman, domain.PrefEveryone, true, true)
	viewer.Interests = "hiking, coffee"
	candidate := newProfile("a", domain.GenderMan, domain.PrefEveryone, true, true)
	candidate.Interests = "coffee, gaming"
	swipedAway := newProfile("b", domain.GenderMan, domain.PrefEveryone, true, true)

	require.NoError(t, profileRepo.Create(ctx, viewer))
	require.NoError(t, profileRepo.Create(ctx, candidate))
	require.NoError(t, profileRepo.Create(ctx, swipedAway))
	require.NoError(t, swipeRepo.Upsert(ctx, &domain.Swipe{
		SwiperID: "v", SwipedID: "b", Context: domain.ContextFriends, Liked: false,
	}))

	out, err := uc.Candidates(ctx, "v", "friends")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Profile.UserID)
	assert.Equal(t, []string{"coffee"}, out[0].Compatibility.SharedInterests)

	// The swipe only consumed the friends deck: b is still in dating.
	out, err = uc.Candidates(ctx, "v", "dating")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
