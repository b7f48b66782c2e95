package profile

import (
	"context"
	"testing"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() (*ProfileUseCase, *memory.ProfileRepository, *memory.UserRepository) {
	profileRepo := memory.NewProfileRepository()
	userRepo := memory.NewUserRepository()
	return NewProfileUseCase(profileRepo, userRepo), profileRepo, userRepo
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCreateProfileNormalizesInput(t *testing.T) {
	uc, _, _ := newUseCase()

	created, err := uc.CreateProfile(context.Background(), "user-1", &CreateProfileRequest{
		FirstName:        "Avery",
		Age:              20,
		Gender:           " FEMALE ",
		DatingPreference: "Everyone",
		Mode:             "dating",
		Interests:        "hiking, coffee",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.GenderWoman, created.Gender)
	assert.Equal(t, domain.PrefEveryone, created.DatingPreference)
	assert.False(t, created.WantsFriends)
	assert.True(t, created.WantsDating)
	assert.NotEmpty(t, created.ID)
}

func TestCreateProfileUnderage(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.CreateProfile(context.Background(), "user-1", &CreateProfileRequest{
		FirstName: "Kid", Age: 17,
	})
	assert.ErrorIs(t, err, domain.ErrUnderage)
}

func TestCreateProfileLimits(t *testing.T) {
	uc, _, _ := newUseCase()

	photos := make([]string, domain.MaxPhotos+1)
	_, err := uc.CreateProfile(context.Background(), "user-1", &CreateProfileRequest{
		FirstName: "Avery", Age: 20, Photos: photos,
	})
	assert.ErrorIs(t, err, domain.ErrTooManyPhotos)

	badges := make([]string, domain.MaxBadges+1)
	_, err = uc.CreateProfile(context.Background(), "user-1", &CreateProfileRequest{
		FirstName: "Avery", Age: 20, Badges: badges,
	})
	assert.ErrorIs(t, err, domain.ErrTooManyBadges)
}

func TestCreateProfileDuplicate(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	require.NoError(t, err)
	_, err = uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	assert.ErrorIs(t, err, domain.ErrProfileAlreadyExists)
}

func TestCreateProfileExplicitFlagsWinOverMode(t *testing.T) {
	uc, _, _ := newUseCase()

	created, err := uc.CreateProfile(context.Background(), "user-1", &CreateProfileRequest{
		FirstName:   "Avery",
		Age:         20,
		Mode:        "friends",
		WantsDating: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, created.WantsFriends)
	assert.True(t, created.WantsDating)
}

func TestUpdateProfileReenforcesIntentInvariant(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(ctx, "user-1", &UpdateProfileRequest{
		WantsFriends: boolPtr(false),
		WantsDating:  boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, updated.WantsFriends)
	assert.True(t, updated.WantsDating)
}

func TestUpdateProfileRenormalizesEnums(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(ctx, "user-1", &UpdateProfileRequest{
		Gender:           strPtr("NonBinary"),
		DatingPreference: strPtr("MEN"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GenderNonBinary, updated.Gender)
	assert.Equal(t, domain.PrefMen, updated.DatingPreference)
}

func TestUpdateProfileMissing(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.UpdateProfile(context.Background(), "ghost", &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestVerifyPhone(t *testing.T) {
	uc, profileRepo, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	require.NoError(t, err)
	require.False(t, created.PhoneVerified)

	require.NoError(t, uc.VerifyPhone(ctx, "user-1"))

	stored, err := profileRepo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, stored.PhoneVerified)
	assert.False(t, stored.SchoolVerified)
}

func TestVerifySchool(t *testing.T) {
	uc, profileRepo, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateProfile(ctx, "user-1", &CreateProfileRequest{FirstName: "Avery", Age: 20})
	require.NoError(t, err)
	require.NoError(t, uc.VerifySchool(ctx, "user-1"))

	stored, err := profileRepo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, stored.SchoolVerified)
	assert.False(t, stored.PhoneVerified)
}

func TestDeleteAccount(t *testing.T) {
	uc, _, userRepo := newUseCase()
	ctx := context.Background()

	user := &domain.User{Phone: "+15551234567"}
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, uc.DeleteAccount(ctx, user.ID))
	_, err := userRepo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
