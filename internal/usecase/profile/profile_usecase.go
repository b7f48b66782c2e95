package profile

import (
	"context"
	"fmt"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CreateProfileRequest is the onboarding payload. Gender, preference and
// intent are free-form here and normalized at this boundary.
type CreateProfileRequest struct {
	FirstName         string            `json:"first_name" binding:"required,min=1,max=100"`
	Age               int               `json:"age" binding:"required"`
	Gender            string            `json:"gender"`
	DatingPreference  string            `json:"dating_preference"`
	WantsFriends      *bool             `json:"wants_friends"`
	WantsDating       *bool             `json:"wants_dating"`
	Mode              string            `json:"mode"`
	Bio               *string           `json:"bio" binding:"omitempty,max=500"`
	Major             *string           `json:"major" binding:"omitempty,max=100"`
	ClassYear         *string           `json:"class_year" binding:"omitempty,max=20"`
	Interests         string            `json:"interests" binding:"omitempty,max=500"`
	Photos            []string          `json:"photos"`
	IcebreakerAnswers map[string]string `json:"icebreaker_answers"`
	Badges            []string          `json:"badges"`
}

// UpdateProfileRequest updates any subset of the editable fields.
type UpdateProfileRequest struct {
	FirstName         *string            `json:"first_name" binding:"omitempty,min=1,max=100"`
	Gender            *string            `json:"gender"`
	DatingPreference  *string            `json:"dating_preference"`
	WantsFriends      *bool              `json:"wants_friends"`
	WantsDating       *bool              `json:"wants_dating"`
	Bio               *string            `json:"bio" binding:"omitempty,max=500"`
	Major             *string            `json:"major" binding:"omitempty,max=100"`
	ClassYear         *string            `json:"class_year" binding:"omitempty,max=20"`
	Interests         *string            `json:"interests" binding:"omitempty,max=500"`
	Photos            *[]string          `json:"photos"`
	IcebreakerAnswers *map[string]string `json:"icebreaker_answers"`
	Badges            *[]string          `json:"badges"`
}

// CreateProfile creates the profile at registration completion.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID string, req *CreateProfileRequest) (*domain.Profile, error) {
	if req.Age < domain.MinAge {
		return nil, domain.ErrUnderage
	}
	if len(req.Photos) > domain.MaxPhotos {
		return nil, domain.ErrTooManyPhotos
	}
	if len(req.Badges) > domain.MaxBadges {
		return nil, domain.ErrTooManyBadges
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	rec := map[string]interface{}{}
	if req.WantsFriends != nil {
		rec["wants_friends"] = *req.WantsFriends
	}
	if req.WantsDating != nil {
		rec["wants_dating"] = *req.WantsDating
	}
	if req.Mode != "" {
		rec["mode"] = req.Mode
	}
	wantsFriends, wantsDating := domain.ResolveIntentFlags(rec)

	answers := domain.IcebreakerAnswers{}
	for q, a := range req.IcebreakerAnswers {
		answers[q] = a
	}

	profile := &domain.Profile{
		UserID:            userID,
		FirstName:         req.FirstName,
		Age:               req.Age,
		Gender:            domain.NormalizeGender(req.Gender),
		DatingPreference:  domain.NormalizeDatingPreference(req.DatingPreference),
		WantsFriends:      wantsFriends,
		WantsDating:       wantsDating,
		Bio:               req.Bio,
		Major:             req.Major,
		ClassYear:         req.ClassYear,
		Interests:         req.Interests,
		Photos:            req.Photos,
		IcebreakerAnswers: answers,
		Badges:            req.Badges,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// GetProfile returns a profile by user id.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies the provided fields, re-normalizing enums and
// re-enforcing the intent invariant.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.Gender != nil {
		profile.Gender = domain.NormalizeGender(*req.Gender)
	}
	if req.DatingPreference != nil {
		profile.DatingPreference = domain.NormalizeDatingPreference(*req.DatingPreference)
	}
	if req.WantsFriends != nil {
		profile.WantsFriends = *req.WantsFriends
	}
	if req.WantsDating != nil {
		profile.WantsDating = *req.WantsDating
	}
	if !profile.WantsFriends && !profile.WantsDating {
		// A profile must stay visible in at least one pool.
		profile.WantsFriends, profile.WantsDating = true, true
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Major != nil {
		profile.Major = req.Major
	}
	if req.ClassYear != nil {
		profile.ClassYear = req.ClassYear
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.Photos != nil {
		if len(*req.Photos) > domain.MaxPhotos {
			return nil, domain.ErrTooManyPhotos
		}
		profile.Photos = *req.Photos
	}
	if req.IcebreakerAnswers != nil {
		answers := domain.IcebreakerAnswers{}
		for q, a := range *req.IcebreakerAnswers {
			answers[q] = a
		}
		profile.IcebreakerAnswers = answers
	}
	if req.Badges != nil {
		if len(*req.Badges) > domain.MaxBadges {
			return nil, domain.ErrTooManyBadges
		}
		profile.Badges = *req.Badges
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// VerifyPhone marks the user's phone as verified.
func (uc *ProfileUseCase) VerifyPhone(ctx context.Context, userID string) error {
	verified := true
	return uc.profileRepo.SetVerification(ctx, userID, nil, &verified)
}

// VerifySchool marks the user's school affiliation as verified.
func (uc *ProfileUseCase) VerifySchool(ctx context.Context, userID string) error {
	verified := true
	return uc.profileRepo.SetVerification(ctx, userID, &verified, nil)
}

// DeleteAccount removes the user; swipes, matches and messages referencing
// them cascade at the storage layer.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
