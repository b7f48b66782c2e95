package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidInput      = errors.New("invalid input")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrUnderage             = errors.New("must be at least 18 years old")
	ErrTooManyPhotos        = errors.New("too many photos")
	ErrTooManyBadges        = errors.New("too many badges")
	ErrPhoneNotVerified     = errors.New("phone not verified")

	ErrInvalidContext  = errors.New("invalid context")
	ErrCannotSwipeSelf = errors.New("cannot swipe on yourself")
	ErrCannotBlockSelf = errors.New("cannot block yourself")
	ErrSwipeNotFound   = errors.New("swipe not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrNotMatchMember  = errors.New("user is not part of this match")
	ErrEmptyMessage    = errors.New("message text is empty")
)
