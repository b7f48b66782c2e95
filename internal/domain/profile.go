package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Gender holds the normalized gender vocabulary. Values outside the known
// constants are allowed: normalization passes unrecognized non-empty input
// through verbatim.
type Gender string

const (
	GenderMan         Gender = "man"
	GenderWoman       Gender = "woman"
	GenderNonBinary   Gender = "non-binary"
	GenderUnspecified Gender = "prefer not to say"
)

// Preference is who a user wants to be shown in the dating pool.
type Preference string

const (
	PrefMen      Preference = "men"
	PrefWomen    Preference = "women"
	PrefEveryone Preference = "both"
)

const (
	MinAge    = 18
	MaxPhotos = 6
	MaxBadges = 4
)

// IcebreakerAnswers maps icebreaker question id to the chosen answer text.
// Stored as JSONB.
type IcebreakerAnswers map[string]string

func (a IcebreakerAnswers) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(IcebreakerAnswers{})
	}
	return json.Marshal(a)
}

func (a *IcebreakerAnswers) Scan(value interface{}) error {
	if value == nil {
		*a = IcebreakerAnswers{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

type Profile struct {
	ID                string            `json:"id" db:"id"`
	UserID            string            `json:"user_id" db:"user_id"`
	FirstName         string            `json:"first_name" db:"first_name"`
	Age               int               `json:"age" db:"age"`
	Gender            Gender            `json:"gender" db:"gender"`
	DatingPreference  Preference        `json:"dating_preference" db:"dating_preference"`
	WantsFriends      bool              `json:"wants_friends" db:"wants_friends"`
	WantsDating       bool              `json:"wants_dating" db:"wants_dating"`
	Bio               *string           `json:"bio" db:"bio"`
	Major             *string           `json:"major" db:"major"`
	ClassYear         *string           `json:"class_year" db:"class_year"`
	Interests         string            `json:"interests" db:"interests"`
	Photos            []string          `json:"photos" db:"photos"`
	IcebreakerAnswers IcebreakerAnswers `json:"icebreaker_answers" db:"icebreaker_answers"`
	Badges            []string          `json:"badges" db:"badges"`
	BlockedIDs        []string          `json:"blocked_ids" db:"blocked_ids"`
	SchoolVerified    bool              `json:"school_verified" db:"school_verified"`
	PhoneVerified     bool              `json:"phone_verified" db:"phone_verified"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// HasBlocked reports whether the profile's owner has blocked the given user.
func (p *Profile) HasBlocked(userID string) bool {
	for _, id := range p.BlockedIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// WantsContext reports whether the profile opted into the given pool.
func (p *Profile) WantsContext(ctx Context) bool {
	if ctx == ContextDating {
		return p.WantsDating
	}
	return p.WantsFriends
}
