package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalization maps heterogeneous upstream spellings onto the fixed
// vocabulary the matching logic relies on. All functions here are pure and
// idempotent: the same raw record normalized at different call sites must
// always agree.

// NormalizeGender canonicalizes a raw gender string. Unrecognized non-empty
// values pass through verbatim (trimmed); empty input maps to the
// unspecified bucket.
func NormalizeGender(raw string) Gender {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "male", "man", "m":
		return GenderMan
	case "female", "woman", "f":
		return GenderWoman
	case "non-binary", "nonbinary", "nb":
		return GenderNonBinary
	case "":
		return GenderUnspecified
	default:
		return Gender(trimmed)
	}
}

// NormalizeDatingPreference canonicalizes a raw dating-preference string.
func NormalizeDatingPreference(raw string) Preference {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "male", "men", "man", "m":
		return PrefMen
	case "female", "women", "woman", "f":
		return PrefWomen
	case "everyone", "all", "both", "no preference", "":
		return PrefEveryone
	default:
		return Preference(trimmed)
	}
}

// ResolveIntentFlags derives (wants_friends, wants_dating) from an untyped
// record. Explicit boolean-like fields win per-flag; otherwise a single
// mode/intent string is consulted; with neither source both default true.
// Invariant, enforced last: a profile is visible in at least one pool, so
// (false, false) is coerced to (true, true).
func ResolveIntentFlags(rec map[string]interface{}) (wantsFriends, wantsDating bool) {
	wantsFriends, wantsDating = true, true

	if mode, ok := stringField(rec, "mode", "intent"); ok {
		m := strings.ToLower(strings.TrimSpace(mode))
		wantsFriends = m == "friends" || m == "both"
		wantsDating = m == "dating" || m == "both"
	}

	if v, ok := boolishField(rec, "wants_friends"); ok {
		wantsFriends = v
	}
	if v, ok := boolishField(rec, "wants_dating"); ok {
		wantsDating = v
	}

	if !wantsFriends && !wantsDating {
		wantsFriends, wantsDating = true, true
	}
	return wantsFriends, wantsDating
}

// ProfileFromRecord converts an untyped key-value record (with legacy column
// fallbacks) into a strict Profile. Loosely-typed data never travels past
// this boundary.
func ProfileFromRecord(rec map[string]interface{}) (*Profile, error) {
	id, ok := stringField(rec, "id", "user_id")
	if !ok || strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: record has no id", ErrInvalidInput)
	}

	p := &Profile{
		ID:                strings.TrimSpace(id),
		UserID:            strings.TrimSpace(id),
		IcebreakerAnswers: IcebreakerAnswers{},
	}
	if uid, ok := stringField(rec, "user_id"); ok && strings.TrimSpace(uid) != "" {
		p.UserID = strings.TrimSpace(uid)
	}

	if name, ok := stringField(rec, "first_name", "firstName", "name"); ok {
		p.FirstName = strings.TrimSpace(name)
	}
	if age, ok := intField(rec, "age"); ok {
		p.Age = age
	}

	gender, _ := stringField(rec, "gender", "sex")
	p.Gender = NormalizeGender(gender)

	pref, _ := stringField(rec, "dating_preference", "preference", "interested_in")
	p.DatingPreference = NormalizeDatingPreference(pref)

	p.WantsFriends, p.WantsDating = ResolveIntentFlags(rec)

	if bio, ok := stringField(rec, "bio", "about"); ok && bio != "" {
		p.Bio = &bio
	}
	if major, ok := stringField(rec, "major"); ok && major != "" {
		p.Major = &major
	}
	if year, ok := stringField(rec, "class_year", "year"); ok && year != "" {
		p.ClassYear = &year
	}
	if interests, ok := stringField(rec, "interests"); ok {
		p.Interests = interests
	}
	if photos := stringSliceField(rec, "photos", "images"); photos != nil {
		if len(photos) > MaxPhotos {
			photos = photos[:MaxPhotos]
		}
		p.Photos = photos
	}
	if badges := stringSliceField(rec, "badges", "personality_badges"); badges != nil {
		if len(badges) > MaxBadges {
			badges = badges[:MaxBadges]
		}
		p.Badges = badges
	}
	if blocked := stringSliceField(rec, "blocked_ids", "blocked"); blocked != nil {
		p.BlockedIDs = blocked
	}
	if answers, ok := rec["icebreaker_answers"].(map[string]interface{}); ok {
		for q, a := range answers {
			if s, ok := a.(string); ok {
				p.IcebreakerAnswers[q] = s
			}
		}
	}
	if v, ok := boolishField(rec, "school_verified"); ok {
		p.SchoolVerified = v
	}
	if v, ok := boolishField(rec, "phone_verified"); ok {
		p.PhoneVerified = v
	}

	return p, nil
}

func stringField(rec map[string]interface{}, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

func intField(rec map[string]interface{}, keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := rec[k].(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case float64:
			return int(v), true
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func boolishField(rec map[string]interface{}, key string) (bool, bool) {
	v, ok := rec[key]
	if !ok || v == nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case int:
		return t != 0, true
	case int64:
		return t != 0, true
	case float64:
		return t != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	}
	return false, false
}

func stringSliceField(rec map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		switch v := rec[k].(type) {
		case []string:
			return v
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}
