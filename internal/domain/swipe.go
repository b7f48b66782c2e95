package domain

import "time"

// Swipe is a directed decision. At most one row exists per
// (swiper, swiped, context); re-swiping upserts the liked value.
type Swipe struct {
	ID        string    `json:"id" db:"id"`
	SwiperID  string    `json:"swiper_id" db:"swiper_id"`
	SwipedID  string    `json:"swiped_id" db:"swiped_id"`
	Context   Context   `json:"context" db:"context"`
	Liked     bool      `json:"liked" db:"liked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
