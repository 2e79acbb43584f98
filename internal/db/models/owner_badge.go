package models

import "time"

// OwnerBadge records the best public rating ever granted to a post owner. The
// recorded value only ratchets upward.
type OwnerBadge struct {
	OwnerID   string    `json:"owner_id" pg:",pk"`
	Rating    int       `json:"rating" pg:",notnull"`
	VoteCount int       `json:"vote_count" pg:",notnull"`
	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}
