package models

import "time"

// ClassificationVote is one voter's current tag for one target. Counted marks
// whether the vote passed eligibility when it was written: uncounted rows form
// the voter's personal view only and never enter consensus.
type ClassificationVote struct {
	TargetID       string         `json:"target_id" pg:",pk"`
	VoterID        string         `json:"voter_id" pg:",pk"`
	PostID         string         `json:"post_id" pg:",notnull"`
	Classification Classification `json:"classification" pg:",notnull"`
	Counted        bool           `json:"counted" pg:",notnull,use_zero"`
	CreatedAt      time.Time      `json:"created_at" pg:"default:now()"`
	UpdatedAt      time.Time      `json:"updated_at" pg:"default:now()"`
}

type RatingVote struct {
	PostID    string    `json:"post_id" pg:",pk"`
	VoterID   string    `json:"voter_id" pg:",pk"`
	Rating    int       `json:"rating" pg:",notnull"`
	Counted   bool      `json:"counted" pg:",notnull,use_zero"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}
