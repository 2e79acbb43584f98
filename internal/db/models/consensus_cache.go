package models

import "time"

type WindowState string

const (
	WindowStateOpen   WindowState = "open"
	WindowStateClosed WindowState = "closed"
)

func (s WindowState) String() string {
	return string(s)
}

// ConsensusCacheEntry is a short-lived cached copy of a post's derived
// consensus values. ExpiresAt travels with the payload so staleness is
// self-describing.
type ConsensusCacheEntry struct {
	PostID      string      `json:"post_id" pg:",pk"`
	WindowState WindowState `json:"window_state" pg:",pk"`
	Payload     []byte      `json:"payload" pg:",notnull"`
	ExpiresAt   time.Time   `json:"expires_at" pg:",notnull"`
}

func (e *ConsensusCacheEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
