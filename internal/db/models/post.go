package models

import "time"

type PostMode string

const (
	PostModeVote   PostMode = "vote"
	PostModePreset PostMode = "preset"
)

func (m PostMode) String() string {
	return string(m)
}

type Post struct {
	ID                  string    `json:"id" pg:",pk"`
	CreatorID           string    `json:"creator_id" pg:",notnull"`
	Community           string    `json:"community" pg:",notnull"`
	Mode                PostMode  `json:"mode" pg:",notnull,default:'vote'"`
	CreatedAt           time.Time `json:"created_at" pg:"default:now()"`
	Finalized           bool      `json:"finalized" pg:",notnull,use_zero"`
	FinalDisplayApplied bool      `json:"final_display_applied" pg:",notnull,use_zero"`
	Targets             []*Target `json:"targets" pg:"rel:has-many"`
}

// Target is one votable message badge. Preset is only set on posts in preset
// mode; a target with a preset classification is not votable.
type Target struct {
	ID               string         `json:"id" pg:",pk"`
	PostID           string         `json:"post_id" pg:",notnull"`
	SequencePosition int            `json:"sequence_position" pg:",notnull,use_zero"`
	Preset           Classification `json:"preset" pg:",use_zero"`
}

func (t *Target) Votable() bool {
	return t.Preset == ""
}
