package services

import "errors"

var (
	// ErrCreatorVote rejects a creator voting on their own post before any
	// state is written.
	ErrCreatorVote = errors.New("post creator cannot vote on own post")

	// ErrWindowClosed rejects votes submitted after the voting window.
	ErrWindowClosed = errors.New("voting window is closed")

	// ErrNotFound covers missing posts and targets.
	ErrNotFound = errors.New("post or target not found")

	// ErrTargetNotVotable rejects votes on preset-annotated targets.
	ErrTargetNotVotable = errors.New("target carries a preset classification")

	// ErrNotModerator rejects moderator-only actions from regular voters.
	ErrNotModerator = errors.New("action requires moderator permissions")

	// ErrInvalidClassification rejects tags outside the closed votable set.
	ErrInvalidClassification = errors.New("invalid classification")
)
