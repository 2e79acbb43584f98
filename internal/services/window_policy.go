package services

import (
	"fmt"
	"time"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/db/repositories"

	"go.uber.org/zap"
)

// WindowPolicy time-boxes voting and runs the one-time finalization when the
// window has closed. There are no timers here: close detection is driven by
// whichever request (or the sweeper) touches the post next, and the stored
// markers make a concurrent second detection a no-op.
type WindowPolicy interface {
	IsOpen(post *models.Post) bool
	WindowState(post *models.Post) models.WindowState
	FinalizeIfDue(post *models.Post) error
}

type windowPolicy struct {
	postRepository       repositories.PostRepository
	ratingVoteRepository repositories.RatingVoteRepository
	ratingEffects        RatingEffectsService
	moderatorNotifier    ModeratorNotifier
	config               configs.Voting
	logger               *zap.SugaredLogger
}

func NewWindowPolicy(
	postRepository repositories.PostRepository,
	ratingVoteRepository repositories.RatingVoteRepository,
	ratingEffects RatingEffectsService,
	moderatorNotifier ModeratorNotifier,
	config configs.Voting,
	logger *zap.SugaredLogger,
) WindowPolicy {
	return &windowPolicy{
		postRepository:       postRepository,
		ratingVoteRepository: ratingVoteRepository,
		ratingEffects:        ratingEffects,
		moderatorNotifier:    moderatorNotifier,
		config:               config,
		logger:               logger,
	}
}

func (p *windowPolicy) IsOpen(post *models.Post) bool {
	return time.Since(post.CreatedAt) <= p.config.WindowDuration
}

func (p *windowPolicy) WindowState(post *models.Post) models.WindowState {
	if p.IsOpen(post) {
		return models.WindowStateOpen
	}
	return models.WindowStateClosed
}

// FinalizeIfDue computes the final rating consensus and applies the final
// display, badge and notification effects exactly once per post. The flair
// write itself is idempotent, so a finalization race at worst repeats a
// same-text update before the markers land.
func (p *windowPolicy) FinalizeIfDue(post *models.Post) error {
	if p.IsOpen(post) || post.Finalized {
		return nil
	}

	votes, err := p.ratingVoteRepository.GetManyByPost(post.ID)
	if err != nil {
		return fmt.Errorf("failed to load rating votes: %w", err)
	}

	consensus := computeRatingConsensus(votes)

	p.ratingEffects.ApplyDisplay(post, consensus, true)
	p.ratingEffects.GrantOwnerBadgeIfEarned(post, consensus)

	post.Finalized = true
	post.FinalDisplayApplied = true

	if err := p.postRepository.Update(post); err != nil {
		return fmt.Errorf("failed to persist finalization markers: %w", err)
	}

	p.moderatorNotifier.NotifyFinalized(post, consensus)

	p.logger.Infow("finalized post",
		"post", post.ID,
		"rating", consensus.Rating,
		"votes", consensus.VoteCount,
	)

	return nil
}
