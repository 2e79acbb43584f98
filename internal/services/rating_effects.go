package services

import (
	"fmt"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/db/repositories"

	"go.uber.org/zap"
)

const (
	maskedRatingLabel  = "??? Elo"
	unratedFlairLabel  = "Unrated"
	flairStyleKey      = "style"
	flairStylePending  = "rating-pending"
	flairStyleRated    = "rating-final"
	flairStyleUnrated  = "rating-none"
	badgeNotifySubject = "New personal best"
)

// RatingEffectsService owns the display and notification side effects of a
// rating consensus. Everything here is replay-safe: flair writes are
// idempotent on the platform side and the owner badge only ratchets upward.
type RatingEffectsService interface {
	DisplayLabel(consensus models.RatingConsensus) string
	ApplyDisplay(post *models.Post, consensus models.RatingConsensus, final bool)
	GrantOwnerBadgeIfEarned(post *models.Post, consensus models.RatingConsensus)
}

type ratingEffectsService struct {
	ownerBadgeRepository repositories.OwnerBadgeRepository
	platformService      PlatformService
	config               configs.Voting
	logger               *zap.SugaredLogger
}

func NewRatingEffectsService(
	ownerBadgeRepository repositories.OwnerBadgeRepository,
	platformService PlatformService,
	config configs.Voting,
	logger *zap.SugaredLogger,
) RatingEffectsService {
	return &ratingEffectsService{
		ownerBadgeRepository: ownerBadgeRepository,
		platformService:      platformService,
		config:               config,
		logger:               logger,
	}
}

// DisplayLabel masks the numeric value until enough votes are in.
func (s *ratingEffectsService) DisplayLabel(consensus models.RatingConsensus) string {
	if consensus.VoteCount < s.config.VisibleMinVotes {
		return maskedRatingLabel
	}

	return fmt.Sprintf("%d Elo", consensus.Rating)
}

// ApplyDisplay pushes the flair text for the current consensus. During the
// window nothing is shown below the flair threshold; at finalization a flair
// is always applied, with the unrated marker standing in for a post that
// never reached the threshold.
func (s *ratingEffectsService) ApplyDisplay(post *models.Post, consensus models.RatingConsensus, final bool) {
	var text, style string

	switch {
	case consensus.VoteCount >= s.config.FlairMinVotes:
		text = s.DisplayLabel(consensus)
		style = flairStylePending
		if final {
			style = flairStyleRated
		}
	case final:
		text = unratedFlairLabel
		style = flairStyleUnrated
	default:
		return
	}

	err := s.platformService.SetDisplayText(post.ID, text, map[string]string{flairStyleKey: style})
	if err != nil {
		s.logger.Errorw("failed to set post flair",
			"post", post.ID,
			"error", err,
		)
	}
}

// GrantOwnerBadgeIfEarned records a new personal best for the post owner once
// the vote count is high enough. The stored rating never silently lowers.
func (s *ratingEffectsService) GrantOwnerBadgeIfEarned(post *models.Post, consensus models.RatingConsensus) {
	if consensus.VoteCount < s.config.BadgeMinVotes {
		return
	}

	badge, err := s.ownerBadgeRepository.GetOne(post.CreatorID)
	if err != nil {
		s.logger.Errorw("failed to load owner badge", "owner", post.CreatorID, "error", err)
		return
	}

	if badge != nil && consensus.Rating <= badge.Rating {
		return
	}

	err = s.ownerBadgeRepository.Upsert(&models.OwnerBadge{
		OwnerID:   post.CreatorID,
		Rating:    consensus.Rating,
		VoteCount: consensus.VoteCount,
	})
	if err != nil {
		s.logger.Errorw("failed to store owner badge", "owner", post.CreatorID, "error", err)
		return
	}

	body := fmt.Sprintf("Your post %s reached a crowd rating of %d Elo, a new personal best.", post.ID, consensus.Rating)
	if err := s.platformService.SendNotification(post.CreatorID, badgeNotifySubject, body); err != nil {
		s.logger.Errorw("failed to send badge notification", "owner", post.CreatorID, "error", err)
	}
}
