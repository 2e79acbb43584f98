package services

import (
	"time"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db/models"

	"go.uber.org/zap"
)

// EligibilityService decides whether a voter's vote counts toward consensus
// right now. It is evaluated fresh on every vote request; an ineligible vote
// is still recorded in the voter's personal view.
type EligibilityService interface {
	IsEligible(post *models.Post, voterID string) bool
}

type eligibilityService struct {
	identityService IdentityService
	windowPolicy    WindowPolicy
	config          configs.Voting
	logger          *zap.SugaredLogger
}

func NewEligibilityService(
	identityService IdentityService,
	windowPolicy WindowPolicy,
	config configs.Voting,
	logger *zap.SugaredLogger,
) EligibilityService {
	return &eligibilityService{
		identityService: identityService,
		windowPolicy:    windowPolicy,
		config:          config,
		logger:          logger,
	}
}

func (s *eligibilityService) IsEligible(post *models.Post, voterID string) bool {
	if voterID == post.CreatorID {
		return false
	}

	if !s.windowPolicy.IsOpen(post) {
		return false
	}

	// Age and karma must be known; a dead identity source means the vote
	// stays personal-only.
	profile, err := s.identityService.GetProfile(voterID)
	if err != nil || profile == nil {
		s.logger.Warnw("failed to load voter profile, vote will not be counted",
			"voter", voterID,
			"error", err,
		)
		return false
	}

	if time.Since(profile.AccountCreatedAt) < s.config.MinAccountAge {
		return false
	}

	if profile.Karma < s.config.MinKarma {
		return false
	}

	// Ban lookups are best-effort: unknown is treated as not banned so
	// voting never depends on the ban list's uptime.
	if s.identityService.GetBanStatus(voterID, post.Community) == BanStatusBanned {
		return false
	}

	return true
}
