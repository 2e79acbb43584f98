package services

import (
	"encoding/json"
	"fmt"
	"time"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/db/repositories"

	"go.uber.org/zap"
)

type ClassificationVoteResult struct {
	Consensus            models.ConsensusResult            `json:"consensus"`
	AllConsensus         map[string]models.ConsensusResult `json:"all_consensus"`
	Counted              bool                              `json:"counted"`
	InvalidatedTargetIDs []string                          `json:"invalidated_target_ids"`
}

type RatingVoteResult struct {
	Consensus    models.RatingConsensus `json:"consensus"`
	Counted      bool                   `json:"counted"`
	DisplayLabel string                 `json:"display_label"`
}

type InitState struct {
	PerTargetConsensus map[string]models.ConsensusResult `json:"per_target_consensus"`
	VoterOwnVotes      map[string]models.Classification  `json:"voter_own_votes"`
	VoterOwnRating     *int                              `json:"voter_own_rating"`
	RatingConsensus    models.RatingConsensus            `json:"rating_consensus"`
	DisplayLabel       string                            `json:"display_label"`
	WindowOpen         bool                              `json:"window_open"`
}

// cachePayload is the cached copy of a post's derived consensus values.
type cachePayload struct {
	PerTargetConsensus map[string]models.ConsensusResult `json:"per_target_consensus"`
	RatingConsensus    models.RatingConsensus            `json:"rating_consensus"`
}

// VoteService is the consensus engine's public surface. It has no knowledge
// of HTTP; the api package is a thin adapter over these methods.
type VoteService interface {
	SubmitClassificationVote(targetID, voterID string, classification models.Classification) (*ClassificationVoteResult, error)
	SubmitRatingVote(postID, voterID string, rating int) (*RatingVoteResult, error)
	GetInitState(postID, voterID string) (*InitState, error)
	RemoveTarget(targetID, actorID string) error
}

type voteService struct {
	postRepository               repositories.PostRepository
	classificationVoteRepository repositories.ClassificationVoteRepository
	ratingVoteRepository         repositories.RatingVoteRepository
	consensusCacheRepository     repositories.ConsensusCacheRepository
	identityService              IdentityService
	eligibilityService           EligibilityService
	chainValidator               ChainValidator
	windowPolicy                 WindowPolicy
	ratingEffects                RatingEffectsService
	moderatorNotifier            ModeratorNotifier
	config                       configs.Voting
	logger                       *zap.SugaredLogger
}

func NewVoteService(
	postRepository repositories.PostRepository,
	classificationVoteRepository repositories.ClassificationVoteRepository,
	ratingVoteRepository repositories.RatingVoteRepository,
	consensusCacheRepository repositories.ConsensusCacheRepository,
	identityService IdentityService,
	eligibilityService EligibilityService,
	chainValidator ChainValidator,
	windowPolicy WindowPolicy,
	ratingEffects RatingEffectsService,
	moderatorNotifier ModeratorNotifier,
	config configs.Voting,
	logger *zap.SugaredLogger,
) VoteService {
	return &voteService{
		postRepository:               postRepository,
		classificationVoteRepository: classificationVoteRepository,
		ratingVoteRepository:         ratingVoteRepository,
		consensusCacheRepository:     consensusCacheRepository,
		identityService:              identityService,
		eligibilityService:           eligibilityService,
		chainValidator:               chainValidator,
		windowPolicy:                 windowPolicy,
		ratingEffects:                ratingEffects,
		moderatorNotifier:            moderatorNotifier,
		config:                       config,
		logger:                       logger,
	}
}

func (s *voteService) SubmitClassificationVote(targetID, voterID string, classification models.Classification) (*ClassificationVoteResult, error) {
	if !classification.Valid() {
		return nil, ErrInvalidClassification
	}

	post, err := s.postRepository.GetOneByTarget(targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	target := findTarget(post, targetID)
	if target == nil {
		return nil, ErrNotFound
	}
	if !target.Votable() {
		return nil, ErrTargetNotVotable
	}

	if err := s.windowPolicy.FinalizeIfDue(post); err != nil {
		s.logger.Errorw("failed to finalize post", "post", post.ID, "error", err)
	}
	if !s.windowPolicy.IsOpen(post) {
		return nil, ErrWindowClosed
	}
	if voterID == post.CreatorID {
		return nil, ErrCreatorVote
	}

	counted := s.eligibilityService.IsEligible(post, voterID)

	// The personal view always records the voter's choice; counted gates
	// the aggregate view only.
	err = s.classificationVoteRepository.Upsert(&models.ClassificationVote{
		TargetID:       targetID,
		VoterID:        voterID,
		PostID:         post.ID,
		Classification: classification,
		Counted:        counted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store vote: %w", err)
	}

	invalidated, err := s.chainValidator.Revalidate(post, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to revalidate book chain: %w", err)
	}

	payload, err := s.refreshConsensus(post)
	if err != nil {
		return nil, err
	}

	return &ClassificationVoteResult{
		Consensus:            payload.PerTargetConsensus[targetID],
		AllConsensus:         payload.PerTargetConsensus,
		Counted:              counted,
		InvalidatedTargetIDs: invalidated,
	}, nil
}

func (s *voteService) SubmitRatingVote(postID, voterID string, rating int) (*RatingVoteResult, error) {
	post, err := s.postRepository.GetOne(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if err := s.windowPolicy.FinalizeIfDue(post); err != nil {
		s.logger.Errorw("failed to finalize post", "post", post.ID, "error", err)
	}
	if !s.windowPolicy.IsOpen(post) {
		return nil, ErrWindowClosed
	}
	if voterID == post.CreatorID {
		return nil, ErrCreatorVote
	}

	// Out-of-range input is clamped, not rejected.
	rating = clampRating(rating, s.config.RatingMin, s.config.RatingMax)

	counted := s.eligibilityService.IsEligible(post, voterID)

	err = s.ratingVoteRepository.Upsert(&models.RatingVote{
		PostID:  postID,
		VoterID: voterID,
		Rating:  rating,
		Counted: counted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store rating vote: %w", err)
	}

	payload, err := s.refreshConsensus(post)
	if err != nil {
		return nil, err
	}

	consensus := payload.RatingConsensus
	s.ratingEffects.ApplyDisplay(post, consensus, false)
	s.ratingEffects.GrantOwnerBadgeIfEarned(post, consensus)

	return &RatingVoteResult{
		Consensus:    consensus,
		Counted:      counted,
		DisplayLabel: s.ratingEffects.DisplayLabel(consensus),
	}, nil
}

func (s *voteService) GetInitState(postID, voterID string) (*InitState, error) {
	post, err := s.postRepository.GetOne(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if err := s.windowPolicy.FinalizeIfDue(post); err != nil {
		s.logger.Errorw("failed to finalize post", "post", post.ID, "error", err)
	}

	payload, err := s.readConsensus(post)
	if err != nil {
		return nil, err
	}

	ownVotes, err := s.classificationVoteRepository.GetManyByPostAndVoter(postID, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voter votes: %w", err)
	}

	voterOwnVotes := make(map[string]models.Classification, len(ownVotes))
	for _, vote := range ownVotes {
		voterOwnVotes[vote.TargetID] = vote.Classification
	}

	var voterOwnRating *int
	ownRating, err := s.ratingVoteRepository.GetOne(postID, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voter rating: %w", err)
	}
	if ownRating != nil {
		voterOwnRating = &ownRating.Rating
	}

	return &InitState{
		PerTargetConsensus: payload.PerTargetConsensus,
		VoterOwnVotes:      voterOwnVotes,
		VoterOwnRating:     voterOwnRating,
		RatingConsensus:    payload.RatingConsensus,
		DisplayLabel:       s.ratingEffects.DisplayLabel(payload.RatingConsensus),
		WindowOpen:         s.windowPolicy.IsOpen(post),
	}, nil
}

// RemoveTarget is the moderator edit path: it deletes a badge and purges its
// votes from both views.
func (s *voteService) RemoveTarget(targetID, actorID string) error {
	post, err := s.postRepository.GetOneByTarget(targetID)
	if err != nil {
		return fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return ErrNotFound
	}

	if !s.identityService.IsModerator(actorID, post.Community) {
		return ErrNotModerator
	}

	if err := s.classificationVoteRepository.DeleteManyByTarget(targetID); err != nil {
		return fmt.Errorf("failed to purge target votes: %w", err)
	}

	target := findTarget(post, targetID)
	if target != nil {
		if err := s.postRepository.DeleteTarget(target); err != nil {
			return fmt.Errorf("failed to delete target: %w", err)
		}
	}

	if err := s.consensusCacheRepository.DeleteManyByPost(post.ID); err != nil {
		s.logger.Errorw("failed to drop consensus cache", "post", post.ID, "error", err)
	}

	s.moderatorNotifier.NotifyVotesPurged(post, targetID, actorID)

	return nil
}

// refreshConsensus drops both cache entries for the post before recomputing,
// so the read that answers this request is guaranteed fresh.
func (s *voteService) refreshConsensus(post *models.Post) (*cachePayload, error) {
	if err := s.consensusCacheRepository.DeleteManyByPost(post.ID); err != nil {
		s.logger.Errorw("failed to drop consensus cache", "post", post.ID, "error", err)
	}

	return s.computeAndCache(post)
}

// readConsensus serves from the short-TTL cache when possible. Concurrent
// recomputations converge on the same answer, so a stale overwrite is
// bounded by the TTL.
func (s *voteService) readConsensus(post *models.Post) (*cachePayload, error) {
	entry, err := s.consensusCacheRepository.Get(post.ID, s.windowPolicy.WindowState(post))
	if err != nil {
		s.logger.Errorw("failed to read consensus cache", "post", post.ID, "error", err)
	}

	if entry != nil {
		payload := new(cachePayload)
		decodeErr := json.Unmarshal(entry.Payload, payload)
		if decodeErr == nil {
			return payload, nil
		}
		s.logger.Errorw("failed to decode consensus cache entry", "post", post.ID, "error", decodeErr)
	}

	return s.computeAndCache(post)
}

func (s *voteService) computeAndCache(post *models.Post) (*cachePayload, error) {
	perTarget := make(map[string]models.ConsensusResult, len(post.Targets))

	for _, target := range post.Targets {
		if !target.Votable() {
			// Preset mode: the author's annotation is the consensus.
			preset := target.Preset
			perTarget[target.ID] = models.ConsensusResult{
				TargetID:       target.ID,
				Classification: &preset,
				DisplayName:    preset.DisplayName(),
			}
			continue
		}

		votes, err := s.classificationVoteRepository.GetManyByTarget(target.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load target votes: %w", err)
		}

		perTarget[target.ID] = computeClassificationConsensus(target.ID, votes, s.config.ClassificationQuorum)
	}

	ratingVotes, err := s.ratingVoteRepository.GetManyByPost(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating votes: %w", err)
	}

	payload := &cachePayload{
		PerTargetConsensus: perTarget,
		RatingConsensus:    computeRatingConsensus(ratingVotes),
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode consensus payload: %w", err)
	}

	err = s.consensusCacheRepository.Set(&models.ConsensusCacheEntry{
		PostID:      post.ID,
		WindowState: s.windowPolicy.WindowState(post),
		Payload:     encoded,
		ExpiresAt:   time.Now().Add(s.config.CacheTTL),
	})
	if err != nil {
		s.logger.Errorw("failed to write consensus cache", "post", post.ID, "error", err)
	}

	return payload, nil
}

func findTarget(post *models.Post, targetID string) *models.Target {
	for _, target := range post.Targets {
		if target.ID == targetID {
			return target
		}
	}
	return nil
}
