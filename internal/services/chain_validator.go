package services

import (
	"fmt"

	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/db/repositories"

	"go.uber.org/zap"
)

// ChainValidator enforces the book-prefix rule: per voter, the book tag is
// only valid as an unbroken run from the first badge of the sequence. It must
// re-run after every classification vote write because changing an earlier
// vote can retroactively invalidate a later one.
type ChainValidator interface {
	Revalidate(post *models.Post, voterID string) ([]string, error)
}

type chainValidator struct {
	classificationVoteRepository repositories.ClassificationVoteRepository
	logger                       *zap.SugaredLogger
}

func NewChainValidator(
	classificationVoteRepository repositories.ClassificationVoteRepository,
	logger *zap.SugaredLogger,
) ChainValidator {
	return &chainValidator{
		classificationVoteRepository: classificationVoteRepository,
		logger:                       logger,
	}
}

// Revalidate deletes the voter's book votes that no longer sit on an unbroken
// prefix and returns the affected target ids so the client can reconcile.
// Deletion removes the row entirely: an invalidated vote disappears from the
// personal view as well as the countable one.
func (v *chainValidator) Revalidate(post *models.Post, voterID string) ([]string, error) {
	votes, err := v.classificationVoteRepository.GetManyByPostAndVoter(post.ID, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voter votes: %w", err)
	}

	votesByTarget := make(map[string]models.Classification, len(votes))
	for _, vote := range votes {
		votesByTarget[vote.TargetID] = vote.Classification
	}

	invalidated := brokenBookTargets(post.Targets, votesByTarget)

	for _, targetID := range invalidated {
		if err := v.classificationVoteRepository.Delete(targetID, voterID); err != nil {
			return nil, fmt.Errorf("failed to delete invalidated vote: %w", err)
		}

		v.logger.Infow("invalidated book vote",
			"post", post.ID,
			"target", targetID,
			"voter", voterID,
		)
	}

	return invalidated, nil
}

// brokenBookTargets walks the ordered sequence tracking whether the book
// prefix is still intact. A missing vote or any non-book tag breaks the
// chain; book votes after the break are invalid.
func brokenBookTargets(targets []*models.Target, votesByTarget map[string]models.Classification) []string {
	invalidated := make([]string, 0)
	canContinue := true

	for _, target := range targets {
		classification, ok := votesByTarget[target.ID]
		if !ok {
			canContinue = false
			continue
		}

		if classification == models.ClassificationBook {
			if !canContinue {
				invalidated = append(invalidated, target.ID)
			}
			continue
		}

		canContinue = false
	}

	return invalidated
}
