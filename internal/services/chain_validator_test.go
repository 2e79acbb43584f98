package services

import (
	"testing"

	"chat_rating_system/internal/db/models"
	mock_repositories "chat_rating_system/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func sequence(ids ...string) []*models.Target {
	targets := make([]*models.Target, 0, len(ids))
	for i, id := range ids {
		targets = append(targets, &models.Target{ID: id, SequencePosition: i})
	}
	return targets
}

func TestBrokenBookTargets_UnbrokenPrefix(t *testing.T) {
	votes := map[string]models.Classification{
		"t1": models.ClassificationBook,
		"t2": models.ClassificationBook,
		"t3": models.ClassificationFire,
	}

	invalidated := brokenBookTargets(sequence("t1", "t2", "t3"), votes)
	assert.Empty(t, invalidated)
}

func TestBrokenBookTargets_EarlierVoteChanged(t *testing.T) {
	// The first vote was revised away from book, stranding the second.
	votes := map[string]models.Classification{
		"t1": models.ClassificationFire,
		"t2": models.ClassificationBook,
		"t3": models.ClassificationFire,
	}

	invalidated := brokenBookTargets(sequence("t1", "t2", "t3"), votes)
	assert.Equal(t, []string{"t2"}, invalidated)
}

func TestBrokenBookTargets_MissingVoteBreaksChain(t *testing.T) {
	votes := map[string]models.Classification{
		"t2": models.ClassificationBook,
	}

	invalidated := brokenBookTargets(sequence("t1", "t2"), votes)
	assert.Equal(t, []string{"t2"}, invalidated)
}

func TestBrokenBookTargets_LaterBooksAllInvalid(t *testing.T) {
	votes := map[string]models.Classification{
		"t1": models.ClassificationMid,
		"t2": models.ClassificationBook,
		"t3": models.ClassificationBook,
	}

	invalidated := brokenBookTargets(sequence("t1", "t2", "t3"), votes)
	assert.Equal(t, []string{"t2", "t3"}, invalidated)
}

func TestBrokenBookTargets_NoVotes(t *testing.T) {
	invalidated := brokenBookTargets(sequence("t1", "t2"), map[string]models.Classification{})
	assert.Empty(t, invalidated)
}

func TestRevalidate_DeletesInvalidatedVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	voteRepo := mock_repositories.NewMockClassificationVoteRepository(ctrl)
	logger := zap.NewNop().Sugar()

	post := &models.Post{ID: "p1", Targets: sequence("t1", "t2", "t3")}

	voteRepo.EXPECT().GetManyByPostAndVoter("p1", "voter").Return([]*models.ClassificationVote{
		{TargetID: "t1", VoterID: "voter", Classification: models.ClassificationFire, Counted: true},
		{TargetID: "t2", VoterID: "voter", Classification: models.ClassificationBook, Counted: true},
		{TargetID: "t3", VoterID: "voter", Classification: models.ClassificationFire, Counted: true},
	}, nil)
	voteRepo.EXPECT().Delete("t2", "voter").Return(nil)

	validator := NewChainValidator(voteRepo, logger)

	invalidated, err := validator.Revalidate(post, "voter")
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2"}, invalidated)
}

func TestRevalidate_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	voteRepo := mock_repositories.NewMockClassificationVoteRepository(ctrl)
	logger := zap.NewNop().Sugar()

	post := &models.Post{ID: "p1", Targets: sequence("t1", "t2")}

	voteRepo.EXPECT().GetManyByPostAndVoter("p1", "voter").Return([]*models.ClassificationVote{
		{TargetID: "t1", VoterID: "voter", Classification: models.ClassificationBook, Counted: true},
	}, nil)

	validator := NewChainValidator(voteRepo, logger)

	invalidated, err := validator.Revalidate(post, "voter")
	assert.NoError(t, err)
	assert.Empty(t, invalidated)
}
