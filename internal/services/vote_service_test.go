package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db/models"
	mock_repositories "chat_rating_system/internal/db/repositories/mocks"
	"chat_rating_system/internal/services"
	mock_services "chat_rating_system/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var votingConfig = configs.Voting{
	WindowDuration:       48 * time.Hour,
	ClassificationQuorum: 3,
	FlairMinVotes:        3,
	VisibleMinVotes:      5,
	BadgeMinVotes:        10,
	RatingMin:            100,
	RatingMax:            3000,
	CacheTTL:             5 * time.Second,
}

type voteServiceMocks struct {
	postRepo    *mock_repositories.MockPostRepository
	cvoteRepo   *mock_repositories.MockClassificationVoteRepository
	rvoteRepo   *mock_repositories.MockRatingVoteRepository
	cacheRepo   *mock_repositories.MockConsensusCacheRepository
	identity    *mock_services.MockIdentityService
	eligibility *mock_services.MockEligibilityService
	chain       *mock_services.MockChainValidator
	window      *mock_services.MockWindowPolicy
	effects     *mock_services.MockRatingEffectsService
	notifier    *mock_services.MockModeratorNotifier
}

func newVoteService(ctrl *gomock.Controller) (services.VoteService, voteServiceMocks) {
	m := voteServiceMocks{
		postRepo:    mock_repositories.NewMockPostRepository(ctrl),
		cvoteRepo:   mock_repositories.NewMockClassificationVoteRepository(ctrl),
		rvoteRepo:   mock_repositories.NewMockRatingVoteRepository(ctrl),
		cacheRepo:   mock_repositories.NewMockConsensusCacheRepository(ctrl),
		identity:    mock_services.NewMockIdentityService(ctrl),
		eligibility: mock_services.NewMockEligibilityService(ctrl),
		chain:       mock_services.NewMockChainValidator(ctrl),
		window:      mock_services.NewMockWindowPolicy(ctrl),
		effects:     mock_services.NewMockRatingEffectsService(ctrl),
		notifier:    mock_services.NewMockModeratorNotifier(ctrl),
	}

	service := services.NewVoteService(
		m.postRepo,
		m.cvoteRepo,
		m.rvoteRepo,
		m.cacheRepo,
		m.identity,
		m.eligibility,
		m.chain,
		m.window,
		m.effects,
		m.notifier,
		votingConfig,
		zap.NewNop().Sugar(),
	)

	return service, m
}

func votablePost() *models.Post {
	return &models.Post{
		ID:        "p1",
		CreatorID: "author",
		Community: "chatratings",
		Mode:      models.PostModeVote,
		CreatedAt: time.Now().Add(-time.Hour),
		Targets: []*models.Target{
			{ID: "t1", PostID: "p1", SequencePosition: 0},
			{ID: "t2", PostID: "p1", SequencePosition: 1},
		},
	}
}

func TestSubmitClassificationVote_InvalidTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newVoteService(ctrl)

	_, err := service.SubmitClassificationVote("t1", "voter", models.Classification("nonsense"))
	assert.ErrorIs(t, err, services.ErrInvalidClassification)
}

func TestSubmitClassificationVote_TargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	m.postRepo.EXPECT().GetOneByTarget("t404").Return(nil, nil)

	_, err := service.SubmitClassificationVote("t404", "voter", models.ClassificationFire)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSubmitClassificationVote_CreatorRejectedBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(true)

	_, err := service.SubmitClassificationVote("t1", "author", models.ClassificationFire)
	assert.ErrorIs(t, err, services.ErrCreatorVote)
}

func TestSubmitClassificationVote_WindowClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(false)

	_, err := service.SubmitClassificationVote("t1", "voter", models.ClassificationFire)
	assert.ErrorIs(t, err, services.ErrWindowClosed)
}

func TestSubmitClassificationVote_PresetTargetNotVotable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	post.Mode = models.PostModePreset
	post.Targets[0].Preset = models.ClassificationSmooth

	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)

	_, err := service.SubmitClassificationVote("t1", "voter", models.ClassificationFire)
	assert.ErrorIs(t, err, services.ErrTargetNotVotable)
}

func expectRecompute(m voteServiceMocks, post *models.Post, targetVotes map[string][]*models.ClassificationVote, ratingVotes []*models.RatingVote) {
	m.cacheRepo.EXPECT().DeleteManyByPost(post.ID).Return(nil)
	for _, target := range post.Targets {
		if !target.Votable() {
			continue
		}
		m.cvoteRepo.EXPECT().GetManyByTarget(target.ID).Return(targetVotes[target.ID], nil)
	}
	m.rvoteRepo.EXPECT().GetManyByPost(post.ID).Return(ratingVotes, nil)
	m.window.EXPECT().WindowState(post).Return(models.WindowStateOpen)
	m.cacheRepo.EXPECT().Set(gomock.Any()).Return(nil)
}

func TestSubmitClassificationVote_IdempotentOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	storedVote := &models.ClassificationVote{
		TargetID:       "t1",
		VoterID:        "voter",
		PostID:         "p1",
		Classification: models.ClassificationFire,
		Counted:        true,
	}

	// Submitting the same vote twice: the second write overwrites the
	// first, the aggregate count stays at one.
	for i := 0; i < 2; i++ {
		m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
		m.window.EXPECT().FinalizeIfDue(post).Return(nil)
		m.window.EXPECT().IsOpen(post).Return(true)
		m.eligibility.EXPECT().IsEligible(post, "voter").Return(true)
		m.cvoteRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
		m.chain.EXPECT().Revalidate(post, "voter").Return([]string{}, nil)
		expectRecompute(m, post, map[string][]*models.ClassificationVote{
			"t1": {storedVote},
		}, nil)
	}

	first, err := service.SubmitClassificationVote("t1", "voter", models.ClassificationFire)
	assert.NoError(t, err)

	second, err := service.SubmitClassificationVote("t1", "voter", models.ClassificationFire)
	assert.NoError(t, err)

	assert.Equal(t, 1, first.Consensus.TotalVotes)
	assert.Equal(t, 1, second.Consensus.TotalVotes)
	assert.Equal(t, first.Consensus, second.Consensus)
}

func TestSubmitClassificationVote_IneligibleStaysPersonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()

	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(true)
	m.eligibility.EXPECT().IsEligible(post, "newbie").Return(false)
	m.cvoteRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(vote *models.ClassificationVote) error {
		assert.False(t, vote.Counted)
		return nil
	})
	m.chain.EXPECT().Revalidate(post, "newbie").Return([]string{}, nil)
	expectRecompute(m, post, map[string][]*models.ClassificationVote{
		"t1": {{
			TargetID:       "t1",
			VoterID:        "newbie",
			Classification: models.ClassificationFire,
			Counted:        false,
		}},
	}, nil)

	result, err := service.SubmitClassificationVote("t1", "newbie", models.ClassificationFire)
	assert.NoError(t, err)
	assert.False(t, result.Counted)
	assert.Equal(t, 0, result.Consensus.TotalVotes)
	assert.Nil(t, result.Consensus.Classification)
}

func TestSubmitClassificationVote_ReturnsInvalidatedTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()

	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(true)
	m.eligibility.EXPECT().IsEligible(post, "voter").Return(true)
	m.cvoteRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	m.chain.EXPECT().Revalidate(post, "voter").Return([]string{"t2"}, nil)
	expectRecompute(m, post, nil, nil)

	result, err := service.SubmitClassificationVote("t1", "voter", models.ClassificationFire)
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2"}, result.InvalidatedTargetIDs)
}

func TestSubmitRatingVote_ClampsOutOfRangeInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()

	m.postRepo.EXPECT().GetOne("p1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(true)
	m.eligibility.EXPECT().IsEligible(post, "voter").Return(true)
	m.rvoteRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(vote *models.RatingVote) error {
		assert.Equal(t, 3000, vote.Rating)
		return nil
	})
	expectRecompute(m, post, nil, []*models.RatingVote{
		{PostID: "p1", VoterID: "voter", Rating: 3000, Counted: true},
	})
	m.effects.EXPECT().ApplyDisplay(post, models.RatingConsensus{Rating: 3000, VoteCount: 1}, false)
	m.effects.EXPECT().GrantOwnerBadgeIfEarned(post, models.RatingConsensus{Rating: 3000, VoteCount: 1})
	m.effects.EXPECT().DisplayLabel(models.RatingConsensus{Rating: 3000, VoteCount: 1}).Return("??? Elo")

	result, err := service.SubmitRatingVote("p1", "voter", 999999)
	assert.NoError(t, err)
	assert.True(t, result.Counted)
	assert.Equal(t, 3000, result.Consensus.Rating)
	assert.Equal(t, "??? Elo", result.DisplayLabel)
}

func TestSubmitRatingVote_CreatorRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	m.postRepo.EXPECT().GetOne("p1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().IsOpen(post).Return(true)

	_, err := service.SubmitRatingVote("p1", "author", 1500)
	assert.ErrorIs(t, err, services.ErrCreatorVote)
}

func TestGetInitState_ServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()

	classification := models.ClassificationSmooth
	payload := map[string]any{
		"per_target_consensus": map[string]models.ConsensusResult{
			"t1": {TargetID: "t1", Classification: &classification, TotalVotes: 5},
		},
		"rating_consensus": models.RatingConsensus{Rating: 1400, VoteCount: 6},
	}
	encoded, err := json.Marshal(payload)
	assert.NoError(t, err)

	m.postRepo.EXPECT().GetOne("p1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().WindowState(post).Return(models.WindowStateOpen)
	m.cacheRepo.EXPECT().Get("p1", models.WindowStateOpen).Return(&models.ConsensusCacheEntry{
		PostID:      "p1",
		WindowState: models.WindowStateOpen,
		Payload:     encoded,
		ExpiresAt:   time.Now().Add(5 * time.Second),
	}, nil)
	m.cvoteRepo.EXPECT().GetManyByPostAndVoter("p1", "voter").Return([]*models.ClassificationVote{
		{TargetID: "t1", VoterID: "voter", Classification: models.ClassificationSmooth, Counted: false},
	}, nil)
	m.rvoteRepo.EXPECT().GetOne("p1", "voter").Return(&models.RatingVote{
		PostID: "p1", VoterID: "voter", Rating: 1300, Counted: true,
	}, nil)
	m.effects.EXPECT().DisplayLabel(models.RatingConsensus{Rating: 1400, VoteCount: 6}).Return("1400 Elo")
	m.window.EXPECT().IsOpen(post).Return(true)

	state, err := service.GetInitState("p1", "voter")
	assert.NoError(t, err)
	assert.Equal(t, 1400, state.RatingConsensus.Rating)
	assert.Equal(t, "1400 Elo", state.DisplayLabel)
	assert.True(t, state.WindowOpen)

	// Personal view surfaces the voter's own vote even though it was never
	// counted.
	assert.Equal(t, models.ClassificationSmooth, state.VoterOwnVotes["t1"])
	assert.NotNil(t, state.VoterOwnRating)
	assert.Equal(t, 1300, *state.VoterOwnRating)
}

func TestGetInitState_CorruptCacheEntryRecomputed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()

	m.postRepo.EXPECT().GetOne("p1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().WindowState(post).Return(models.WindowStateOpen).Times(2)
	m.cacheRepo.EXPECT().Get("p1", models.WindowStateOpen).Return(&models.ConsensusCacheEntry{
		PostID:      "p1",
		WindowState: models.WindowStateOpen,
		Payload:     []byte("not json"),
		ExpiresAt:   time.Now().Add(5 * time.Second),
	}, nil)
	m.cvoteRepo.EXPECT().GetManyByTarget("t1").Return(nil, nil)
	m.cvoteRepo.EXPECT().GetManyByTarget("t2").Return(nil, nil)
	m.rvoteRepo.EXPECT().GetManyByPost("p1").Return([]*models.RatingVote{
		{PostID: "p1", VoterID: "other", Rating: 1500, Counted: true},
	}, nil)
	m.cacheRepo.EXPECT().Set(gomock.Any()).Return(nil)
	m.cvoteRepo.EXPECT().GetManyByPostAndVoter("p1", "voter").Return(nil, nil)
	m.rvoteRepo.EXPECT().GetOne("p1", "voter").Return(nil, nil)
	m.effects.EXPECT().DisplayLabel(models.RatingConsensus{Rating: 1500, VoteCount: 1}).Return("??? Elo")
	m.window.EXPECT().IsOpen(post).Return(true)

	state, err := service.GetInitState("p1", "voter")
	assert.NoError(t, err)
	assert.Equal(t, 1500, state.RatingConsensus.Rating)
}

func TestGetInitState_PresetSurfacedAsConsensus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	post.Mode = models.PostModePreset
	post.Targets[0].Preset = models.ClassificationCringe
	post.Targets[1].Preset = models.ClassificationFire

	m.postRepo.EXPECT().GetOne("p1").Return(post, nil)
	m.window.EXPECT().FinalizeIfDue(post).Return(nil)
	m.window.EXPECT().WindowState(post).Return(models.WindowStateOpen).Times(2)
	m.cacheRepo.EXPECT().Get("p1", models.WindowStateOpen).Return(nil, nil)
	m.rvoteRepo.EXPECT().GetManyByPost("p1").Return(nil, nil)
	m.cacheRepo.EXPECT().Set(gomock.Any()).Return(nil)
	m.cvoteRepo.EXPECT().GetManyByPostAndVoter("p1", "voter").Return(nil, nil)
	m.rvoteRepo.EXPECT().GetOne("p1", "voter").Return(nil, nil)
	m.effects.EXPECT().DisplayLabel(models.RatingConsensus{}).Return("??? Elo")
	m.window.EXPECT().IsOpen(post).Return(true)

	state, err := service.GetInitState("p1", "voter")
	assert.NoError(t, err)
	assert.NotNil(t, state.PerTargetConsensus["t1"].Classification)
	assert.Equal(t, models.ClassificationCringe, *state.PerTargetConsensus["t1"].Classification)
	assert.Equal(t, "Cringe", state.PerTargetConsensus["t1"].DisplayName)
	assert.Nil(t, state.VoterOwnRating)
}

func TestRemoveTarget_RequiresModerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.identity.EXPECT().IsModerator("rando", "chatratings").Return(false)

	err := service.RemoveTarget("t1", "rando")
	assert.ErrorIs(t, err, services.ErrNotModerator)
}

func TestRemoveTarget_PurgesVotesAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVoteService(ctrl)

	post := votablePost()
	m.postRepo.EXPECT().GetOneByTarget("t1").Return(post, nil)
	m.identity.EXPECT().IsModerator("mod", "chatratings").Return(true)
	m.cvoteRepo.EXPECT().DeleteManyByTarget("t1").Return(nil)
	m.postRepo.EXPECT().DeleteTarget(post.Targets[0]).Return(nil)
	m.cacheRepo.EXPECT().DeleteManyByPost("p1").Return(nil)
	m.notifier.EXPECT().NotifyVotesPurged(post, "t1", "mod")

	assert.NoError(t, service.RemoveTarget("t1", "mod"))
}
