package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/services"
	mock_services "chat_rating_system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_services.MockVoteService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gin.SetMode(gin.TestMode)

	voteService := mock_services.NewMockVoteService(ctrl)
	router := gin.New()
	SetupRoutes(router, voteService, zap.NewNop().Sugar())

	return router, voteService
}

func TestSubmitClassificationVoteRoute(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().
		SubmitClassificationVote("t1", "voter", models.ClassificationFire).
		Return(&services.ClassificationVoteResult{Counted: true}, nil)

	body := `{"voter_id":"voter","classification":"fire"}`
	req := httptest.NewRequest(http.MethodPost, "/api/targets/t1/votes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"counted":true`)
}

func TestSubmitClassificationVoteRoute_MissingBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/targets/t1/votes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitRatingVoteRoute_ZeroRatingReachesEngine(t *testing.T) {
	router, voteService := newTestRouter(t)

	// 0 is below the rating floor; it must bind and flow to the engine's
	// clamp instead of failing field validation.
	voteService.EXPECT().
		SubmitRatingVote("p1", "voter", 0).
		Return(&services.RatingVoteResult{
			Consensus: models.RatingConsensus{Rating: 100, VoteCount: 1},
			Counted:   true,
		}, nil)

	body := `{"voter_id":"voter","rating":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rating":100`)
}

func TestSubmitRatingVoteRoute_MissingRating(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/ratings", strings.NewReader(`{"voter_id":"voter"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitRatingVoteRoute_WindowClosed(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().
		SubmitRatingVote("p1", "voter", 1500).
		Return(nil, services.ErrWindowClosed)

	body := `{"voter_id":"voter","rating":1500}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetInitStateRoute(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().
		GetInitState("p1", "voter").
		Return(&services.InitState{WindowOpen: true, DisplayLabel: "??? Elo"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/p1/state?voter=voter", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"window_open":true`)
}

func TestGetInitStateRoute_NotFound(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().GetInitState("missing", "").Return(nil, services.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/missing/state", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRemoveTargetRoute_Forbidden(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().RemoveTarget("t1", "rando").Return(services.ErrNotModerator)

	req := httptest.NewRequest(http.MethodDelete, "/api/targets/t1", strings.NewReader(`{"actor_id":"rando"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRemoveTargetRoute(t *testing.T) {
	router, voteService := newTestRouter(t)

	voteService.EXPECT().RemoveTarget("t1", "mod").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/targets/t1", strings.NewReader(`{"actor_id":"mod"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
