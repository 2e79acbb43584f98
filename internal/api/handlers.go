package api

import (
	"errors"
	"net/http"

	"chat_rating_system/internal/db/models"
	"chat_rating_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handler struct {
	voteService services.VoteService
	logger      *zap.SugaredLogger
}

type classificationVoteInput struct {
	VoterID        string `json:"voter_id" binding:"required"`
	Classification string `json:"classification" binding:"required"`
}

// Rating is a pointer so an explicit 0 binds: out-of-range values are clamped
// by the engine, never rejected here.
type ratingVoteInput struct {
	VoterID string `json:"voter_id" binding:"required"`
	Rating  *int   `json:"rating" binding:"required"`
}

type removeTargetInput struct {
	ActorID string `json:"actor_id" binding:"required"`
}

func (h *handler) SubmitClassificationVote(c *gin.Context) {
	var input classificationVoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.voteService.SubmitClassificationVote(c.Param("id"), input.VoterID, models.Classification(input.Classification))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) SubmitRatingVote(c *gin.Context) {
	var input ratingVoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.voteService.SubmitRatingVote(c.Param("id"), input.VoterID, *input.Rating)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetInitState(c *gin.Context) {
	state, err := h.voteService.GetInitState(c.Param("id"), c.Query("voter"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *handler) RemoveTarget(c *gin.Context) {
	var input removeTargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.voteService.RemoveTarget(c.Param("id"), input.ActorID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCreatorVote), errors.Is(err, services.ErrNotModerator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrWindowClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidClassification), errors.Is(err, services.ErrTargetNotVotable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Errorw("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
