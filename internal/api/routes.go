package api

import (
	"chat_rating_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(router *gin.Engine, voteService services.VoteService, logger *zap.SugaredLogger) {
	h := &handler{
		voteService: voteService,
		logger:      logger,
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/targets/:id/votes", h.SubmitClassificationVote)
		apiGroup.POST("/posts/:id/ratings", h.SubmitRatingVote)
		apiGroup.GET("/posts/:id/state", h.GetInitState)
		apiGroup.DELETE("/targets/:id", h.RemoveTarget)
	}
}
