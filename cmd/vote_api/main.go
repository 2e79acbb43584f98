package main

import (
	"chat_rating_system/configs"
	"chat_rating_system/internal/api"
	"chat_rating_system/internal/db"
	"chat_rating_system/internal/db/repositories"
	"chat_rating_system/internal/di"
	"chat_rating_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadVoteAPIConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger = di.NewLogger(config.Logger)
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	postRepository := repositories.NewPostRepository(database)
	classificationVoteRepository := repositories.NewClassificationVoteRepository(database)
	ratingVoteRepository := repositories.NewRatingVoteRepository(database)
	ownerBadgeRepository := repositories.NewOwnerBadgeRepository(database)
	consensusCacheRepository := repositories.NewConsensusCacheRepository(database)

	identityService := services.NewIdentityService(config.Identity.URL)
	platformService := services.NewPlatformService(config.Platform.URL, config.Platform.Token)
	moderatorNotifier := services.NewModeratorNotifier(config.ModeratorBot, logger)
	ratingEffects := services.NewRatingEffectsService(ownerBadgeRepository, platformService, config.Voting, logger)
	windowPolicy := services.NewWindowPolicy(postRepository, ratingVoteRepository, ratingEffects, moderatorNotifier, config.Voting, logger)
	eligibilityService := services.NewEligibilityService(identityService, windowPolicy, config.Voting, logger)
	chainValidator := services.NewChainValidator(classificationVoteRepository, logger)

	voteService := services.NewVoteService(
		postRepository,
		classificationVoteRepository,
		ratingVoteRepository,
		consensusCacheRepository,
		identityService,
		eligibilityService,
		chainValidator,
		windowPolicy,
		ratingEffects,
		moderatorNotifier,
		config.Voting,
		logger,
	)

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, voteService, logger)

	logger.Infow("starting server", "address", config.Server.Address)
	if err := router.Run(config.Server.Address); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
