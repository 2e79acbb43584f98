package main

import (
	"time"

	"chat_rating_system/configs"
	"chat_rating_system/internal/db"
	"chat_rating_system/internal/db/repositories"
	"chat_rating_system/internal/di"
	"chat_rating_system/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// The engine finalizes posts lazily on the next request after the window
// closes. This sweeper catches posts nobody reads anymore, so their final
// flair still lands; both paths share the same marker-guarded policy.
func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadFinalizationServiceConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("failed to load config", "error", err)
	}

	logger := di.NewLogger(config.Logger)
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	postRepository := repositories.NewPostRepository(database)
	ratingVoteRepository := repositories.NewRatingVoteRepository(database)
	ownerBadgeRepository := repositories.NewOwnerBadgeRepository(database)

	platformService := services.NewPlatformService(config.Platform.URL, config.Platform.Token)
	moderatorNotifier := services.NewModeratorNotifier(config.ModeratorBot, logger)
	ratingEffects := services.NewRatingEffectsService(ownerBadgeRepository, platformService, config.Voting, logger)
	windowPolicy := services.NewWindowPolicy(postRepository, ratingVoteRepository, ratingEffects, moderatorNotifier, config.Voting, logger)

	_, err = s.Every(1).Minute().Do(func() {
		sweep(postRepository, windowPolicy, config.Voting.WindowDuration, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule sweep", "error", err)
	}

	s.StartBlocking()
}

func sweep(
	postRepository repositories.PostRepository,
	windowPolicy services.WindowPolicy,
	windowDuration time.Duration,
	logger *zap.SugaredLogger,
) {
	cutoff := time.Now().Add(-windowDuration)

	posts, err := postRepository.GetManyUnfinalized(cutoff)
	if err != nil {
		logger.Errorw("failed to get unfinalized posts", "error", err)
		return
	}

	if len(posts) == 0 {
		return
	}

	for _, post := range posts {
		if err := windowPolicy.FinalizeIfDue(post); err != nil {
			logger.Errorw("failed to finalize post", "post", post.ID, "error", err)
		}
	}

	logger.Infow("sweep finished", "posts", len(posts))
}
