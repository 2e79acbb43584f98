package services

import (
	"fmt"

	"chat_rating_system/configs"
	"chat_rating_system/internal"
	"chat_rating_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ModeratorNotifier posts operational events to the moderator chat. All
// methods are best-effort; a missing bot token disables the notifier.
type ModeratorNotifier interface {
	NotifyFinalized(post *models.Post, consensus models.RatingConsensus)
	NotifyVotesPurged(post *models.Post, targetID, actorID string)
}

type moderatorNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.SugaredLogger
}

func NewModeratorNotifier(config configs.ModeratorBot, logger *zap.SugaredLogger) ModeratorNotifier {
	if config.Token == "" {
		return &moderatorNotifier{logger: logger}
	}

	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		logger.Errorw("failed to create moderator bot", "error", err)
		return &moderatorNotifier{logger: logger}
	}

	return &moderatorNotifier{
		bot:    bot,
		chatID: config.ChatID,
		logger: logger,
	}
}

func (n *moderatorNotifier) NotifyFinalized(post *models.Post, consensus models.RatingConsensus) {
	text := fmt.Sprintf(
		"Voting closed for post %s (created %s): final rating %d from %d votes.",
		post.ID,
		internal.Format(post.CreatedAt),
		consensus.Rating,
		consensus.VoteCount,
	)
	n.send(text)
}

func (n *moderatorNotifier) NotifyVotesPurged(post *models.Post, targetID, actorID string) {
	text := fmt.Sprintf("Votes for badge %s on post %s were purged by %s.", targetID, post.ID, actorID)
	n.send(text)
}

func (n *moderatorNotifier) send(text string) {
	if n.bot == nil {
		return
	}

	message := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(message); err != nil {
		n.logger.Errorw("failed to send moderator notification", "error", err)
	}
}
