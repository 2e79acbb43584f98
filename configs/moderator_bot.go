package configs

type ModeratorBot struct {
	Token  string `env:"TELEGRAM_MODERATOR_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_MODERATOR_CHAT_ID"`
}
