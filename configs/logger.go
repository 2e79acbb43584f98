package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"chat_rating_system"`
	URL     string `env:"LOGGER_URL"`
}
