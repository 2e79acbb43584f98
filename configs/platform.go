package configs

type Platform struct {
	URL   string `env:"PLATFORM_API_URL,notEmpty"`
	Token string `env:"PLATFORM_API_TOKEN"`
}

type Identity struct {
	URL string `env:"IDENTITY_API_URL,notEmpty"`
}
