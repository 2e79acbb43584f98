package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type VoteAPIConfig struct {
	App          App
	Server       Server
	DB           DB
	Logger       Logger
	Voting       Voting
	Platform     Platform
	Identity     Identity
	ModeratorBot ModeratorBot
}

func LoadVoteAPIConfig() (VoteAPIConfig, error) {
	var config VoteAPIConfig

	if err := env.Parse(&config); err != nil {
		return VoteAPIConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Voting.Validate(); err != nil {
		return VoteAPIConfig{}, fmt.Errorf("invalid voting config: %w", err)
	}

	return config, nil
}

type FinalizationServiceConfig struct {
	App          App
	DB           DB
	Logger       Logger
	Voting       Voting
	Platform     Platform
	ModeratorBot ModeratorBot
}

func LoadFinalizationServiceConfig() (FinalizationServiceConfig, error) {
	var config FinalizationServiceConfig

	if err := env.Parse(&config); err != nil {
		return FinalizationServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Voting.Validate(); err != nil {
		return FinalizationServiceConfig{}, fmt.Errorf("invalid voting config: %w", err)
	}

	return config, nil
}
