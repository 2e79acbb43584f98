package configs

import (
	"errors"
	"time"
)

type Voting struct {
	WindowDuration       time.Duration `env:"VOTING_WINDOW_DURATION" envDefault:"48h"`
	ClassificationQuorum int           `env:"CLASSIFICATION_QUORUM" envDefault:"3"`
	FlairMinVotes        int           `env:"FLAIR_MIN_VOTES" envDefault:"3"`
	VisibleMinVotes      int           `env:"VISIBLE_MIN_VOTES" envDefault:"5"`
	BadgeMinVotes        int           `env:"BADGE_MIN_VOTES" envDefault:"10"`
	RatingMin            int           `env:"RATING_MIN" envDefault:"100"`
	RatingMax            int           `env:"RATING_MAX" envDefault:"3000"`
	MinAccountAge        time.Duration `env:"MIN_ACCOUNT_AGE" envDefault:"720h"`
	MinKarma             int           `env:"MIN_KARMA" envDefault:"100"`
	CacheTTL             time.Duration `env:"CONSENSUS_CACHE_TTL" envDefault:"5s"`
}

// Validate rejects threshold combinations that would let the engine grant an
// owner badge while the rating is still masked, or show a number without any
// flair at all.
func (c Voting) Validate() error {
	if c.ClassificationQuorum < 1 {
		return errors.New("classification quorum must be at least 1")
	}
	if c.FlairMinVotes > c.VisibleMinVotes {
		return errors.New("flair threshold must not exceed visible threshold")
	}
	if c.VisibleMinVotes > c.BadgeMinVotes {
		return errors.New("visible threshold must not exceed badge threshold")
	}
	if c.RatingMin >= c.RatingMax {
		return errors.New("rating min must be below rating max")
	}
	if c.WindowDuration <= 0 {
		return errors.New("voting window duration must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("consensus cache ttl must be positive")
	}
	return nil
}
