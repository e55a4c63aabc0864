package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Daily.validate(); err != nil {
		return fmt.Errorf("daily: %w", err)
	}

	return nil
}

func (q QuizConfig) validate() error {
	if q.OptionCount < 2 || q.OptionCount > 10 {
		return fmt.Errorf("option_count must be between 2 and 10 (got %d)", q.OptionCount)
	}
	if q.SimilarityMaxDistance < 1 {
		return fmt.Errorf("similarity_max_distance must be >= 1 (got %d)", q.SimilarityMaxDistance)
	}
	return nil
}

func (d DailyConfig) validate() error {
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", d.Timezone, err)
	}
	if d.MasteredThreshold < 1 {
		return fmt.Errorf("mastered_threshold must be >= 1 (got %d)", d.MasteredThreshold)
	}
	return nil
}
