package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName          string
	LogLevel             slog.Level
	TokenSecret          string
	TokenTTL             time.Duration
	BcryptCost           int
	SeedEnabled          bool
	SeedFile             string
	SummarySchedule      string
	SessionSweepSchedule string
}

// LoadConfig reads the configuration from the environment, falling back to
// defaults for unset variables.
func LoadConfig() (Config, error) {
	ttl, err := time.ParseDuration(getEnv("PORTER_TOKEN_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("PORTER_TOKEN_TTL: %w", err)
	}

	cost, err := strconv.Atoi(getEnv("PORTER_BCRYPT_COST", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("PORTER_BCRYPT_COST: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("PORTER_SEED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("PORTER_SEED: %w", err)
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(getEnv("PORTER_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("PORTER_LOG_LEVEL: %w", err)
	}

	return Config{
		ServiceName:          getEnv("PORTER_SERVICE_NAME", "porter"),
		LogLevel:             level,
		TokenSecret:          getEnv("PORTER_TOKEN_SECRET", "porter-local-secret"),
		TokenTTL:             ttl,
		BcryptCost:           cost,
		SeedEnabled:          seed,
		SeedFile:             getEnv("PORTER_SEED_FILE", ""),
		SummarySchedule:      getEnv("PORTER_SUMMARY_SCHEDULE", "0 0 21 * * *"),
		SessionSweepSchedule: getEnv("PORTER_SESSION_SWEEP_SCHEDULE", "0 */5 * * * *"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
