package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	StaticDir          string
	HistoryWorkerCount int
	HistoryQueueSize   int
	Tuning             srs.Tuning
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	tuning := srs.DefaultTuning()
	tuning.MinEaseFactor = envFloatOr("MIN_EASE_FACTOR", tuning.MinEaseFactor)
	tuning.DefaultEaseFactor = envFloatOr("DEFAULT_EASE_FACTOR", tuning.DefaultEaseFactor)
	tuning.EasyBonus = envFloatOr("EASY_BONUS", tuning.EasyBonus)
	tuning.MaxIntervalDays = envIntOr("MAX_INTERVAL_DAYS", tuning.MaxIntervalDays)

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:quizzer.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		StaticDir:          envOr("STATIC_DIR", "frontend"),
		HistoryWorkerCount: envIntOr("HISTORY_WORKER_COUNT", 1),
		HistoryQueueSize:   envIntOr("HISTORY_QUEUE_SIZE", 64),
		Tuning:             tuning,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
