package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// OpenAI feedback generation (optional)
	OpenAIAPIKey string
	OpenAIModel  string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Retention
	JobTTL    time.Duration
	ResultTTL time.Duration

	// Result delivery (optional)
	WebhookURL    string
	WebhookAPIKey string

	// Section detection tuning
	MinSections     int
	SkillsMinRun    int
	SkillsShortLine int
	SkillsMaxTokens int
	MinOtherChars   int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("CVSIFT_API_KEY"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-4o-mini"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		JobTTL:    envDuration("JOB_TTL", 1*time.Hour),
		ResultTTL: envDuration("RESULT_TTL", 24*time.Hour),

		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookAPIKey: os.Getenv("WEBHOOK_API_KEY"),

		MinSections:     envInt("MIN_SECTIONS", 3),
		SkillsMinRun:    envInt("SKILLS_MIN_RUN", 3),
		SkillsShortLine: envInt("SKILLS_SHORT_LINE", 30),
		SkillsMaxTokens: envInt("SKILLS_MAX_TOKENS", 3),
		MinOtherChars:   envInt("MIN_OTHER_CHARS", 30),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CVSIFT_API_KEY is required")
	}
	if c.WebhookAPIKey != "" && c.WebhookURL == "" {
		return fmt.Errorf("WEBHOOK_API_KEY set without WEBHOOK_URL")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
