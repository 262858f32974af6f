package config

import (
	"time"

	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // No authentication required (default)
	AuthModeLocal AuthMode = "local" // Local user database with sessions
)

type (
	Config struct {
		HTTP
		Global
		Database
		Store
		Schedule
		GenAI
		Scripture
		Tasks
		Pregenerate
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	// Store configures the local key/value store. A zero capacity disables
	// the quota ceiling.
	Store struct {
		CapacityBytes int64
	}
	Schedule struct {
		AnchorOffsetDays int
	}
	GenAI struct {
		APIKey     string
		BaseURL    string
		ChatModel  string
		ImageModel string
	}
	Scripture struct {
		BaseURL string
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	// Pregenerate schedules the daily cache warm-up for both languages.
	Pregenerate struct {
		Enabled  bool
		Schedule string // Cron format: "10 0 * * *" = 00:10 daily
	}
	Auth struct {
		Mode            AuthMode
		SessionSecret   string
		SessionLifetime time.Duration
		BcryptCost      int
		SecureCookies   bool // Set to false for local dev without HTTPS
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("store_capacity_bytes", DefaultStoreCapacityBytes)
	v.SetDefault("schedule_anchor_offset_days", DefaultAnchorOffsetDays)

	// Generation defaults
	v.SetDefault("genai_api_key", "")
	v.SetDefault("genai_base_url", "")
	v.SetDefault("genai_chat_model", "gpt-4o-mini")
	v.SetDefault("genai_image_model", "gpt-image-1")

	v.SetDefault("scripture_base_url", DefaultScriptureBaseURL)

	// Pregeneration defaults
	v.SetDefault("pregenerate_enabled", false)
	v.SetDefault("pregenerate_schedule", "10 0 * * *") // Daily at 00:10

	// Auth defaults
	v.SetDefault("auth_mode", "none")
	v.SetDefault("auth_session_secret", "")      // Auto-generated if empty
	v.SetDefault("auth_session_lifetime", "720h")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_secure_cookies", true)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Store: Store{
			CapacityBytes: v.GetInt64("STORE_CAPACITY_BYTES"),
		},
		Schedule: Schedule{
			AnchorOffsetDays: v.GetInt("SCHEDULE_ANCHOR_OFFSET_DAYS"),
		},
		GenAI: GenAI{
			APIKey:     v.GetString("GENAI_API_KEY"),
			BaseURL:    v.GetString("GENAI_BASE_URL"),
			ChatModel:  v.GetString("GENAI_CHAT_MODEL"),
			ImageModel: v.GetString("GENAI_IMAGE_MODEL"),
		},
		Scripture: Scripture{
			BaseURL: v.GetString("SCRIPTURE_BASE_URL"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Pregenerate: Pregenerate{
			Enabled:  v.GetBool("PREGENERATE_ENABLED"),
			Schedule: v.GetString("PREGENERATE_SCHEDULE"),
		},
		Auth: Auth{
			Mode:            AuthMode(v.GetString("AUTH_MODE")),
			SessionSecret:   v.GetString("AUTH_SESSION_SECRET"),
			SessionLifetime: v.GetDuration("AUTH_SESSION_LIFETIME"),
			BcryptCost:      v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies:   v.GetBool("AUTH_SECURE_COOKIES"),
		},
	}
}
