// Package config holds the runtime configuration for the subscription
// transfer tool. Values come from environment variables (optionally via a
// .env file) with defaults suited to personal use; nothing is kept in
// package-level state.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/auth"
)

type Config struct {
	YouTube  YouTubeConfig
	Auth     AuthConfig
	Transfer TransferConfig
	Files    FilesConfig
}

type YouTubeConfig struct {
	APIBaseURL  string
	PageSize    int
	HTTPTimeout time.Duration
}

type AuthConfig struct {
	CredentialsFile string
	TokenDir        string
}

type TransferConfig struct {
	RequestDelay time.Duration
	MaxRetries   int
	AssumeYes    bool
}

type FilesConfig struct {
	BackupFile string
	LogFile    string
}

func New() *Config {
	// A missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		YouTube: YouTubeConfig{
			APIBaseURL:  getEnvOrDefault("YT_API_BASE_URL", "https://www.googleapis.com/youtube/v3"),
			PageSize:    getEnvIntOrDefault("YT_PAGE_SIZE", 50),
			HTTPTimeout: getEnvDurationOrDefault("YT_HTTP_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			CredentialsFile: getEnvOrDefault("YT_CREDENTIALS_FILE", "credentials.json"),
			TokenDir:        getEnvOrDefault("YT_TOKEN_DIR", "."),
		},
		Transfer: TransferConfig{
			RequestDelay: getEnvDurationOrDefault("YT_REQUEST_DELAY", 500*time.Millisecond),
			MaxRetries:   getEnvIntOrDefault("YT_MAX_RETRIES", 3),
		},
		Files: FilesConfig{
			BackupFile: getEnvOrDefault("YT_BACKUP_FILE", "subscriptions_backup.json"),
			LogFile:    getEnvOrDefault("YT_LOG_FILE", "youtube_transfer.log"),
		},
	}
}

// TokenFile returns the cached token location for one account role. Each role
// gets its own file so re-authenticating one side never touches the other's
// session.
func (c *Config) TokenFile(role auth.Role) string {
	return filepath.Join(c.Auth.TokenDir, "token_"+string(role)+".json")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
