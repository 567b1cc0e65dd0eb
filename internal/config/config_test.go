package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/auth"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.YouTube.APIBaseURL != "https://www.googleapis.com/youtube/v3" {
		t.Errorf("Unexpected default API base URL: %s", cfg.YouTube.APIBaseURL)
	}
	if cfg.YouTube.PageSize != 50 {
		t.Errorf("Expected default page size 50, got %d", cfg.YouTube.PageSize)
	}
	if cfg.YouTube.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected default HTTP timeout 30s, got %v", cfg.YouTube.HTTPTimeout)
	}
	if cfg.Auth.CredentialsFile != "credentials.json" {
		t.Errorf("Unexpected default credentials file: %s", cfg.Auth.CredentialsFile)
	}
	if cfg.Transfer.RequestDelay != 500*time.Millisecond {
		t.Errorf("Expected default request delay 500ms, got %v", cfg.Transfer.RequestDelay)
	}
	if cfg.Transfer.MaxRetries != 3 {
		t.Errorf("Expected default max retries 3, got %d", cfg.Transfer.MaxRetries)
	}
	if cfg.Files.BackupFile != "subscriptions_backup.json" {
		t.Errorf("Unexpected default backup file: %s", cfg.Files.BackupFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default configuration should validate: %v", err)
	}
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	t.Setenv("YT_API_BASE_URL", "https://youtube.example.test/v3")
	t.Setenv("YT_PAGE_SIZE", "25")
	t.Setenv("YT_HTTP_TIMEOUT", "10s")
	t.Setenv("YT_REQUEST_DELAY", "2s")
	t.Setenv("YT_MAX_RETRIES", "5")
	t.Setenv("YT_BACKUP_FILE", "/tmp/my_backup.json")

	cfg := New()

	if cfg.YouTube.APIBaseURL != "https://youtube.example.test/v3" {
		t.Errorf("API base URL override not applied: %s", cfg.YouTube.APIBaseURL)
	}
	if cfg.YouTube.PageSize != 25 {
		t.Errorf("Page size override not applied: %d", cfg.YouTube.PageSize)
	}
	if cfg.YouTube.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTP timeout override not applied: %v", cfg.YouTube.HTTPTimeout)
	}
	if cfg.Transfer.RequestDelay != 2*time.Second {
		t.Errorf("Request delay override not applied: %v", cfg.Transfer.RequestDelay)
	}
	if cfg.Transfer.MaxRetries != 5 {
		t.Errorf("Max retries override not applied: %d", cfg.Transfer.MaxRetries)
	}
	if cfg.Files.BackupFile != "/tmp/my_backup.json" {
		t.Errorf("Backup file override not applied: %s", cfg.Files.BackupFile)
	}
}

func TestNew_MalformedEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("YT_PAGE_SIZE", "lots")
	t.Setenv("YT_REQUEST_DELAY", "soon")

	cfg := New()

	if cfg.YouTube.PageSize != 50 {
		t.Errorf("Expected default page size for malformed value, got %d", cfg.YouTube.PageSize)
	}
	if cfg.Transfer.RequestDelay != 500*time.Millisecond {
		t.Errorf("Expected default delay for malformed value, got %v", cfg.Transfer.RequestDelay)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "Empty API base URL",
			mutate:    func(c *Config) { c.YouTube.APIBaseURL = "" },
			wantField: "YouTube.APIBaseURL",
		},
		{
			name:      "Relative API base URL",
			mutate:    func(c *Config) { c.YouTube.APIBaseURL = "youtube/v3" },
			wantField: "YouTube.APIBaseURL",
		},
		{
			name:      "Zero page size",
			mutate:    func(c *Config) { c.YouTube.PageSize = 0 },
			wantField: "YouTube.PageSize",
		},
		{
			name:      "Page size above API cap",
			mutate:    func(c *Config) { c.YouTube.PageSize = 51 },
			wantField: "YouTube.PageSize",
		},
		{
			name:      "Non-positive HTTP timeout",
			mutate:    func(c *Config) { c.YouTube.HTTPTimeout = 0 },
			wantField: "YouTube.HTTPTimeout",
		},
		{
			name:      "Empty credentials file",
			mutate:    func(c *Config) { c.Auth.CredentialsFile = "" },
			wantField: "Auth.CredentialsFile",
		},
		{
			name:      "Empty token directory",
			mutate:    func(c *Config) { c.Auth.TokenDir = "" },
			wantField: "Auth.TokenDir",
		},
		{
			name:      "Negative request delay",
			mutate:    func(c *Config) { c.Transfer.RequestDelay = -time.Second },
			wantField: "Transfer.RequestDelay",
		},
		{
			name:      "Zero max retries",
			mutate:    func(c *Config) { c.Transfer.MaxRetries = 0 },
			wantField: "Transfer.MaxRetries",
		},
		{
			name:      "Empty backup file",
			mutate:    func(c *Config) { c.Files.BackupFile = "" },
			wantField: "Files.BackupFile",
		},
		{
			name:      "Empty log file",
			mutate:    func(c *Config) { c.Files.LogFile = "" },
			wantField: "Files.LogFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !IsConfigurationError(err) {
				t.Fatalf("Expected ConfigurationError, got: %v", err)
			}
			if field := GetConfigurationField(err); field != tt.wantField {
				t.Errorf("Expected field %s, got %s", tt.wantField, field)
			}
		})
	}
}

func TestValidate_ZeroDelayAllowed(t *testing.T) {
	cfg := New()
	cfg.Transfer.RequestDelay = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("A zero inter-request delay is valid: %v", err)
	}
}

func TestTokenFile(t *testing.T) {
	cfg := New()
	cfg.Auth.TokenDir = "/var/lib/yt-transfer"

	if got := cfg.TokenFile(auth.RoleSource); got != filepath.Join("/var/lib/yt-transfer", "token_source.json") {
		t.Errorf("Unexpected source token path: %s", got)
	}
	if got := cfg.TokenFile(auth.RoleDestination); got != filepath.Join("/var/lib/yt-transfer", "token_destination.json") {
		t.Errorf("Unexpected destination token path: %s", got)
	}
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("Transfer.MaxRetries", "max retries must be positive")

	if !IsConfigurationError(err) {
		t.Error("Expected IsConfigurationError to be true")
	}
	if IsConfigurationError(errors.New("plain")) {
		t.Error("Plain errors are not configuration errors")
	}
	if got := GetConfigurationField(errors.New("plain")); got != "" {
		t.Errorf("Expected empty field for plain error, got %q", got)
	}
}

func TestPromptString(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		want         string
	}{
		{"Value entered", "custom.json\n", "credentials.json", "custom.json"},
		{"Empty keeps default", "\n", "credentials.json", "credentials.json"},
		{"Whitespace trimmed", "  spaced.json  \n", "credentials.json", "spaced.json"},
		{"EOF keeps default", "", "credentials.json", "credentials.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.PromptString("Credentials file", tt.defaultValue); got != tt.want {
				t.Errorf("PromptString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptBool(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue bool
		want         bool
	}{
		{"Yes", "y\n", false, true},
		{"Full yes", "yes\n", false, true},
		{"No", "n\n", true, false},
		{"Uppercase", "Y\n", false, true},
		{"Empty uses default true", "\n", true, true},
		{"Empty uses default false", "\n", false, false},
		{"Garbage then yes", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.PromptBool("Proceed?", tt.defaultValue); got != tt.want {
				t.Errorf("PromptBool = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Valid choice", "2\n", 2},
		{"Boundary low", "1\n", 1},
		{"Boundary high", "4\n", 4},
		{"Not a number then valid", "abc\n3\n", 3},
		{"Out of range then valid", "9\n1\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.PromptChoice(1, 4)
			if err != nil {
				t.Fatalf("PromptChoice failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("PromptChoice = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPromptChoice_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.PromptChoice(1, 4); err == nil {
		t.Fatal("Expected error when input ends before a valid choice")
	}
}
