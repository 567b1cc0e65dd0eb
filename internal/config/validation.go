package config

import (
	"fmt"
	"net/url"
)

func (c *Config) Validate() error {
	if err := c.validateYouTube(); err != nil {
		return fmt.Errorf("YouTube config validation failed: %w", err)
	}

	if err := c.validateAuth(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := c.validateTransfer(); err != nil {
		return fmt.Errorf("transfer config validation failed: %w", err)
	}

	return c.validateFiles()
}

func (c *Config) validateYouTube() error {
	if c.YouTube.APIBaseURL == "" {
		return NewConfigurationError("YouTube.APIBaseURL", "API base URL must be configured")
	}

	parsed, err := url.Parse(c.YouTube.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return NewConfigurationError("YouTube.APIBaseURL", "API base URL must be an absolute URL")
	}

	// The subscriptions endpoint caps maxResults at 50.
	if c.YouTube.PageSize <= 0 || c.YouTube.PageSize > 50 {
		return NewConfigurationError("YouTube.PageSize", "page size must be between 1 and 50")
	}

	if c.YouTube.HTTPTimeout <= 0 {
		return NewConfigurationError("YouTube.HTTPTimeout", "HTTP timeout must be positive")
	}

	return nil
}

func (c *Config) validateAuth() error {
	if c.Auth.CredentialsFile == "" {
		return NewConfigurationError("Auth.CredentialsFile", "client credentials file must be configured")
	}

	if c.Auth.TokenDir == "" {
		return NewConfigurationError("Auth.TokenDir", "token directory must be configured")
	}

	return nil
}

func (c *Config) validateTransfer() error {
	if c.Transfer.RequestDelay < 0 {
		return NewConfigurationError("Transfer.RequestDelay", "inter-request delay cannot be negative")
	}

	if c.Transfer.MaxRetries <= 0 {
		return NewConfigurationError("Transfer.MaxRetries", "max retries must be positive")
	}

	return nil
}

func (c *Config) validateFiles() error {
	if c.Files.BackupFile == "" {
		return NewConfigurationError("Files.BackupFile", "backup file path must be configured")
	}

	if c.Files.LogFile == "" {
		return NewConfigurationError("Files.LogFile", "log file path must be configured")
	}

	return nil
}
