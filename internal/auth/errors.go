package auth

import (
	"errors"
	"fmt"
)

// AuthenticationError represents a fatal failure to obtain usable credentials
// for one account role. It aborts the current phase but never touches the
// other role's cached token.
type AuthenticationError struct {
	Role    Role   // The account role being authenticated
	Message string // Human-readable error message
	Cause   error  // Underlying error cause
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed for %s account: %s: %v", e.Role, e.Message, e.Cause)
	}
	return fmt.Sprintf("authentication failed for %s account: %s", e.Role, e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

func newAuthError(role Role, message string, cause error) *AuthenticationError {
	return &AuthenticationError{Role: role, Message: message, Cause: cause}
}

// Sentinel errors for common authentication issues
var (
	// ErrCredentialsFileMissing indicates the OAuth client configuration file is absent
	ErrCredentialsFileMissing = errors.New("credentials file not found")

	// ErrFlowCancelled indicates the interactive authorization flow was cancelled or denied
	ErrFlowCancelled = errors.New("authorization flow cancelled")

	// ErrNoCachedToken indicates no cached token exists for the role
	ErrNoCachedToken = errors.New("no cached token")
)

// IsAuthenticationError checks if an error is an authentication error.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}
