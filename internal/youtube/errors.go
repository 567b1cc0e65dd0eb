package youtube

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error reasons documented by the Data API for the calls this tool makes.
const (
	ReasonQuotaExceeded         = "quotaExceeded"
	ReasonRateLimitExceeded     = "rateLimitExceeded"
	ReasonUserRateLimitExceeded = "userRateLimitExceeded"
	ReasonSubscriptionDuplicate = "subscriptionDuplicate"
	ReasonChannelNotFound       = "channelNotFound"
	ReasonSubscriptionForbidden = "subscriptionForbidden"
	ReasonBackendError          = "backendError"
)

// APIError represents a non-2xx answer from the Data API with its decoded
// reason code.
type APIError struct {
	StatusCode int    // HTTP status of the response
	Reason     string // First reason code from the error envelope, if any
	Message    string // Human-readable error message
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("YouTube API error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("YouTube API error %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the error is worth retrying. Quota exhaustion is
// deliberately excluded: retrying it only burns time, the daily budget is gone.
func (e *APIError) Transient() bool {
	switch e.Reason {
	case ReasonQuotaExceeded:
		return false
	case ReasonRateLimitExceeded, ReasonUserRateLimitExceeded, ReasonBackendError:
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ParseError represents a response body that did not match the expected
// schema.
type ParseError struct {
	Endpoint string // The API endpoint whose response failed to parse
	Cause    error  // Underlying decode error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %v", e.Endpoint, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsQuotaExceeded checks whether an error is the daily quota being exhausted.
func IsQuotaExceeded(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Reason == ReasonQuotaExceeded
}

// IsDuplicateSubscription checks whether the API rejected a subscribe call
// because the account already follows the channel.
func IsDuplicateSubscription(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Reason == ReasonSubscriptionDuplicate
}

// IsChannelNotFound checks whether the target channel is gone, private, or
// refuses subscriptions (terminated channels surface as subscriptionForbidden).
func IsChannelNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Reason == ReasonChannelNotFound || apiErr.Reason == ReasonSubscriptionForbidden
}

// newAPIError decodes the Google error envelope from a failed response. A
// body that does not match the envelope still yields a usable APIError with
// the raw status.
func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    resp.Status(),
	}

	var envelope errorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Code != 0 {
		apiErr.Message = envelope.Error.Message
		if len(envelope.Error.Errors) > 0 {
			apiErr.Reason = envelope.Error.Errors[0].Reason
		}
	}

	return apiErr
}
