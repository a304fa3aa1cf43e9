package literal

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrAuthentication reports rejected credentials or an expired/rejected session token.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNetwork reports a transport failure before a response was received.
	ErrNetwork = errors.New("network failure")
	// ErrAPI reports a well-formed response carrying an error.
	ErrAPI = errors.New("literal api error")
	// ErrValidation reports missing or malformed local input. No request is sent when it occurs.
	ErrValidation = errors.New("invalid input")
)

// GraphQLError is a single entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message    string `json:"message"`
	Path       []any  `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code,omitempty"`
	} `json:"extensions"`
}

// ResponseError is returned when the API answers with GraphQL errors.
// It always unwraps to ErrAPI, and also to ErrAuthentication when the server rejected the session.
type ResponseError struct {
	Status int
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	messages := lo.Map(e.Errors, func(item GraphQLError, _ int) string {
		return item.Message
	})
	return fmt.Sprintf("http %d: %s", e.Status, strings.Join(messages, "; "))
}

func (e *ResponseError) Unwrap() []error {
	if e.unauthenticated() {
		return []error{ErrAuthentication, ErrAPI}
	}
	return []error{ErrAPI}
}

func (e *ResponseError) unauthenticated() bool {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return true
	}

	return lo.SomeBy(e.Errors, func(item GraphQLError) bool {
		if item.Extensions.Code == "UNAUTHENTICATED" {
			return true
		}

		msg := strings.ToLower(item.Message)
		return strings.Contains(msg, "not authenticated") ||
			strings.Contains(msg, "unauthorized") ||
			strings.Contains(msg, "invalid token")
	})
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
