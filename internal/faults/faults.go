package faults

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure for HTTP mapping and monitoring.
type Kind int

const (
	// Validation means the caller's input failed a precondition.
	Validation Kind = iota
	// Configuration means the server itself is misconfigured (e.g. missing
	// provider credential). Never exposed with detail to the caller.
	Configuration
	// Upstream means the external provider responded with a non-success
	// status, or could not be reached at all.
	Upstream
	// InvalidUpstreamResponse means the provider returned success but the
	// body was missing an expected field.
	InvalidUpstreamResponse
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case Upstream:
		return "upstream"
	case InvalidUpstreamResponse:
		return "invalid_upstream_response"
	default:
		return "unknown"
	}
}

// Fault is the single error type shared by all conversion pipelines.
type Fault struct {
	Kind    Kind
	Message string

	// UpstreamStatus is the provider's HTTP status. Upstream kind only.
	UpstreamStatus int
	// Unreachable marks network-level failures (connection refused, DNS,
	// timeout) so monitoring can separate "provider said no" from "could
	// not reach provider". Upstream kind only.
	Unreachable bool

	cause error
}

func (f *Fault) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.cause)
	}
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.cause
}

// NewValidation creates a caller-input fault.
func NewValidation(message string) *Fault {
	return &Fault{Kind: Validation, Message: message}
}

// NewConfiguration creates a server-misconfiguration fault.
func NewConfiguration(message string) *Fault {
	return &Fault{Kind: Configuration, Message: message}
}

// NewUpstream creates a fault from a non-success provider response.
func NewUpstream(status int, message string) *Fault {
	return &Fault{Kind: Upstream, UpstreamStatus: status, Message: message}
}

// NewUnreachable creates an upstream fault for a network-level failure.
func NewUnreachable(message string, cause error) *Fault {
	return &Fault{Kind: Upstream, Unreachable: true, Message: message, cause: cause}
}

// NewInvalidUpstream creates a fault for a malformed provider success body.
func NewInvalidUpstream(message string) *Fault {
	return &Fault{Kind: InvalidUpstreamResponse, Message: message}
}

// As extracts a *Fault from an error chain.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind reports whether err is a Fault of the given kind.
func IsKind(err error, kind Kind) bool {
	f, ok := As(err)
	return ok && f.Kind == kind
}

// HTTPStatus maps an error to the status returned to the caller.
// Provider 4xx statuses pass through since they indicate a caller-input
// problem surfaced by the provider; provider 5xx and unreachable providers
// fold to 502. Anything unclassified is a 500.
func HTTPStatus(err error) int {
	f, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch f.Kind {
	case Validation:
		return http.StatusBadRequest
	case Configuration, InvalidUpstreamResponse:
		return http.StatusInternalServerError
	case Upstream:
		if f.UpstreamStatus >= 400 && f.UpstreamStatus < 500 {
			return f.UpstreamStatus
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to serialize to the caller.
// Configuration faults get a generic message; the detail stays in the logs.
func PublicMessage(err error) string {
	f, ok := As(err)
	if !ok {
		return "Internal server error."
	}
	if f.Kind == Configuration {
		return "Server configuration error."
	}
	return f.Message
}
