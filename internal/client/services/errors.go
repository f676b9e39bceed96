package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/validation"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidSession       = errors.New("invalid session returned by server")
	ErrRegistrationRejected = errors.New("registration rejected")
	// ErrRemoveUnsupported is returned for customer removal: the backend
	// exposes no delete endpoint.
	ErrRemoveUnsupported = errors.New("removing customers is not supported by the server")
)

// Messages shown for the generic error classes.
const (
	MsgSessionExpired = "session expired"
	MsgUnexpected     = "unexpected error"
	MsgUnavailable    = "cannot reach server"
)

// RejectedError carries the server's explanation of a refused registration.
type RejectedError struct {
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "registration rejected: status " + e.Status
	}
	return "registration rejected: " + e.Message
}

func (e *RejectedError) Unwrap() error { return ErrRegistrationRejected }

// UserMessage renders err for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fe.Field + ": " + fe.Message
		}
		return strings.Join(parts, "\n")
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		if rejected.Message != "" {
			return rejected.Message
		}
		return MsgUnexpected
	}

	var apiErr *client.APIError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return "invalid username or password"
	case errors.Is(err, client.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, ErrRemoveUnsupported):
		return ErrRemoveUnsupported.Error()
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return MsgUnexpected
}
