// Package resilience classifies raw failures into a fixed taxonomy and
// retries transient ones with jittered exponential backoff.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Category is the fixed failure taxonomy shared by every layer above the
// point where a raw error first surfaces.
type Category string

const (
	CategoryNetwork        Category = "network"
	CategoryAuthentication Category = "authentication"
	CategoryAuthorization  Category = "authorization"
	CategoryValidation     Category = "validation"
	CategoryNotFound       Category = "not_found"
	CategoryServer         Category = "server"
	CategoryDatabase       Category = "database"
	CategoryOffline        Category = "offline"
	CategoryUnknown        Category = "unknown"
)

// Retryable reports whether failures of this category may succeed on a
// later attempt.
func (c Category) Retryable() bool {
	switch c {
	case CategoryNetwork, CategoryServer, CategoryDatabase:
		return true
	}
	return false
}

var (
	// ErrOffline is returned by collaborators that refuse to work while the
	// device has no connectivity.
	ErrOffline = errors.New("offline")

	ErrNoRetry = errors.New("operation cannot be retried")
)

// Error is the standardized failure shape. It is built once by Standardize
// and never modified afterwards.
type Error struct {
	Message     string
	Category    Category
	Code        string
	Err         error
	Suggestions []string

	retry func(ctx context.Context) error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CanRetry reports whether Retry re-runs the original operation.
func (e *Error) CanRetry() bool { return e != nil && e.retry != nil }

// Retry re-runs the operation that produced the error, with the same retry
// policy.
func (e *Error) Retry(ctx context.Context) error {
	if !e.CanRetry() {
		return ErrNoRetry
	}
	return e.retry(ctx)
}

func (e *Error) withRetry(fn func(ctx context.Context) error) *Error {
	out := *e
	out.Suggestions = slices.Clone(e.Suggestions)
	out.retry = fn
	return &out
}

// CategoryOf returns the category of a standardized error found in err's
// chain, or CategoryUnknown.
func CategoryOf(err error) Category {
	var stdErr *Error
	if errors.As(err, &stdErr) {
		return stdErr.Category
	}
	return CategoryUnknown
}

type presentation struct {
	message     string
	suggestions []string
}

var presentations = map[Category]presentation{
	CategoryNetwork: {
		message: "Unable to reach the server. Check your internet connection.",
		suggestions: []string{
			"Check your internet connection",
			"Try again in a few moments",
			"Changes you make while offline are saved and synced later",
		},
	},
	CategoryAuthentication: {
		message: "Your session has expired. Please sign in again.",
		suggestions: []string{
			"Sign in again",
			"Clear saved credentials if the problem persists",
		},
	},
	CategoryAuthorization: {
		message: "You do not have permission to perform this action.",
		suggestions: []string{
			"Ask an administrator for access",
			"Confirm you are signed in with the right account",
		},
	},
	CategoryValidation: {
		message: "Some of the information provided is invalid.",
		suggestions: []string{
			"Review the entered values",
			"Make sure the record does not already exist",
		},
	},
	CategoryNotFound: {
		message: "The requested record could not be found.",
		suggestions: []string{
			"Refresh the list; the record may have been deleted",
			"Check the identifier and try again",
		},
	},
	CategoryServer: {
		message: "The server is having trouble right now. Please try again shortly.",
		suggestions: []string{
			"Wait a moment and try again",
			"Contact support if the problem continues",
		},
	},
	CategoryDatabase: {
		message: "A database error occurred while loading or saving data.",
		suggestions: []string{
			"Try again",
			"Contact support if the problem continues",
		},
	},
	CategoryOffline: {
		message: "You are offline. Showing saved data.",
		suggestions: []string{
			"Reconnect to the internet to sync your changes",
			"Changes made now are queued and sent when you are back online",
		},
	},
	CategoryUnknown: {
		message: "An unexpected error occurred.",
		suggestions: []string{
			"Try again",
			"Reload the application",
			"Contact support if the problem continues",
		},
	},
}

// Message returns the user-facing message for a category.
func Message(c Category) string {
	p, ok := presentations[c]
	if !ok {
		p = presentations[CategoryUnknown]
	}
	return p.message
}

// Suggestions returns the ordered remediation hints for a category.
func Suggestions(c Category) []string {
	p, ok := presentations[c]
	if !ok {
		p = presentations[CategoryUnknown]
	}
	return slices.Clone(p.suggestions)
}
