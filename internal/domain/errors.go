package domain

import (
	"errors"
	"fmt"
)

// Error kinds of the aggregation phase. Every one of them is terminal.
var (
	ErrInvalidRequestType   = errors.New("invalid request type")
	ErrNetwork              = errors.New("network error")
	ErrDeserialization      = errors.New("deserialization error")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrRateLimited          = errors.New("rate limited")
	ErrUnclassifiedUpstream = errors.New("unclassified upstream error")
)

// FetchError reports why a page request failed.
type FetchError struct {
	Kind error
	// Page is the 1-based page number being requested.
	Page int
	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("page %d: %v", e.Page, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Describe returns the one-line message shown to the user for err.
func Describe(err error) string {
	var fe *FetchError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRequestType):
		return "The request type is not valid. Choose either 'org' or 'user'."
	case errors.Is(err, ErrProfileNotFound):
		return "This profile was not found."
	case errors.Is(err, ErrRateLimited):
		return "The API request limit has been exceeded. Please wait for 60 minutes."
	case errors.Is(err, ErrDeserialization):
		return fmt.Sprintf("Error deserializing JSON: %v", cause(err))
	case errors.Is(err, ErrNetwork):
		return fmt.Sprintf("Could not reach the GitHub API: %v", cause(err))
	case errors.Is(err, ErrUnclassifiedUpstream) && errors.As(err, &fe):
		return fmt.Sprintf("The GitHub API returned an unexpected status: %d.", fe.StatusCode)
	}
	return fmt.Sprintf("Application error: %v", err)
}

func cause(err error) error {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Err
	}
	return err
}
