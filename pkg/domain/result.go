package domain

import (
	"context"
	"errors"

	"summit/pkg/serrors"
)

const (
	// NetworkFailureMessage is shown when the exchange produced no usable body.
	NetworkFailureMessage = "Failed to get a response from the server."
	// ParseFailureMessage is shown when a body arrived but could not be decoded.
	ParseFailureMessage = "Failed to parse response from server."
)

// Failure describes why a fetch did not produce a Profile. Kind is either
// serrors.ErrNetwork or serrors.ErrParse.
type Failure struct {
	Kind    serrors.Kind
	Message string
	// Cause is the underlying error, kept for logs and errors.Is checks. It is
	// never shown to end users.
	Cause error
}

// FetchResult is the outcome of one fetch-and-parse operation: exactly one of
// a Profile or a Failure. The zero value is not a valid result.
type FetchResult struct {
	profile *Profile
	failure *Failure
}

// Success wraps a decoded profile.
func Success(p Profile) FetchResult {
	return FetchResult{profile: &p}
}

// Fail builds a failed result of the given kind.
func Fail(kind serrors.Kind, message string, cause error) FetchResult {
	return FetchResult{failure: &Failure{Kind: kind, Message: message, Cause: cause}}
}

// NetworkFailure is a Fail shorthand using ErrNetwork and NetworkFailureMessage.
func NetworkFailure(cause error) FetchResult {
	return Fail(serrors.ErrNetwork, NetworkFailureMessage, cause)
}

// ParseFailure is a Fail shorthand using ErrParse and ParseFailureMessage.
func ParseFailure(cause error) FetchResult {
	return Fail(serrors.ErrParse, ParseFailureMessage, cause)
}

// OK reports whether the result holds a Profile.
func (r FetchResult) OK() bool { return r.profile != nil }

// Profile returns the decoded profile and true on success.
func (r FetchResult) Profile() (Profile, bool) {
	if r.profile == nil {
		return Profile{}, false
	}

	return *r.profile, true
}

// Failure returns the failure and true when the fetch did not succeed.
func (r FetchResult) Failure() (Failure, bool) {
	if r.failure == nil {
		return Failure{}, false
	}

	return *r.failure, true
}

// Kind returns the failure kind, or nil on success.
func (r FetchResult) Kind() serrors.Kind {
	if r.failure == nil {
		return nil
	}

	return r.failure.Kind
}

// Err returns nil on success, otherwise an *serrors.Error matching the
// failure kind and its cause.
func (r FetchResult) Err() error {
	if r.failure == nil {
		return nil
	}
	if r.failure.Cause == nil {
		return serrors.With(r.failure.Kind, "%s", r.failure.Message)
	}

	return serrors.Wrap(r.failure.Kind, r.failure.Cause, "%s", r.failure.Message)
}

// Canceled reports whether the failure was caused by the caller canceling the
// fetch, as opposed to the exchange itself failing.
func (r FetchResult) Canceled() bool {
	return r.failure != nil && errors.Is(r.failure.Cause, context.Canceled)
}
