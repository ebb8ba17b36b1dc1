package errors

import (
	"errors"
	"fmt"
)

// Kind classifies provider errors so callers can map them to HTTP statuses
// or host-platform failure types without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindServerUnavailable covers network-level failures talking to HP ALM
	// (connection refused, timeout, DNS).
	KindServerUnavailable
	// KindInvalidCredentials is returned for HTTP 401 from HP ALM.
	KindInvalidCredentials
	// KindNotFound is returned for HTTP 404 from HP ALM.
	KindNotFound
	// KindBadRequest is returned for HTTP 400 from HP ALM, carrying the
	// response payload.
	KindBadRequest
	// KindUpstream covers any other non-200 HP ALM response.
	KindUpstream
	// KindParse is returned when a response body cannot be decoded.
	KindParse
	// KindValidation covers malformed caller input (missing project field,
	// malformed composite id).
	KindValidation
	// KindResourceNotFound covers missing stored resources (settings,
	// connection profiles).
	KindResourceNotFound
)

// ProviderError is the single error type surfaced by the ALM client, the
// store and the provider service.
type ProviderError struct {
	kind Kind
	msg  string
	err  error
}

func (e *ProviderError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ProviderError) Unwrap() error {
	return e.err
}

func (e *ProviderError) Kind() Kind {
	return e.kind
}

func NewServerUnavailableError(err error) error {
	return &ProviderError{kind: KindServerUnavailable, msg: "HP ALM server not available", err: err}
}

func NewInvalidCredentialsError() error {
	return &ProviderError{kind: KindInvalidCredentials, msg: "invalid credentials provided"}
}

func NewNotFoundError() error {
	return &ProviderError{kind: KindNotFound, msg: "HP ALM: request URL not found"}
}

func NewBadRequestError(payload string) error {
	return &ProviderError{kind: KindBadRequest, msg: fmt.Sprintf("HP ALM: bad request. %s", payload)}
}

func NewUpstreamError(statusCode int, status string, payload string) error {
	return &ProviderError{
		kind: KindUpstream,
		msg:  fmt.Sprintf("request not successful: %d %s. Reason: %s", statusCode, status, payload),
	}
}

func NewParseError(err error) error {
	return &ProviderError{kind: KindParse, msg: "failed to parse HP ALM response", err: err}
}

func NewValidationError(format string, args ...any) error {
	return &ProviderError{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func NewSettingsNotFoundError() error {
	return &ProviderError{kind: KindResourceNotFound, msg: "provider settings not found"}
}

func NewConnectionNotFoundError(id string) error {
	return &ProviderError{kind: KindResourceNotFound, msg: fmt.Sprintf("connection profile %q not found", id)}
}

// KindOf returns the kind of err, or KindUnknown when err is not a
// ProviderError.
func KindOf(err error) Kind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind()
	}
	return KindUnknown
}

func IsServerUnavailableError(err error) bool { return KindOf(err) == KindServerUnavailable }

func IsInvalidCredentialsError(err error) bool { return KindOf(err) == KindInvalidCredentials }

func IsNotFoundError(err error) bool { return KindOf(err) == KindNotFound }

func IsBadRequestError(err error) bool { return KindOf(err) == KindBadRequest }

func IsUpstreamError(err error) bool { return KindOf(err) == KindUpstream }

func IsParseError(err error) bool { return KindOf(err) == KindParse }

func IsValidationError(err error) bool { return KindOf(err) == KindValidation }

func IsResourceNotFoundError(err error) bool { return KindOf(err) == KindResourceNotFound }
