package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrUnsupportedChain   = errors.New("unsupported chain")
	ErrEmptyTransactionID = errors.New("transaction id is empty")
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// UpstreamError is returned when a credential or explorer collaborator
// rejects its input or fails internally.
type UpstreamError struct {
	Chain string
	Op    string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Chain, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError checks if err is (or wraps) an UpstreamError
func IsUpstreamError(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}

// NewUpstreamError wraps err for the given collaborator operation.
// An error that already is an UpstreamError is returned unchanged.
func NewUpstreamError(chain, op string, err error) error {
	if err == nil {
		return nil
	}
	if IsUpstreamError(err) {
		return err
	}
	return &UpstreamError{Chain: chain, Op: op, Err: err}
}
