package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrMissingBodyHash          = errors.New("missing body hash header")
	ErrBodyHashMismatch         = errors.New("body hash mismatch")
	ErrTooManyRequests          = errors.New("too many requests")
)
