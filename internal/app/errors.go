// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
)

// Kind is one of the four error kinds every storage failure collapses into.
type Kind int

const (
	// KindUnknownError covers anything not classified otherwise.
	KindUnknownError Kind = iota
	// KindMissingKey: empty or absent key argument.
	KindMissingKey
	// KindInvalidData: stored payload fails structural decoding.
	KindInvalidData
	// KindOSError: the secret store or a cryptographic primitive rejected
	// the operation for a platform reason.
	KindOSError
)

// Stable machine-readable codes.
const (
	CodeMissingKey   = "missingKey"
	CodeInvalidData  = "invalidData"
	CodeOSError      = "osError"
	CodeUnknownError = "unknownError"
)

// Code returns the wire code of k.
func (k Kind) Code() string {
	switch k {
	case KindMissingKey:
		return CodeMissingKey
	case KindInvalidData:
		return CodeInvalidData
	case KindOSError:
		return CodeOSError
	default:
		return CodeUnknownError
	}
}

func (k Kind) String() string {
	return k.Code()
}

// KindFromCode is the inverse of Kind.Code. Unrecognized codes map to
// KindUnknownError.
func KindFromCode(code string) Kind {
	switch code {
	case CodeMissingKey:
		return KindMissingKey
	case CodeInvalidData:
		return KindInvalidData
	case CodeOSError:
		return KindOSError
	default:
		return KindUnknownError
	}
}

// StorageError is the only error type that crosses the storage boundary.
//
// Origin names the failure that caused an OS or unknown error and is kept for
// diagnostics; the raw message of that failure is never exposed. The cause
// itself stays reachable through Unwrap for in-process callers.
type StorageError struct {
	Kind    Kind
	Message string
	Origin  string

	cause error
}

// Error implements error.
func (e *StorageError) Error() string {
	return e.Message
}

// Code returns the stable wire code.
func (e *StorageError) Code() string {
	return e.Kind.Code()
}

// Unwrap returns the lower-layer failure, if any.
func (e *StorageError) Unwrap() error {
	return e.cause
}

// Is matches any *StorageError of the same kind, so the package-level
// sentinels below work with errors.Is.
func (e *StorageError) Is(target error) bool {
	t, ok := target.(*StorageError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Origin == "" || t.Origin == e.Origin)
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrMissingKey   = &StorageError{Kind: KindMissingKey, Message: MsgMissingKey}
	ErrInvalidData  = &StorageError{Kind: KindInvalidData, Message: MsgInvalidData}
	ErrOSError      = &StorageError{Kind: KindOSError}
	ErrUnknownError = &StorageError{Kind: KindUnknownError}
)

// NewMissingKey returns a MissingKey error.
func NewMissingKey(cause error) *StorageError {
	return &StorageError{Kind: KindMissingKey, Message: MsgMissingKey, cause: cause}
}

// NewInvalidData returns an InvalidData error.
func NewInvalidData(cause error) *StorageError {
	return &StorageError{Kind: KindInvalidData, Message: MsgInvalidData, cause: cause}
}

// NewOSError returns an OsError attributed to origin.
func NewOSError(origin string, cause error) *StorageError {
	return &StorageError{
		Kind:    KindOSError,
		Message: fmt.Sprintf(MsgOSError, origin),
		Origin:  origin,
		cause:   cause,
	}
}

// NewUnknownError returns an UnknownError attributed to origin.
func NewUnknownError(origin string, cause error) *StorageError {
	return &StorageError{
		Kind:    KindUnknownError,
		Message: fmt.Sprintf(MsgUnknownError, origin),
		Origin:  origin,
		cause:   cause,
	}
}

// FromWire rebuilds a StorageError received from a remote peer. The message
// is kept verbatim; the origin cannot be recovered and stays empty.
func FromWire(code, message string) *StorageError {
	kind := KindFromCode(code)
	if message == "" {
		switch kind {
		case KindMissingKey:
			message = MsgMissingKey
		case KindInvalidData:
			message = MsgInvalidData
		default:
			message = fmt.Sprintf(MsgUnknownError, "remote")
		}
	}
	return &StorageError{Kind: kind, Message: message}
}
