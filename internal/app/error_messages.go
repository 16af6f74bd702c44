// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy shared by every layer of the
// secure storage: the four error kinds, their stable wire codes and the
// human-readable messages returned to callers.
//
// All Msg* constants are written into RPC error payloads. Keeping them in one
// place ensures consistent wording across transports.
package app

const (
	// MsgMissingKey is returned when a call carries an empty key.
	MsgMissingKey = "Empty key or missing key param"

	// MsgInvalidData is returned when a stored payload or a request body
	// fails structural decoding.
	MsgInvalidData = "The data in the store is in an invalid format"

	// MsgOSError is the format of OS-level failures; the verb receives the
	// name of the originating failure.
	MsgOSError = "An OS error occurred (%s)"

	// MsgUnknownError is the format of unclassified failures; the verb
	// receives the name of the originating failure.
	MsgUnknownError = "An unknown error occurred: %s"
)
