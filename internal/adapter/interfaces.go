// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides remote implementations of [service.ItemStore]
// that reach a running secure-storage daemon.
//
// [HTTPItemStore] talks to the HTTP routes with resty, [GRPCItemStore] to
// the securestorage.v1.SecureStorage gRPC service. Both attach a bearer JWT
// minted from the shared sign key when one is configured, and both rebuild
// the daemon's StorageError from the wire so callers see the same kind,
// code and message as an in-process store would return. Transport failures
// that carry no StorageError surface as UnknownError.
package adapter

import (
	"github.com/MKhiriev/go-secure-storage/internal/service"
)

// ClientName is the subject of the tokens minted by the adapters.
const ClientName = "secure-storage-cli"

var (
	_ service.ItemStore = (*HTTPItemStore)(nil)
	_ service.ItemStore = (*GRPCItemStore)(nil)
)
