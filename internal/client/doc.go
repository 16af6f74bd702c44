// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime behind the secure-storage command
// line client.
//
// It opens the storage facade over the configured transport (the stores
// in-process, or a daemon over HTTP or gRPC) and runs one command against it.
package client
