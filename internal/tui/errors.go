// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-secure-storage/internal/app"
)

// humanizeError turns storage and transport failures into one status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var storageErr *app.StorageError
	if errors.As(err, &storageErr) {
		if storageErr.Kind == app.KindUnknownError && isUnavailable(storageErr.Unwrap()) {
			return "Storage server is unavailable"
		}
		return storageErr.Message
	}

	if isUnavailable(err) {
		return "Storage server is unavailable"
	}
	return err.Error()
}

func isUnavailable(err error) bool {
	if err == nil {
		return false
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
