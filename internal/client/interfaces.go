// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Browser runs the interactive key browser until the user quits.
type Browser interface {
	Browse(ctx context.Context) error
}
