// Package workers runs the periodic maintenance jobs of the storage daemon:
// value log garbage collection for badger-backed stores and the orphaned
// secret key sweep.
package workers

import "context"

// Worker is a background job. Start launches it and returns immediately;
// Stop cancels it and blocks until it has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
