package client

import "errors"

var (
	// ErrKeyNotFound is returned by Get when no entry is stored under the key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrSweepUnsupported is returned by Sweep when the client does not own
	// the secret keys (remote transports, keychain backend).
	ErrSweepUnsupported = errors.New("sweep is only available for the local cipher store")
	// ErrUnknownTransport is returned by NewApp for a transport it cannot open.
	ErrUnknownTransport = errors.New("unknown transport")
)
