// Package keychain stores entries directly in the OS keychain as generic
// password items.
//
// Items are stored with:
//   - Service: the configured service name (shared by all entries)
//   - Account: the namespaced key
//   - Label: "<service>: <key>" (for Keychain Access.app visibility)
//
// Synchronizable and accessibility attributes come from the caller. The OS
// encrypts the items itself; no application cipher is applied.
package keychain

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secure-storage/models"
)

//go:generate mockgen -source=keychain.go -destination=../mock/keychain_mock.go -package=mock

var (
	// ErrUnsupported is returned where no OS keychain is available.
	ErrUnsupported = errors.New("os keychain is not supported on this platform")

	// ErrKeychain wraps every failure reported by the OS keychain API.
	ErrKeychain = errors.New("os keychain failure")
)

// Keychain is the subset of keychain operations the keychain item store
// needs. sync selects the synchronizable or the device-only item set.
type Keychain interface {
	Get(ctx context.Context, account string, sync bool) (string, bool, error)
	Set(ctx context.Context, account, value string, sync bool, access models.AccessPolicy) error
	Delete(ctx context.Context, account string, sync bool) (bool, error)
	Accounts(ctx context.Context, sync bool) ([]string, error)
}
