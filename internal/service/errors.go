package service

import "errors"

var (
	// ErrNoKeychain is returned by NewKeychainItemStore for a nil keychain.
	ErrNoKeychain = errors.New("keychain item store needs a keychain")
)
