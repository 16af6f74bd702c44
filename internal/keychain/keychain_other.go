//go:build !darwin

package keychain

// NewSystemKeychain fails outside of darwin: there is no OS keychain with
// generic password items to talk to.
func NewSystemKeychain(service string) (Keychain, error) {
	return nil, ErrUnsupported
}
