package crypto

import "errors"

// Sentinel errors returned by the codec, the key manager and the vaults.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidCiphertext is returned when an encoded ciphertext does not
	// split into exactly two parts or a part is not valid base64.
	ErrInvalidCiphertext = errors.New("invalid encoded ciphertext")

	// ErrAuthentication is returned when GCM tag verification fails:
	// tampered ciphertext, tampered tag or a wrong key.
	ErrAuthentication = errors.New("ciphertext authentication failed")

	// ErrKeyUnrecoverable is returned when a key exists in the vault but
	// cannot be recovered (wrong size, wrong passphrase, invalidated).
	ErrKeyUnrecoverable = errors.New("secret key is unrecoverable")

	// ErrKeyVault is returned when the vault backend itself fails.
	ErrKeyVault = errors.New("secret key vault failure")

	// ErrRandom is returned when the random source cannot produce an IV.
	ErrRandom = errors.New("random source failure")

	// ErrInvalidKey is returned when a nil or malformed key reaches the codec.
	ErrInvalidKey = errors.New("invalid secret key")

	// ErrUnknownVaultBackend is returned by NewKeyVault for an unsupported
	// backend name.
	ErrUnknownVaultBackend = errors.New("unknown secret key backend")
)
