package models

// StoreVariant selects one of the two logical stores a device exposes.
type StoreVariant int

const (
	// VariantLocal is the device-only store.
	VariantLocal StoreVariant = iota
	// VariantSynchronizable is eligible for OS-level cross-device sync.
	VariantSynchronizable
)

// VariantFor maps the per-call sync flag to a store variant.
func VariantFor(sync bool) StoreVariant {
	if sync {
		return VariantSynchronizable
	}
	return VariantLocal
}

// Synchronizable reports whether v is the synchronizable variant.
func (v StoreVariant) Synchronizable() bool {
	return v == VariantSynchronizable
}

func (v StoreVariant) String() string {
	if v == VariantSynchronizable {
		return "synchronizable"
	}
	return "local"
}
