package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyKey is returned for an empty or missing prefixed key.
	ErrEmptyKey = errors.New("empty key or missing key param")
	// ErrNullData is returned when set_item carries no data.
	ErrNullData = errors.New("data is required")
	// ErrInvalidAccess is returned for an access policy outside the known tiers.
	ErrInvalidAccess = errors.New("invalid access policy")
)
