package validators

import (
	"context"

	"github.com/MKhiriev/go-secure-storage/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPrefixedKey targets the namespaced key of a single-entry request.
	FieldPrefixedKey = "prefixed_key"

	// FieldData targets the payload of a set_item request.
	FieldData = "data"

	// FieldAccess targets the access policy of a set_item request.
	FieldAccess = "access"
)

// StorageRequestValidator implements Validator for the storage RPC request
// models. Both values and pointers are accepted.
type StorageRequestValidator struct {
}

func NewStorageRequestValidator() Validator {
	return &StorageRequestValidator{}
}

// Validate dispatches on the request type. Requests that carry no key
// (clear, keys, synchronize) are always valid.
func (v *StorageRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SetItemRequest:
		return v.validateSetItem(value, fields...)
	case *models.SetItemRequest:
		return v.validateSetItem(*value, fields...)

	case models.GetItemRequest:
		return v.validateKey(value.PrefixedKey, fields...)
	case *models.GetItemRequest:
		return v.validateKey(value.PrefixedKey, fields...)

	case models.RemoveItemRequest:
		return v.validateKey(value.PrefixedKey, fields...)
	case *models.RemoveItemRequest:
		return v.validateKey(value.PrefixedKey, fields...)

	case models.ClearItemsRequest, *models.ClearItemsRequest,
		models.PrefixedKeysRequest, *models.PrefixedKeysRequest,
		models.SynchronizeRequest, *models.SynchronizeRequest:
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *StorageRequestValidator) validateSetItem(request models.SetItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefixedKey, FieldData, FieldAccess}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefixedKey:
			if request.PrefixedKey == "" {
				return ErrEmptyKey
			}
		case FieldData:
			if request.Data == nil {
				return ErrNullData
			}
		case FieldAccess:
			if !request.Access.Valid() {
				return ErrInvalidAccess
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StorageRequestValidator) validateKey(key string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefixedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefixedKey:
			if key == "" {
				return ErrEmptyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
