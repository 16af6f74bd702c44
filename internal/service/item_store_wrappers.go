package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/validators"
	"github.com/MKhiriev/go-secure-storage/models"
)

// wrapItemStore applies wrappers in order, so the last one is outermost.
func wrapItemStore(inner ItemStore, wrappers ...ItemStoreWrapper) ItemStore {
	for _, w := range wrappers {
		inner = w.Wrap(inner)
	}
	return inner
}

// ValidationItemStore rejects malformed requests before they reach the
// wrapped store.
type ValidationItemStore struct {
	inner     ItemStore
	validator validators.Validator
}

func NewValidationItemStore(validator validators.Validator) ItemStoreWrapper {
	return &ValidationItemStore{validator: validator}
}

func (v *ValidationItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}
	return v.inner.SetItem(ctx, request)
}

func (v *ValidationItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.GetItemResponse{}, err
	}
	return v.inner.GetItem(ctx, request)
}

func (v *ValidationItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.RemoveItemResponse{}, err
	}
	return v.inner.RemoveItem(ctx, request)
}

func (v *ValidationItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}
	return v.inner.ClearItemsWithPrefix(ctx, request)
}

func (v *ValidationItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PrefixedKeysResponse{}, err
	}
	return v.inner.GetPrefixedKeys(ctx, request)
}

func (v *ValidationItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return err
	}
	return v.inner.SetSynchronizeKeychain(ctx, request)
}

func (v *ValidationItemStore) Wrap(inner ItemStore) ItemStore {
	v.inner = inner
	return v
}

// ErrorMappingItemStore turns every error of the wrapped store into an
// *app.StorageError via MapError.
type ErrorMappingItemStore struct {
	inner ItemStore
}

func NewErrorMappingItemStore() ItemStoreWrapper {
	return &ErrorMappingItemStore{}
}

func (e *ErrorMappingItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	return MapError(e.inner.SetItem(ctx, request))
}

func (e *ErrorMappingItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	response, err := e.inner.GetItem(ctx, request)
	if err != nil {
		return models.GetItemResponse{}, MapError(err)
	}
	return response, nil
}

func (e *ErrorMappingItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	response, err := e.inner.RemoveItem(ctx, request)
	if err != nil {
		return models.RemoveItemResponse{}, MapError(err)
	}
	return response, nil
}

func (e *ErrorMappingItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	return MapError(e.inner.ClearItemsWithPrefix(ctx, request))
}

func (e *ErrorMappingItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	response, err := e.inner.GetPrefixedKeys(ctx, request)
	if err != nil {
		return models.PrefixedKeysResponse{}, MapError(err)
	}
	return response, nil
}

func (e *ErrorMappingItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	return MapError(e.inner.SetSynchronizeKeychain(ctx, request))
}

func (e *ErrorMappingItemStore) Wrap(inner ItemStore) ItemStore {
	e.inner = inner
	return e
}

// Operation names used as metric labels. They match the RPC names.
const (
	OpSetItem                = "set_item"
	OpGetItem                = "get_item"
	OpRemoveItem             = "remove_item"
	OpClearItemWithPrefix    = "clear_item_with_prefix"
	OpGetPrefixedKeys        = "get_prefixed_keys"
	OpSetSynchronizeKeychain = "set_synchronize_keychain"
)

// InstrumentedItemStore records count, outcome code and latency of every
// call of the wrapped store.
type InstrumentedItemStore struct {
	inner   ItemStore
	metrics *metrics.Metrics
}

func NewInstrumentedItemStore(m *metrics.Metrics) ItemStoreWrapper {
	return &InstrumentedItemStore{metrics: m}
}

func (i *InstrumentedItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	start := time.Now()
	err := i.inner.SetItem(ctx, request)
	i.record(OpSetItem, start, err)
	return err
}

func (i *InstrumentedItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	start := time.Now()
	response, err := i.inner.GetItem(ctx, request)
	i.record(OpGetItem, start, err)
	return response, err
}

func (i *InstrumentedItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	start := time.Now()
	response, err := i.inner.RemoveItem(ctx, request)
	i.record(OpRemoveItem, start, err)
	return response, err
}

func (i *InstrumentedItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	start := time.Now()
	err := i.inner.ClearItemsWithPrefix(ctx, request)
	i.record(OpClearItemWithPrefix, start, err)
	return err
}

func (i *InstrumentedItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	start := time.Now()
	response, err := i.inner.GetPrefixedKeys(ctx, request)
	i.record(OpGetPrefixedKeys, start, err)
	return response, err
}

func (i *InstrumentedItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	start := time.Now()
	err := i.inner.SetSynchronizeKeychain(ctx, request)
	i.record(OpSetSynchronizeKeychain, start, err)
	return err
}

func (i *InstrumentedItemStore) record(operation string, start time.Time, err error) {
	i.metrics.RecordOperation(operation, ErrorCode(err), time.Since(start))
}

func (i *InstrumentedItemStore) Wrap(inner ItemStore) ItemStore {
	i.inner = inner
	return i
}

// ErrorCode returns the wire code of err, or metrics.CodeOK for nil.
func ErrorCode(err error) string {
	if err == nil {
		return metrics.CodeOK
	}
	var storageErr *app.StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Code()
	}
	return app.CodeUnknownError
}
