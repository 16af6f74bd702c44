// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request and response payloads of the storage RPC surface. Field names are
// stable across transports (HTTP JSON bodies and the gRPC JSON codec).
//
// Sync is optional on the keyed requests. When it is omitted the item store
// picks its own default, which set_synchronize_keychain changes on stores
// that have a synchronizable mode.

// SetItemRequest is the payload of set_item. Data is a pointer so that an
// explicit JSON null can be told apart from an empty string.
type SetItemRequest struct {
	PrefixedKey string       `json:"prefixedKey"`
	Data        *string      `json:"data"`
	Sync        *bool        `json:"sync,omitempty"`
	Access      AccessPolicy `json:"access"`
}

// GetItemRequest is the payload of get_item.
type GetItemRequest struct {
	PrefixedKey string `json:"prefixedKey"`
	Sync        *bool  `json:"sync,omitempty"`
}

// GetItemResponse carries the decrypted payload, or nil when no entry exists.
type GetItemResponse struct {
	Data *string `json:"data"`
}

// RemoveItemRequest is the payload of remove_item.
type RemoveItemRequest struct {
	PrefixedKey string `json:"prefixedKey"`
	Sync        *bool  `json:"sync,omitempty"`
}

// RemoveItemResponse reports whether an entry existed before removal.
type RemoveItemResponse struct {
	Success bool `json:"success"`
}

// ClearItemsRequest is the payload of clear_item_with_prefix.
type ClearItemsRequest struct {
	Prefix string `json:"prefix"`
	Sync   *bool  `json:"sync,omitempty"`
}

// PrefixedKeysRequest is the payload of get_prefixed_keys.
type PrefixedKeysRequest struct {
	Prefix string `json:"prefix"`
	Sync   *bool  `json:"sync,omitempty"`
}

// PrefixedKeysResponse lists namespaced keys, prefix included.
type PrefixedKeysResponse struct {
	Keys []string `json:"keys"`
}

// SynchronizeRequest is the payload of set_synchronize_keychain.
type SynchronizeRequest struct {
	Sync bool `json:"sync"`
}

// ErrorResponse is the wire form of a failed call.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to a copy of b.
func BoolPtr(b bool) *bool {
	return &b
}

// SyncOr resolves an optional sync flag against the store default.
func SyncOr(sync *bool, def bool) bool {
	if sync == nil {
		return def
	}
	return *sync
}
