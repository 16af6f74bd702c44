// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// TestStorageRequestValidator_Validate
// ---------------------------------------------------------------------------

func TestStorageRequestValidator_Validate(t *testing.T) {
	v := NewStorageRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid set item",
			obj:  models.SetItemRequest{PrefixedKey: "p_k", Data: models.StringPtr("v")},
		},
		{
			name: "valid set item pointer with empty data",
			obj:  &models.SetItemRequest{PrefixedKey: "p_k", Data: models.StringPtr("")},
		},
		{
			name:    "set item empty key",
			obj:     models.SetItemRequest{Data: models.StringPtr("v")},
			wantErr: ErrEmptyKey,
		},
		{
			name:    "set item null data",
			obj:     models.SetItemRequest{PrefixedKey: "p_k"},
			wantErr: ErrNullData,
		},
		{
			name:    "set item bad access",
			obj:     models.SetItemRequest{PrefixedKey: "p_k", Data: models.StringPtr("v"), Access: 7},
			wantErr: ErrInvalidAccess,
		},
		{
			name:   "set item scoped to key ignores null data",
			obj:    models.SetItemRequest{PrefixedKey: "p_k"},
			fields: []string{FieldPrefixedKey},
		},
		{
			name:    "set item unknown field",
			obj:     models.SetItemRequest{PrefixedKey: "p_k"},
			fields:  []string{"color"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "get item empty key",
			obj:     models.GetItemRequest{},
			wantErr: ErrEmptyKey,
		},
		{
			name: "get item pointer",
			obj:  &models.GetItemRequest{PrefixedKey: "k"},
		},
		{
			name:    "remove item empty key",
			obj:     &models.RemoveItemRequest{},
			wantErr: ErrEmptyKey,
		},
		{
			name: "clear with empty prefix",
			obj:  models.ClearItemsRequest{},
		},
		{
			name: "keys",
			obj:  &models.PrefixedKeysRequest{Prefix: "p_"},
		},
		{
			name: "synchronize",
			obj:  models.SynchronizeRequest{Sync: true},
		},
		{
			name:    "unsupported type",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
