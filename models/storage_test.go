package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItemRequest_JSON(t *testing.T) {
	in := SetItemRequest{
		PrefixedKey: "p_token",
		Data:        StringPtr("abc"),
		Sync:        BoolPtr(true),
		Access:      AccessibleAfterFirstUnlock,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefixedKey":"p_token","data":"abc","sync":true,"access":2}`, string(raw))

	var out SetItemRequest
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestSetItemRequest_DecodeOptionalFields(t *testing.T) {
	var req SetItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"prefixedKey":"k","data":null,"access":"whenUnlockedThisDeviceOnly"}`), &req))

	assert.Nil(t, req.Data)
	assert.Nil(t, req.Sync)
	assert.Equal(t, AccessibleWhenUnlockedThisDeviceOnly, req.Access)

	err := json.Unmarshal([]byte(`{"prefixedKey":"k","access":12}`), &req)
	assert.Error(t, err)
}

func TestSyncOr(t *testing.T) {
	assert.True(t, SyncOr(nil, true))
	assert.False(t, SyncOr(nil, false))
	assert.False(t, SyncOr(BoolPtr(false), true))
	assert.True(t, SyncOr(BoolPtr(true), false))
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, VariantLocal, VariantFor(false))
	assert.Equal(t, VariantSynchronizable, VariantFor(true))
	assert.True(t, VariantSynchronizable.Synchronizable())
	assert.Equal(t, "local", VariantLocal.String())
	assert.Equal(t, "synchronizable", VariantSynchronizable.String())
}
