package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_CodeRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindMissingKey, KindInvalidData, KindOSError, KindUnknownError} {
		assert.Equal(t, k, KindFromCode(k.Code()))
	}
	assert.Equal(t, KindUnknownError, KindFromCode("somethingElse"))
}

func TestStorageError_Messages(t *testing.T) {
	assert.Equal(t, "Empty key or missing key param", NewMissingKey(nil).Error())
	assert.Equal(t, "The data in the store is in an invalid format", NewInvalidData(nil).Error())
	assert.Equal(t, "An OS error occurred (KeyUnrecoverable)", NewOSError("KeyUnrecoverable", nil).Error())
	assert.Equal(t, "An unknown error occurred: PathError", NewUnknownError("PathError", nil).Error())
}

func TestStorageError_IsMatchesKind(t *testing.T) {
	cause := errors.New("disk on fire")
	err := fmt.Errorf("wrapped: %w", NewOSError("StoreBackend", cause))

	assert.ErrorIs(t, err, ErrOSError)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidData)
	assert.ErrorIs(t, err, &StorageError{Kind: KindOSError, Origin: "StoreBackend"})
	assert.NotErrorIs(t, err, &StorageError{Kind: KindOSError, Origin: "KeyVault"})
}

func TestStorageError_MessageHidesCause(t *testing.T) {
	err := NewUnknownError("PathError", errors.New("open /secret/path: permission denied"))
	assert.NotContains(t, err.Error(), "/secret/path")
	assert.Equal(t, CodeUnknownError, err.Code())
}

func TestFromWire(t *testing.T) {
	err := FromWire(CodeInvalidData, "")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidData, err.Kind)
	assert.Equal(t, MsgInvalidData, err.Message)

	err = FromWire(CodeOSError, "An OS error occurred (KeyVault)")
	assert.Equal(t, KindOSError, err.Kind)
	assert.Equal(t, "An OS error occurred (KeyVault)", err.Error())
}
