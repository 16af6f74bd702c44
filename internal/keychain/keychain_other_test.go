//go:build !darwin

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSystemKeychain_Unsupported(t *testing.T) {
	k, err := NewSystemKeychain("svc")
	assert.Nil(t, k)
	assert.ErrorIs(t, err, ErrUnsupported)
}
