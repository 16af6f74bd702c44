// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-storage/internal/crypto"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T, alias string) *crypto.SecretKey {
	t.Helper()
	m := crypto.NewSecretKeyManager(crypto.NewMemoryVault(logger.Nop()), logger.Nop())
	key, err := m.GetOrCreateKey(context.Background(), alias)
	require.NoError(t, err)
	require.NotNil(t, key)
	return key
}

func TestCipherCodec_RoundTrip(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "app_token")

	for _, plaintext := range []string{"", "abc123", `{"a":1,"b":[true,null]}`, strings.Repeat("ж", 4096)} {
		encoded, err := codec.Encrypt([]byte(plaintext), key)
		require.NoError(t, err)

		got, err := codec.Decrypt(encoded, key)
		require.NoError(t, err)
		assert.Equal(t, plaintext, string(got))
	}
}

func TestCipherCodec_EncodedFormat(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	encoded, err := codec.Encrypt([]byte("hello"), key)
	require.NoError(t, err)

	parts := strings.Split(encoded, crypto.Separator)
	require.Len(t, parts, 2)
	assert.NotContains(t, encoded, "=")
	assert.NotContains(t, encoded, "\n")

	env, err := codec.Parse(encoded)
	require.NoError(t, err)
	assert.Len(t, env.IV, crypto.NonceSize)
	assert.Len(t, env.Ciphertext, len("hello")+crypto.TagSize)

	// ciphertext and tag first, IV second
	assert.Equal(t, base64.RawStdEncoding.EncodeToString(env.Ciphertext), parts[0])
	assert.Equal(t, base64.RawStdEncoding.EncodeToString(env.IV), parts[1])
}

func TestCipherCodec_FreshIVPerCall(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	first, err := codec.Encrypt([]byte("same"), key)
	require.NoError(t, err)
	second, err := codec.Encrypt([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, encoded := range []string{first, second} {
		got, err := codec.Decrypt(encoded, key)
		require.NoError(t, err)
		assert.Equal(t, "same", string(got))
	}
}

func TestCipherCodec_WrongPartCount(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	cases := map[string]string{
		"no separator":    "YWJj",
		"three parts":     "YWJj" + crypto.Separator + "YWJj" + crypto.Separator + "YWJj",
		"empty":           "",
		"only separators": crypto.Separator + crypto.Separator,
	}
	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decrypt(encoded, key)
			assert.ErrorIs(t, err, crypto.ErrInvalidCiphertext)
		})
	}
}

func TestCipherCodec_UndecodableBase64(t *testing.T) {
	codec := crypto.NewCipherCodec()

	_, err := codec.Parse("not*base64" + crypto.Separator + "AAAAAAAAAAAAAAAA")
	assert.ErrorIs(t, err, crypto.ErrInvalidCiphertext)

	_, err = codec.Parse("AAAA" + crypto.Separator)
	assert.ErrorIs(t, err, crypto.ErrInvalidCiphertext)
}

func TestCipherCodec_AcceptsPaddedBase64(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	encoded, err := codec.Encrypt([]byte("x"), key)
	require.NoError(t, err)

	parts := strings.Split(encoded, crypto.Separator)
	padded := parts[0] + strings.Repeat("=", (4-len(parts[0])%4)%4) + crypto.Separator + parts[1]

	got, err := codec.Decrypt(padded, key)
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestCipherCodec_TamperingFailsAuthentication(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	encoded, err := codec.Encrypt([]byte("sensitive"), key)
	require.NoError(t, err)
	env, err := codec.Parse(encoded)
	require.NoError(t, err)

	t.Run("ciphertext byte", func(t *testing.T) {
		tampered := crypto.Envelope{Ciphertext: append([]byte(nil), env.Ciphertext...), IV: env.IV}
		tampered.Ciphertext[0] ^= 0x01
		plaintext, err := codec.Open(tampered, key)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
		assert.Nil(t, plaintext)
	})

	t.Run("tag byte", func(t *testing.T) {
		tampered := crypto.Envelope{Ciphertext: append([]byte(nil), env.Ciphertext...), IV: env.IV}
		tampered.Ciphertext[len(tampered.Ciphertext)-1] ^= 0x80
		plaintext, err := codec.Open(tampered, key)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
		assert.Nil(t, plaintext)
	})

	t.Run("iv byte", func(t *testing.T) {
		iv := append([]byte(nil), env.IV...)
		iv[0] ^= 0xff
		_, err := codec.Open(crypto.Envelope{Ciphertext: env.Ciphertext, IV: iv}, key)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := newTestKey(t, "other")
		_, err := codec.Decrypt(encoded, other)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})

	t.Run("truncated below tag size", func(t *testing.T) {
		_, err := codec.Open(crypto.Envelope{Ciphertext: env.Ciphertext[:4], IV: env.IV}, key)
		assert.ErrorIs(t, err, crypto.ErrAuthentication)
	})
}

func TestCipherCodec_DecryptWithoutKeyResolvesNil(t *testing.T) {
	codec := crypto.NewCipherCodec()
	key := newTestKey(t, "k")

	encoded, err := codec.Encrypt([]byte("v"), key)
	require.NoError(t, err)

	plaintext, err := codec.Decrypt(encoded, nil)
	assert.NoError(t, err)
	assert.Nil(t, plaintext)
}

func TestCipherCodec_EncryptWithoutKey(t *testing.T) {
	_, err := crypto.NewCipherCodec().Encrypt([]byte("v"), nil)
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}
