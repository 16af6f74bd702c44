package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests of RPC bodies. Hash instances
// are pooled; a Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sum := h.Sum(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the raw digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hh := h.pool.Get().(hash.Hash)
	hh.Reset()

	hh.Write(data)
	sum := hh.Sum(nil)

	hh.Reset()
	h.pool.Put(hh)

	return sum
}

// Sum returns the hex encoded digest of data, the form sent in HashHeader.
func (h *Hasher) Sum(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether sum is the hex digest of data. The comparison is
// constant time.
func (h *Hasher) Verify(data []byte, sum string) bool {
	want, err := hex.DecodeString(sum)
	if err != nil {
		return false
	}
	return hmac.Equal(want, h.Hash(data))
}
