// Package cache memoizes rendered analysis reports for the caller
// layer. The engine itself is deterministic and stateless; caching here
// only saves re-running identical requests, it never changes output.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key derives a cache key from the material text and product hint.
// Identical (text, product) pairs always produce identical reports, so
// the pair fully identifies a cached entry.
func Key(text, product string) string {
	h := sha256.New()
	h.Write([]byte(product))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "prescreen:v1:" + hex.EncodeToString(h.Sum(nil))
}
