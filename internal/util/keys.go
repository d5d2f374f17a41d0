package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the first 16 hex chars of sha256(key). Stable across processes,
// so redacted keys can still be correlated between log lines.
func Digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
