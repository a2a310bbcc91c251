package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns a short stable fingerprint of analyzed text, so logs
// can correlate repeat analyses of the same document without retaining the
// document itself.
func HashContent(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
