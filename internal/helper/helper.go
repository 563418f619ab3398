package helper

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash8 gives a short stable tag for log fields that must not carry
// raw PII such as mobile numbers.
func Hash8(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
