package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ResetCodeLength is the length of the emailed one-time code: 4 random bytes
// rendered as upper-case hex, short enough for a human to type.
const ResetCodeLength = 8

// GenerateResetCode returns a new cryptographically random one-time code.
func GenerateResetCode() (string, error) {
	b := make([]byte, ResetCodeLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// HashResetCode returns the hex-encoded SHA-256 digest of a code. Only this
// digest is ever persisted; lookups hash the presented code and match on the
// digest column.
func HashResetCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
