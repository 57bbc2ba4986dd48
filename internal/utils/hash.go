package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA-256 hex digest of the password. The digest is
// deterministic on purpose: login and bank withdrawals verify credentials by
// comparing stored digests for equality.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
