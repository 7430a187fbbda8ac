// Package idgen generates object identifiers in the IDE's own format:
// 24 uppercase hex digits derived from 12 cryptographically random bytes.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// New returns a fresh 24-character uppercase hex identifier.
func New() string {
	var buf [12]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("idgen: crypto/rand unavailable: " + err.Error())
	}
	return strings.ToUpper(hex.EncodeToString(buf[:]))
}

// Valid reports whether s has the shape of a generated id: exactly 24
// uppercase hex characters.
func Valid(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
