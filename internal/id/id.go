// Package id mints and validates entity identifiers.
//
// Identifiers are 24 hexadecimal characters, the shape of the document ids
// Noteful has always exposed, so existing client links and seed fixtures
// keep working.
package id

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Length is the number of characters in an identifier.
	Length = 24

	alphabet = "0123456789abcdef"
)

// Generate creates a new random identifier using NanoID restricted to a hex alphabet.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate() (string, error) {
	s, err := gonanoid.Generate(alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return s, nil
}

// IsValid reports whether s is a well-formed identifier.
// Upper and lower case hex digits are both accepted; no I/O is performed.
// Callers store and compare the Normalize form.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Normalize returns the canonical lowercase form of a valid identifier.
// Ids differing only in letter case name the same record.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// NormalizeAll returns ids with every element normalized. Nil stays nil.
func NormalizeAll(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, s := range ids {
		out[i] = Normalize(s)
	}
	return out
}
