package util

import (
	"fmt"
	"unicode"
)

// ValidatePassphrase enforces the minimum strength for backup passphrases.
func ValidatePassphrase(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain a letter and a digit")
	}
	return nil
}

// Wipe zeroes a secret held in a byte slice.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
