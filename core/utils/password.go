package utils

import (
	"crypto/subtle"
	"strings"

	"ella-rises-admin/core/logger"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// IsBcryptHash reports whether the stored value has the shape of a bcrypt
// digest ($2a$/$2b$/$2y$ prefix, 60 bytes).
func IsBcryptHash(stored string) bool {
	return len(stored) == 60 && strings.HasPrefix(stored, "$2")
}

// VerifyPassword checks a submitted password against the stored value.
// Recognized digests are verified one-way. Anything else only matches when
// allowPlaintext is set for a legacy migration, and then with a loud warning;
// with the flag off a plain-text stored value never matches.
func VerifyPassword(stored, password string, allowPlaintext bool) bool {
	if stored == "" {
		return false
	}
	if IsBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	if !allowPlaintext {
		return false
	}
	logger.Warn("Plain text password comparison in use. This is insecure and exists only for legacy account migration.")
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
