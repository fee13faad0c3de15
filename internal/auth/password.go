// Package auth implements the salted password scheme used for customer
// credentials.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 64
	iterations = 210_000
)

// HashPassword derives a hash and a fresh random salt for the supplied
// password. Both are stored alongside the customer row.
func HashPassword(password string) (hash, salt []byte, err error) {
	if password == "" {
		return nil, nil, errors.New("password is required")
	}
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash = pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return hash, salt, nil
}

// VerifyPassword reports whether the password matches the stored hash and
// salt, using the same derivation as HashPassword.
func VerifyPassword(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}
	candidate := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
