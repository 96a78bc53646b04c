package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor used for all stored
// credentials, including the throwaway passwords backfilled onto
// federated-only accounts.
const passwordHashCost = 8

// HashPassword hashes the given plaintext password with bcrypt. The output
// is self-contained (salt and cost embedded) and can be stored directly.
//
// Returns an error if the plaintext exceeds bcrypt's 72-byte limit; bcrypt
// would otherwise truncate it silently.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// A malformed hash yields false, never an error: at the authentication
// boundary every non-match is the same "wrong password".
//
// bcrypt.CompareHashAndPassword compares in constant time, so this
// function is safe against timing attacks.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
