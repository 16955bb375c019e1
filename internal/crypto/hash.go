package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new password digests.
const DefaultCost = 14

// HashPassword hashes a password with bcrypt at the given cost. bcrypt
// generates and embeds its own random salt, so hashing the same
// password twice yields different digests.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored
// digest. It fails closed: an empty or malformed digest is treated as
// a mismatch, never an error or a panic.
func VerifyPassword(password, encodedHash string) bool {
	if encodedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
