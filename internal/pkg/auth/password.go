package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor applied to every stored password.
const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether candidate matches the stored hash.
func CheckPassword(hashedPassword, candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(candidate))
	return err == nil
}
