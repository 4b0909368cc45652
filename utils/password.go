package utils

import (
	"disasterprep/config"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with the configured bcrypt cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the supplied password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
