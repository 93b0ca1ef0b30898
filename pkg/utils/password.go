package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hashing speed for brute-force resistance.
const bcryptCost = 13

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
