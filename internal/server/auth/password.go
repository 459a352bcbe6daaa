package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. A fresh random salt is embedded
// on each call, so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches the stored hash. It returns
// false on any mismatch or malformed hash and never panics on
// attacker-controlled input.
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
