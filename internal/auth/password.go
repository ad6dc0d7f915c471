// Package auth hashes and verifies login passwords. It is a pure
// cryptographic utility; no entity lookup happens here.
package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword returns a salted bcrypt hash. Each call salts anew, so two
// hashes of the same input never match byte-for-byte.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain is the password originally hashed
// into hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
