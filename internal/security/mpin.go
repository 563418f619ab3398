package security

import "golang.org/x/crypto/bcrypt"

// The MPIN is stored only as a bcrypt digest; comparison goes through
// bcrypt's own constant-time check.

func HashMpin(mpin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(mpin), 12)
	return string(b), err
}

func CheckMpin(hash, mpin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(mpin)) == nil
}
