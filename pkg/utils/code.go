package utils

import (
	"crypto/rand"
	"math/big"
)

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShareCodeLength gives ~119 bits of entropy. The share code is the only
// read-access control on an invitation, so it must be unguessable rather
// than merely unique.
const ShareCodeLength = 20

// GenerateShareCode returns a crypto-random alphanumeric code.
func GenerateShareCode() (string, error) {
	return randomString(ShareCodeLength)
}

func randomString(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = codeCharset[n.Int64()]
	}
	return string(b), nil
}
