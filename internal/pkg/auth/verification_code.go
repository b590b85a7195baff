package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeAlphabet excludes glyphs that are easy to misread: 0/O and 1/I.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultCodeLength is the length of registration codes
const DefaultCodeLength = 8

// GenerateVerificationCode returns a random code of the given length drawn from CodeAlphabet.
func GenerateVerificationCode(length int) (string, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}

	max := big.NewInt(int64(len(CodeAlphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		result[i] = CodeAlphabet[n.Int64()]
	}

	return string(result), nil
}
