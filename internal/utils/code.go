package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateVerificationCode generates a cryptographically secure 6-digit code,
// uniform across 100000-999999 so there is never a leading zero.
func GenerateVerificationCode() (string, error) {
	// 900000 possible codes
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
