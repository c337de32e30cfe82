package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// Reset code bounds. The legacy platform issued codes in [1000, 9999] - a
// 9000-value space, not 10000 - and stored clients still expect four digits
// with no leading zero. Preserve the exact bounds.
const (
	resetCodeMin   = 1000
	resetCodeSpace = 9000
)

// GenerateResetCode returns a uniformly random four-digit password reset
// code in the inclusive range [1000, 9999], drawn from crypto/rand. Calls
// are independent; no cross-call uniqueness is guaranteed.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeSpace))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+resetCodeMin, 10), nil
}
