package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode_Range(t *testing.T) {
	for range 500 {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 4, "code should always be four digits")

		n, err := strconv.Atoi(code)
		require.NoError(t, err, "code should be numeric")
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}

func TestGenerateResetCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 draws from a 9000-value space should essentially never collapse to
	// a single value.
	require.Greater(t, len(seen), 1, "codes should not be constant")
}
