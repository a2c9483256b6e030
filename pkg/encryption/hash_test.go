package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hashed)

	assert.True(t, ComparePassword(hashed, "correct-horse"))
	assert.False(t, ComparePassword(hashed, "wrong-horse"))
}
