package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("2000-01-15")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "2000-01-15", hash)

	assert.True(t, CheckPassword(hash, "2000-01-15"))
}

func TestCheckPasswordRejectsWrongCandidate(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
	}{
		{name: "wrong password", candidate: "wrong-password"},
		{name: "empty password", candidate: ""},
		{name: "case changed", candidate: "Correct-Password"},
		{name: "trailing space", candidate: "correct-password "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CheckPassword(hash, tt.candidate))
		})
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same-input"))
	assert.True(t, CheckPassword(second, "same-input"))
}
