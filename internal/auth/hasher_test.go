package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("mySecurePassword123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := h.Verify(encoded, "mySecurePassword123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("correct-horse")
	require.NoError(t, err)

	ok, err := h.Verify(encoded, "battery-staple")
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, ok)
}

func TestHasher_SaltedOutputsDiffer(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "per-call salt must produce distinct encodings")

	ok, err := h.Verify(first, "same-password")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = h.Verify(second, "same-password")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$onlyonesection",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=1,p=4$!!badsalt!!$ZGlnZXN0",
	}
	for _, encoded := range cases {
		ok, err := h.Verify(encoded, "whatever")
		assert.ErrorIs(t, err, ErrMalformedHash, "input %q", encoded)
		assert.False(t, ok)
	}
}
