package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := EncryptPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hashed)

	assert.True(t, CheckPassword("s3cret-password", hashed))
	assert.False(t, CheckPassword("wrong-password", hashed))
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
