package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "admin", sess.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").GenerateToken(1, "user")
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	j := NewJWT("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := j.Verify(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}
