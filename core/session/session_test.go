package session

import (
	"testing"

	"ella-rises-admin/core/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := NewID()
		require.NoError(t, err)
		assert.Len(t, id, constants.SessionIDLength)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSignAndParseCookie(t *testing.T) {
	token, err := SignCookie("sid-abc", "test-secret")
	require.NoError(t, err)

	sid, err := ParseCookie(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "sid-abc", sid)
}

func TestParseCookieWrongSecret(t *testing.T) {
	token, err := SignCookie("sid-abc", "test-secret")
	require.NoError(t, err)

	_, err = ParseCookie(token, "other-secret")
	assert.Error(t, err)
}

func TestParseCookieGarbage(t *testing.T) {
	_, err := ParseCookie("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestIsElevated(t *testing.T) {
	assert.True(t, (&Session{Role: constants.RoleManager}).IsElevated())
	assert.True(t, (&Session{Role: constants.RoleAdmin}).IsElevated())
	assert.False(t, (&Session{Role: constants.RoleUser}).IsElevated())
	assert.False(t, (&Session{}).IsElevated())
}
