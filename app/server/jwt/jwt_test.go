package jwt

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestNew_EmptyKey(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestSignAndParse(t *testing.T) {
	j, err := New("super-secret")
	require.NoError(t, err)

	expires := time.Now().Add(2 * time.Hour).Unix()
	tok, err := j.SignToken(&User{ID: 42, Username: "alice", Expires: expires})
	require.NoError(t, err)

	u, err := j.ParseUser(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, expires, u.Expires)
}

func TestSignToken_UniquePerCall(t *testing.T) {
	j, err := New("k")
	require.NoError(t, err)

	user := &User{ID: 1, Username: "bob", Expires: time.Now().Add(time.Hour).Unix()}
	a, err := j.SignToken(user)
	require.NoError(t, err)
	b, err := j.SignToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseUser_Rejects(t *testing.T) {
	j, err := New("right-secret")
	require.NoError(t, err)
	other, err := New("wrong-secret")
	require.NoError(t, err)

	valid, err := j.SignToken(&User{ID: 1, Username: "u", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)
	expired, err := j.SignToken(&User{ID: 1, Username: "u", Expires: time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, err)
	foreign, err := other.SignToken(&User{ID: 1, Username: "u", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	// 篡改签名的最后一段
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	cases := map[string]string{
		"empty":     "",
		"malformed": "not.a.jwt",
		"expired":   expired,
		"foreign":   foreign,
		"tampered":  tampered,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := j.ParseUser(tok)
			assert.Error(t, err)
		})
	}
}
