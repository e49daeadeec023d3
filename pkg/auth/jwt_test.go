package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner("test-secret")

	token, err := s.GenerateToken("ops@dairy.in", "sess-1")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@dairy.in", claims.Username)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestSigner_RejectsForeignSecret(t *testing.T) {
	token, err := NewSigner("one").GenerateToken("ops", "sess-1")
	require.NoError(t, err)

	_, err = NewSigner("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestSigner_RejectsMissingSession(t *testing.T) {
	s := NewSigner("test-secret")
	token, err := s.GenerateToken("ops", "")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), Session{ID: "sess-1", Username: "ops"})
	got, ok := SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "sess-1", got.ID)
}
