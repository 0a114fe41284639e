package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roomhub/server/domain"
)

func TestTokens_SignVerifyRoundTrip(t *testing.T) {
	tokens := New("secret")
	identity := Identity{UserID: "abc123", Name: "alice", Role: domain.RoleAdmin}

	token, err := tokens.Sign(identity, time.Hour)
	require.NoError(t, err)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, identity, got)
}

func TestTokens_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a").Sign(Identity{UserID: "abc", Name: "alice", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	_, err = New("secret-b").Verify(token)
	require.Error(t, err)
}

func TestTokens_VerifyRejectsExpired(t *testing.T) {
	tokens := New("secret")
	token, err := tokens.Sign(Identity{UserID: "abc", Name: "alice", Role: domain.RoleUser}, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.Error(t, err)
}

func TestTokens_SignRejectsEmptyUID(t *testing.T) {
	_, err := New("secret").Sign(Identity{Name: "alice"}, time.Hour)
	require.Error(t, err)
}
