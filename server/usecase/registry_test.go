package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/server/domain"
)

func TestConnectionRegistry_Join_FirstThenReconnect(t *testing.T) {
	repo := newMemRepo()
	registry := NewConnectionRegistry(repo)

	outcome, err := registry.Join(1, 42, "conn-a")
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeFirstJoin, outcome)

	// Same (room, user) from a second window: record is overwritten, not
	// duplicated.
	outcome, err = registry.Join(1, 42, "conn-b")
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeReconnect, outcome)

	require.Equal(t, 1, repo.connectionCount())
	conn, err := repo.GetConnection(1, 42)
	require.NoError(t, err)
	require.Equal(t, "conn-b", conn.ConnectionID)
}

func TestConnectionRegistry_Join_DistinctUsersKeepOwnRecords(t *testing.T) {
	repo := newMemRepo()
	registry := NewConnectionRegistry(repo)

	_, err := registry.Join(1, 42, "conn-a")
	require.NoError(t, err)
	_, err = registry.Join(1, 43, "conn-b")
	require.NoError(t, err)

	require.Equal(t, 2, repo.connectionCount())
}

func TestConnectionRegistry_ResolveRoomByConnection(t *testing.T) {
	repo := newMemRepo()
	registry := NewConnectionRegistry(repo)

	_, err := registry.Join(7, 42, "conn-a")
	require.NoError(t, err)

	roomID, found, err := registry.ResolveRoomByConnection("conn-a")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 7, roomID)

	// An unknown connection id is not an error, just absent.
	_, found, err = registry.ResolveRoomByConnection("conn-gone")
	require.NoError(t, err)
	require.False(t, found)
}

func TestConnectionRegistry_RemoveAllForRoom(t *testing.T) {
	repo := newMemRepo()
	registry := NewConnectionRegistry(repo)

	_, err := registry.Join(7, 42, "conn-a")
	require.NoError(t, err)
	_, err = registry.Join(7, 43, "conn-b")
	require.NoError(t, err)
	_, err = registry.Join(8, 42, "conn-c")
	require.NoError(t, err)

	records, err := registry.RecordsForRoom(7)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NoError(t, registry.RemoveAllForRoom(7))

	records, err = registry.RecordsForRoom(7)
	require.NoError(t, err)
	require.Empty(t, records)

	// The other room's record is untouched.
	roomID, found, err := registry.ResolveRoomByConnection("conn-c")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 8, roomID)
}
