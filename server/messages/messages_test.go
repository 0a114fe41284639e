package messages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/server/domain"
)

func TestCatalog_RenderSubstitutesSubject(t *testing.T) {
	c := NewCatalog()

	require.Equal(t, "alice joined the room.", c.Render(domain.CodeFirstJoin, "alice"))
	require.Equal(t, "alice reconnected.", c.Render(domain.CodeReconnect, "alice"))
	require.Equal(t, "alice left the room.", c.Render(domain.CodeLeft, "alice"))
	require.Equal(t, "alice lost connection.", c.Render(domain.CodeDisconnected, "alice"))
}

func TestCatalog_RoomDeletedIgnoresSubject(t *testing.T) {
	c := NewCatalog()

	text := c.Render(domain.CodeRoomDeleted, "alice")
	require.NotContains(t, text, "alice")
	require.NotEmpty(t, text)
}

func TestCatalog_UnknownCodeFallsBackToCode(t *testing.T) {
	c := NewCatalog()

	require.Equal(t, "X999", c.Render("X999", "alice"))
}
