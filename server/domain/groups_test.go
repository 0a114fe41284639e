package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroups_SendToGroupReachesMembersOnly(t *testing.T) {
	g := NewGroups()

	outA := make(chan Notice, 1)
	outB := make(chan Notice, 1)
	g.Register("conn-a", outA)
	g.Register("conn-b", outB)
	g.AddToGroup("conn-a", 1)
	g.AddToGroup("conn-b", 2)

	g.SendToGroup(1, NewSystemNotice("hello"))

	require.Len(t, outA, 1)
	require.Empty(t, outB)
}

func TestGroups_RemoveFromGroup(t *testing.T) {
	g := NewGroups()

	out := make(chan Notice, 1)
	g.Register("conn-a", out)
	g.AddToGroup("conn-a", 1)
	require.True(t, g.IsMember("conn-a", 1))

	g.RemoveFromGroup("conn-a", 1)
	require.False(t, g.IsMember("conn-a", 1))

	g.SendToGroup(1, NewSystemNotice("hello"))
	require.Empty(t, out)
}

func TestGroups_UnregisterScrubsAllGroups(t *testing.T) {
	g := NewGroups()

	out := make(chan Notice, 1)
	g.Register("conn-a", out)
	g.AddToGroup("conn-a", 1)
	g.AddToGroup("conn-a", 2)

	g.Unregister("conn-a")

	require.Equal(t, 0, g.MemberCount(1))
	require.Equal(t, 0, g.MemberCount(2))
}

func TestGroups_SlowMemberDropsInsteadOfBlocking(t *testing.T) {
	g := NewGroups()

	full := make(chan Notice) // unbuffered, nobody reading
	g.Register("conn-slow", full)
	g.AddToGroup("conn-slow", 1)

	// Must return instead of blocking on the stuck member.
	g.SendToGroup(1, NewSystemNotice("hello"))
}

func TestGroups_SendToUnknownGroupIsNoop(t *testing.T) {
	g := NewGroups()
	g.SendToGroup(404, NewSystemNotice("hello"))
}
