package domain

import "sync"

// Groups maps room ids to the set of member connection ids and owns the
// per-connection outbound channels. Membership here mirrors the transport
// group: it is mutated on join/leave decisions, not persisted.
type Groups struct {
	mu      sync.RWMutex
	rooms   map[int]map[string]struct{}
	members map[string]chan<- Notice
}

func NewGroups() *Groups {
	return &Groups{
		rooms:   make(map[int]map[string]struct{}),
		members: make(map[string]chan<- Notice),
	}
}

// Register attaches the outbound channel for a live connection. It must be
// called before the connection is added to any group.
func (g *Groups) Register(connectionID string, out chan<- Notice) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.members[connectionID] = out
}

// Unregister detaches a connection and scrubs it from every group it was in.
func (g *Groups) Unregister(connectionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.members, connectionID)
	for roomID, members := range g.rooms {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(g.rooms, roomID)
		}
	}
}

func (g *Groups) AddToGroup(connectionID string, roomID int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	members, exists := g.rooms[roomID]
	if !exists {
		members = make(map[string]struct{})
		g.rooms[roomID] = members
	}
	members[connectionID] = struct{}{}
}

func (g *Groups) RemoveFromGroup(connectionID string, roomID int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	members, exists := g.rooms[roomID]
	if !exists {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(g.rooms, roomID)
	}
}

// SendToGroup fans a notice out to every member of the room group. Delivery
// into a member's channel is non-blocking; a member that cannot keep up
// drops the notice rather than stalling the whole group.
func (g *Groups) SendToGroup(roomID int, notice Notice) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	members, exists := g.rooms[roomID]
	if !exists {
		return
	}
	for connectionID := range members {
		out, registered := g.members[connectionID]
		if !registered {
			continue
		}
		select {
		case out <- notice:
		default:
		}
	}
}

func (g *Groups) MemberCount(roomID int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rooms[roomID])
}

func (g *Groups) IsMember(connectionID string, roomID int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.rooms[roomID][connectionID]
	return ok
}
