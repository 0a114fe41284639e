package usecase

import (
	"sync"

	"roomhub/server/domain"
)

// memRepo is an in-memory Repository for exercising the lifecycle and
// registry without sqlite.
type memRepo struct {
	mu     sync.Mutex
	rooms  map[int]domain.Room
	conns  map[[2]int]domain.Connection
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{
		rooms: make(map[int]domain.Room),
		conns: make(map[[2]int]domain.Connection),
	}
}

func (r *memRepo) GetRoom(roomID int) (domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	return room, nil
}

func (r *memRepo) CreateRoom(name string, ownerID int, isPermanent bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.rooms[r.nextID] = domain.Room{ID: r.nextID, Name: name, OwnerID: ownerID, IsPermanent: isPermanent}
	return r.nextID, nil
}

func (r *memRepo) DeleteRoomCascade(roomID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, roomID)
	for key := range r.conns {
		if key[0] == roomID {
			delete(r.conns, key)
		}
	}
	return nil
}

func (r *memRepo) GetConnection(roomID, userID int) (domain.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[[2]int{roomID, userID}]
	if !ok {
		return domain.Connection{}, ErrNotFound
	}
	return conn, nil
}

func (r *memRepo) CreateConnection(conn domain.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[[2]int{conn.RoomID, conn.UserID}] = conn
	return nil
}

func (r *memRepo) UpdateConnectionID(roomID, userID int, connectionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn := r.conns[[2]int{roomID, userID}]
	conn.ConnectionID = connectionID
	r.conns[[2]int{roomID, userID}] = conn
	return nil
}

func (r *memRepo) GetRoomIDByConnection(connectionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conn := range r.conns {
		if conn.ConnectionID == connectionID {
			return conn.RoomID, nil
		}
	}
	return 0, ErrNotFound
}

func (r *memRepo) ListConnectionsByRoom(roomID int) ([]domain.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var conns []domain.Connection
	for _, conn := range r.conns {
		if conn.RoomID == roomID {
			conns = append(conns, conn)
		}
	}
	return conns, nil
}

func (r *memRepo) DeleteConnectionsByRoom(roomID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.conns {
		if key[0] == roomID {
			delete(r.conns, key)
		}
	}
	return nil
}

func (r *memRepo) connectionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// recordingGroups captures group mutations and fanned-out notices.
type recordingGroups struct {
	mu      sync.Mutex
	members map[int]map[string]struct{}
	notices map[int][]domain.Notice
}

func newRecordingGroups() *recordingGroups {
	return &recordingGroups{
		members: make(map[int]map[string]struct{}),
		notices: make(map[int][]domain.Notice),
	}
}

func (g *recordingGroups) AddToGroup(connectionID string, roomID int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.members[roomID] == nil {
		g.members[roomID] = make(map[string]struct{})
	}
	g.members[roomID][connectionID] = struct{}{}
}

func (g *recordingGroups) RemoveFromGroup(connectionID string, roomID int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.members[roomID], connectionID)
}

func (g *recordingGroups) SendToGroup(roomID int, notice domain.Notice) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.notices[roomID] = append(g.notices[roomID], notice)
}

func (g *recordingGroups) noticesFor(roomID int) []domain.Notice {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.Notice(nil), g.notices[roomID]...)
}

func (g *recordingGroups) isMember(connectionID string, roomID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.members[roomID][connectionID]
	return ok
}
