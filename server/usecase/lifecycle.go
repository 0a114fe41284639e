package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"roomhub/server/domain"
)

// roomLocks hands out one mutex per room id. Handlers hold the room's lock
// across the whole read -> mutate -> persist -> broadcast sequence so two
// handlers touching the same room never interleave. Entries are refcounted
// so the map sheds the mutex once the last holder releases it; waiters keep
// the entry alive, which stops a late waiter and a fresh arrival from ending
// up on different mutexes for the same room.
type roomLock struct {
	mu   sync.Mutex
	refs int
}

type roomLocks struct {
	mu    sync.Mutex
	locks map[int]*roomLock
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int]*roomLock)}
}

func (l *roomLocks) lock(roomID int) func() {
	l.mu.Lock()
	entry, exists := l.locks[roomID]
	if !exists {
		entry = &roomLock{}
		l.locks[roomID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, roomID)
		}
		l.mu.Unlock()
	}
}

// RoomLifecycleManager orchestrates joins, leaves, deletion and disconnect
// notifications. It is the only component that decides when Room and
// Connection rows are created or removed.
type RoomLifecycleManager struct {
	codec    IdCodec
	repo     Repository
	registry *ConnectionRegistry
	guard    AuthorizationGuard
	presence *PresenceBroadcaster
	groups   GroupTransport
	locks    *roomLocks
	logger   *slog.Logger
}

func NewRoomLifecycleManager(
	codec IdCodec,
	repo Repository,
	registry *ConnectionRegistry,
	presence *PresenceBroadcaster,
	groups GroupTransport,
	logger *slog.Logger,
) *RoomLifecycleManager {
	return &RoomLifecycleManager{
		codec:    codec,
		repo:     repo,
		registry: registry,
		guard:    AuthorizationGuard{},
		presence: presence,
		groups:   groups,
		locks:    newRoomLocks(),
		logger:   logger.With(slog.String("component", "lifecycle")),
	}
}

// HandleJoin registers the connection for (room, user), adds it to the
// transport group and announces the arrival. A first join and a reconnect
// announce themselves with different system messages.
func (m *RoomLifecycleManager) HandleJoin(roomPublicID, userPublicID, userName, connectionID string) error {
	roomID, ok := m.decodeRoom(roomPublicID)
	if !ok {
		return nil
	}
	userID, err := m.codec.Decode(userPublicID)
	if err != nil {
		return fmt.Errorf("error decoding user id: %w", err)
	}

	unlock := m.locks.lock(roomID)
	defer unlock()

	outcome, err := m.registry.Join(roomID, userID, connectionID)
	if err != nil {
		return fmt.Errorf("error joining room: %w", err)
	}

	m.groups.AddToGroup(connectionID, roomID)

	code := domain.CodeFirstJoin
	if outcome == domain.OutcomeReconnect {
		code = domain.CodeReconnect
	}
	m.presence.BroadcastSystemMessage(roomID, code, userName)
	return nil
}

// HandleLeave removes the connection from the transport group and announces
// the departure. If the leaving user owns the room and the room is not
// permanent, the room is dissolved on the spot. A room that is already gone
// makes the whole call a no-op.
func (m *RoomLifecycleManager) HandleLeave(roomPublicID, userPublicID, userName, connectionID string) error {
	roomID, ok := m.decodeRoom(roomPublicID)
	if !ok {
		return nil
	}
	userID, err := m.codec.Decode(userPublicID)
	if err != nil {
		return fmt.Errorf("error decoding user id: %w", err)
	}

	unlock := m.locks.lock(roomID)
	defer unlock()

	m.groups.RemoveFromGroup(connectionID, roomID)
	m.presence.BroadcastSystemMessage(roomID, domain.CodeLeft, userName)

	room, err := m.repo.GetRoom(roomID)
	if errors.Is(err, ErrNotFound) {
		// Raced with a deletion.
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading room: %w", err)
	}

	if room.OwnerID == userID && !room.IsPermanent {
		return m.deleteLocked(room)
	}
	return nil
}

// Delete removes a room on behalf of its owner or an admin. An unauthorized
// request and a request against a missing room both return nil with no state
// change and no notification; callers cannot tell the two apart, which hides
// room existence from anyone not allowed to act on it.
func (m *RoomLifecycleManager) Delete(roomPublicID, requesterPublicID string, role domain.Role) error {
	roomID, ok := m.decodeRoom(roomPublicID)
	if !ok {
		return nil
	}
	requesterID, err := m.codec.Decode(requesterPublicID)
	if err != nil {
		return fmt.Errorf("error decoding requester id: %w", err)
	}

	unlock := m.locks.lock(roomID)
	defer unlock()

	room, err := m.repo.GetRoom(roomID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading room: %w", err)
	}

	if !m.guard.CanDelete(room, requesterID, role) {
		m.logger.Debug("delete denied",
			slog.Int("roomID", roomID),
			slog.Int("requesterID", requesterID),
			slog.String("role", role.String()))
		return nil
	}
	return m.deleteLocked(room)
}

// HandleDisconnect announces an abrupt disconnect to whatever room the
// connection last belonged to. It never cascades into deletion: an owner's
// non-permanent room survives a dropped socket until an explicit leave or
// delete. An unresolvable connection id is a no-op.
func (m *RoomLifecycleManager) HandleDisconnect(connectionID, subjectName string) error {
	roomID, found, err := m.registry.ResolveRoomByConnection(connectionID)
	if err != nil {
		return fmt.Errorf("error resolving disconnected room: %w", err)
	}
	if !found {
		return nil
	}

	unlock := m.locks.lock(roomID)
	defer unlock()

	m.presence.BroadcastSystemMessage(roomID, domain.CodeDisconnected, subjectName)
	return nil
}

// SendMessage forwards a user-authored message to the room group verbatim.
func (m *RoomLifecycleManager) SendMessage(roomPublicID, senderPublicID, senderName, text string) error {
	roomID, ok := m.decodeRoom(roomPublicID)
	if !ok {
		return nil
	}
	m.presence.BroadcastMessage(roomID, senderPublicID, senderName, text)
	return nil
}

// deleteLocked removes the room and its connection records in one
// transaction, then notifies the group. The caller must hold the room lock.
func (m *RoomLifecycleManager) deleteLocked(room domain.Room) error {
	if err := m.repo.DeleteRoomCascade(room.ID); err != nil {
		return fmt.Errorf("error deleting room %d: %w", room.ID, err)
	}
	m.presence.BroadcastRoomDeleted(room.ID)
	m.logger.Info("room deleted", slog.Int("roomID", room.ID))
	return nil
}

// decodeRoom maps a public room id to its internal id. Malformed ids arrive
// from clients, so they degrade to a no-op instead of an error.
func (m *RoomLifecycleManager) decodeRoom(roomPublicID string) (int, bool) {
	roomID, err := m.codec.Decode(roomPublicID)
	if err != nil {
		m.logger.Debug("ignoring malformed room id", slog.String("roomPublicID", roomPublicID))
		return 0, false
	}
	return roomID, true
}
