package usecase

import (
	"errors"
	"fmt"

	"roomhub/server/domain"
)

// ConnectionRegistry is the authoritative record of which live connection
// currently belongs to which (room, user) pair.
//
// Leave and disconnect deliberately do not remove Connection rows; only room
// deletion does. The rows double as a "last known room" index for abrupt
// disconnects, at the cost of going stale for users who left a room that
// still exists.
type ConnectionRegistry struct {
	repo Repository
}

func NewConnectionRegistry(repo Repository) *ConnectionRegistry {
	return &ConnectionRegistry{repo: repo}
}

// Join records a live connection for (room, user). The first join of a pair
// creates the record; any later join overwrites the stored connection id, so
// a user opening several windows still counts as one logical presence.
func (r *ConnectionRegistry) Join(roomID, userID int, connectionID string) (domain.JoinOutcome, error) {
	_, err := r.repo.GetConnection(roomID, userID)
	if errors.Is(err, ErrNotFound) {
		conn := domain.NewConnection(roomID, userID, connectionID)
		if err := r.repo.CreateConnection(conn); err != nil {
			return 0, fmt.Errorf("error creating connection record: %w", err)
		}
		return domain.OutcomeFirstJoin, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error looking up connection record: %w", err)
	}

	if err := r.repo.UpdateConnectionID(roomID, userID, connectionID); err != nil {
		return 0, fmt.Errorf("error updating connection record: %w", err)
	}
	return domain.OutcomeReconnect, nil
}

// ResolveRoomByConnection maps a transport connection id back to its room.
// A missing record reports ok=false with no error; the room may simply have
// been deleted already.
func (r *ConnectionRegistry) ResolveRoomByConnection(connectionID string) (int, bool, error) {
	roomID, err := r.repo.GetRoomIDByConnection(connectionID)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("error resolving room for connection: %w", err)
	}
	return roomID, true, nil
}

func (r *ConnectionRegistry) RecordsForRoom(roomID int) ([]domain.Connection, error) {
	conns, err := r.repo.ListConnectionsByRoom(roomID)
	if err != nil {
		return nil, fmt.Errorf("error listing connection records: %w", err)
	}
	return conns, nil
}

// RemoveAllForRoom drops every Connection row for a room. Room deletion uses
// the repository's transactional cascade instead, so this standalone form
// exists for callers that need the connection sweep alone.
func (r *ConnectionRegistry) RemoveAllForRoom(roomID int) error {
	if err := r.repo.DeleteConnectionsByRoom(roomID); err != nil {
		return fmt.Errorf("error removing connection records: %w", err)
	}
	return nil
}
