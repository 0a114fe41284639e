package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomhub/server/domain"
	"roomhub/server/usecase"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) usecase.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetRoom(roomID int) (domain.Room, error) {
	query := "SELECT id, name, owner_id, is_permanent, created_at FROM rooms WHERE id = ?"
	var (
		id, ownerID int
		name        string
		isPermanent bool
		createdAt   time.Time
	)
	if err := r.db.QueryRow(query, roomID).Scan(&id, &name, &ownerID, &isPermanent, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, usecase.ErrNotFound
		}
		return domain.Room{}, fmt.Errorf("error querying room %d: %w", roomID, err)
	}
	return domain.NewRoom(id, name, ownerID, isPermanent, createdAt), nil
}

func (r *Repository) CreateRoom(name string, ownerID int, isPermanent bool) (int, error) {
	query := "INSERT INTO rooms (name, owner_id, is_permanent, created_at) VALUES (?, ?, ?, ?)"
	result, err := r.db.Exec(query, name, ownerID, isPermanent, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to insert room '%s': %w", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new room id: %w", err)
	}
	return int(id), nil
}

// DeleteRoomCascade removes the room row and all of its connection rows in
// one transaction so a failure leaves the room fully intact.
func (r *Repository) DeleteRoomCascade(roomID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := "DELETE FROM rooms WHERE id = ?"
	if _, err := tx.Exec(query, roomID); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomID, err)
	}
	query = "DELETE FROM connections WHERE room_id = ?"
	if _, err := tx.Exec(query, roomID); err != nil {
		return fmt.Errorf("failed to delete connections for room %d: %w", roomID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetConnection(roomID, userID int) (domain.Connection, error) {
	query := "SELECT room_id, user_id, connection_id FROM connections WHERE room_id = ? AND user_id = ?"
	var (
		gotRoomID, gotUserID int
		connectionID         string
	)
	if err := r.db.QueryRow(query, roomID, userID).Scan(&gotRoomID, &gotUserID, &connectionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Connection{}, usecase.ErrNotFound
		}
		return domain.Connection{}, fmt.Errorf("error querying connection (%d, %d): %w", roomID, userID, err)
	}
	return domain.NewConnection(gotRoomID, gotUserID, connectionID), nil
}

func (r *Repository) CreateConnection(conn domain.Connection) error {
	query := "INSERT INTO connections (room_id, user_id, connection_id, updated_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.Exec(query, conn.RoomID, conn.UserID, conn.ConnectionID, time.Now()); err != nil {
		return fmt.Errorf("failed to insert connection (%d, %d): %w", conn.RoomID, conn.UserID, err)
	}
	return nil
}

func (r *Repository) UpdateConnectionID(roomID, userID int, connectionID string) error {
	query := "UPDATE connections SET connection_id = ?, updated_at = ? WHERE room_id = ? AND user_id = ?"
	if _, err := r.db.Exec(query, connectionID, time.Now(), roomID, userID); err != nil {
		return fmt.Errorf("failed to update connection (%d, %d): %w", roomID, userID, err)
	}
	return nil
}

func (r *Repository) GetRoomIDByConnection(connectionID string) (int, error) {
	query := "SELECT room_id FROM connections WHERE connection_id = ? LIMIT 1"
	var roomID int
	if err := r.db.QueryRow(query, connectionID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, usecase.ErrNotFound
		}
		return 0, fmt.Errorf("error querying room for connection %s: %w", connectionID, err)
	}
	return roomID, nil
}

func (r *Repository) ListConnectionsByRoom(roomID int) ([]domain.Connection, error) {
	query := "SELECT room_id, user_id, connection_id FROM connections WHERE room_id = ?"
	rows, err := r.db.Query(query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections for room %d: %w", roomID, err)
	}
	defer rows.Close()

	var conns []domain.Connection
	for rows.Next() {
		var (
			gotRoomID, userID int
			connectionID      string
		)
		if err := rows.Scan(&gotRoomID, &userID, &connectionID); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		conns = append(conns, domain.NewConnection(gotRoomID, userID, connectionID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over connections for room %d: %w", roomID, err)
	}
	return conns, nil
}

func (r *Repository) DeleteConnectionsByRoom(roomID int) error {
	query := "DELETE FROM connections WHERE room_id = ?"
	if _, err := r.db.Exec(query, roomID); err != nil {
		return fmt.Errorf("failed to delete connections for room %d: %w", roomID, err)
	}
	return nil
}
