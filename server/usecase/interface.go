package usecase

import (
	"errors"

	"roomhub/server/domain"
)

// ErrNotFound is returned by Repository implementations when a row does not
// exist. Callers distinguish it with errors.Is; most lifecycle paths treat
// it as a silent no-op.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// Room
	GetRoom(roomID int) (domain.Room, error)
	CreateRoom(name string, ownerID int, isPermanent bool) (int, error)
	// DeleteRoomCascade removes the room and every Connection row belonging
	// to it in a single transaction.
	DeleteRoomCascade(roomID int) error

	// Connection
	GetConnection(roomID, userID int) (domain.Connection, error)
	CreateConnection(conn domain.Connection) error
	UpdateConnectionID(roomID, userID int, connectionID string) error
	GetRoomIDByConnection(connectionID string) (int, error)
	ListConnectionsByRoom(roomID int) ([]domain.Connection, error)
	DeleteConnectionsByRoom(roomID int) error
}

// IdCodec is the reversible public-id <-> internal-id mapping.
type IdCodec interface {
	Encode(id int) (string, error)
	Decode(publicID string) (int, error)
}

// TemplateService resolves a system message code and subject name to text.
type TemplateService interface {
	Render(code, subject string) string
}

// GroupTransport is the room-group fanout surface of the transport layer.
type GroupTransport interface {
	AddToGroup(connectionID string, roomID int)
	RemoveFromGroup(connectionID string, roomID int)
	SendToGroup(roomID int, notice domain.Notice)
}
