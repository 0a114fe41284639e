package domain

// Connection links one (room, user) pair to its current live transport
// connection. At most one record exists per (room, user); rejoining from a
// new socket overwrites ConnectionID instead of adding a row.
type Connection struct {
	RoomID       int
	UserID       int
	ConnectionID string
}

func NewConnection(roomID, userID int, connectionID string) Connection {
	return Connection{
		RoomID:       roomID,
		UserID:       userID,
		ConnectionID: connectionID,
	}
}

type JoinOutcome int

const (
	OutcomeFirstJoin JoinOutcome = iota
	OutcomeReconnect
)

func (o JoinOutcome) String() string {
	switch o {
	case OutcomeFirstJoin:
		return "first-join"
	case OutcomeReconnect:
		return "reconnect"
	default:
		return "unknown"
	}
}
