package domain

import "time"

// Room is a group-messaging channel. A non-permanent room is dissolved as
// soon as its owner explicitly leaves.
type Room struct {
	ID          int
	Name        string
	OwnerID     int
	IsPermanent bool
	CreatedAt   time.Time
}

func NewRoom(id int, name string, ownerID int, isPermanent bool, createdAt time.Time) Room {
	return Room{
		ID:          id,
		Name:        name,
		OwnerID:     ownerID,
		IsPermanent: isPermanent,
		CreatedAt:   createdAt,
	}
}
