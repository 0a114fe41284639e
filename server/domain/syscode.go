package domain

// System message codes, carried over from the reference message catalogue.
const (
	CodeFirstJoin    = "I001"
	CodeDisconnected = "I002"
	CodeReconnect    = "I003"
	CodeLeft         = "I004"
	CodeRoomDeleted  = "E008"
)
