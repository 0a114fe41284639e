package adaptor

import "roomhub/server/domain"

type Usecase interface {
	HandleJoin(roomPublicID, userPublicID, userName, connectionID string) error
	HandleLeave(roomPublicID, userPublicID, userName, connectionID string) error
	Delete(roomPublicID, requesterPublicID string, role domain.Role) error
	HandleDisconnect(connectionID, subjectName string) error
	SendMessage(roomPublicID, senderPublicID, senderName, text string) error
}
