package usecase

import "roomhub/server/domain"

// AuthorizationGuard decides whether a requester may delete a room. There
// are no partial permissions: the owner and admins may, nobody else.
type AuthorizationGuard struct{}

func (AuthorizationGuard) CanDelete(room domain.Room, requesterID int, role domain.Role) bool {
	return requesterID == room.OwnerID || role == domain.RoleAdmin
}
