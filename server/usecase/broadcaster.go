package usecase

import "roomhub/server/domain"

// PresenceBroadcaster emits room-group notifications: user-authored messages
// verbatim and system notices resolved through the template service. Fanout
// completes before any of these methods return, so notifications keep their
// order relative to later steps of the same handler.
type PresenceBroadcaster struct {
	templates TemplateService
	groups    GroupTransport
}

func NewPresenceBroadcaster(templates TemplateService, groups GroupTransport) *PresenceBroadcaster {
	return &PresenceBroadcaster{
		templates: templates,
		groups:    groups,
	}
}

// BroadcastMessage forwards a user-authored message to the room group.
// No content filtering.
func (b *PresenceBroadcaster) BroadcastMessage(roomID int, senderID, senderName, text string) {
	b.groups.SendToGroup(roomID, domain.NewChatNotice(senderID, senderName, text))
}

func (b *PresenceBroadcaster) BroadcastSystemMessage(roomID int, code, subject string) {
	text := b.templates.Render(code, subject)
	b.groups.SendToGroup(roomID, domain.NewSystemNotice(text))
}

func (b *PresenceBroadcaster) BroadcastRoomDeleted(roomID int) {
	text := b.templates.Render(domain.CodeRoomDeleted, "")
	b.groups.SendToGroup(roomID, domain.NewRoomDeletedNotice(text))
}
