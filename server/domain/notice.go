package domain

type NoticeKind int

const (
	NoticeMessage NoticeKind = iota
	NoticeSystem
	NoticeRoomDeleted
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeMessage:
		return "message"
	case NoticeSystem:
		return "system"
	case NoticeRoomDeleted:
		return "roomDeleted"
	default:
		return "unknown"
	}
}

// Notice is one outbound payload for every member of a room group.
// SenderID and SenderName are set only for user-authored messages; system
// notices carry resolved text alone.
type Notice struct {
	Kind       NoticeKind
	SenderID   string
	SenderName string
	Text       string
}

func NewChatNotice(senderID, senderName, text string) Notice {
	return Notice{
		Kind:       NoticeMessage,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
	}
}

func NewSystemNotice(text string) Notice {
	return Notice{
		Kind: NoticeSystem,
		Text: text,
	}
}

func NewRoomDeletedNotice(text string) Notice {
	return Notice{
		Kind: NoticeRoomDeleted,
		Text: text,
	}
}

func (n Notice) IsValid() bool {
	switch n.Kind {
	case NoticeMessage:
		return n.SenderName != "" && n.Text != ""
	case NoticeSystem, NoticeRoomDeleted:
		return n.Text != ""
	default:
		return false
	}
}

func (n Notice) String() string {
	if n.Kind == NoticeMessage {
		return n.Kind.String() + ": " + n.SenderName + " - " + n.Text
	}
	return n.Kind.String() + ": " + n.Text
}
