package messages

import (
	"fmt"
	"strings"

	"roomhub/server/domain"
)

// Catalog resolves a system message code plus a subject name into the text
// broadcast to a room group.
type Catalog struct {
	templates map[string]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		templates: map[string]string{
			domain.CodeFirstJoin:    "%s joined the room.",
			domain.CodeDisconnected: "%s lost connection.",
			domain.CodeReconnect:    "%s reconnected.",
			domain.CodeLeft:         "%s left the room.",
			domain.CodeRoomDeleted:  "This room has been deleted by its owner or an administrator.",
		},
	}
}

// Render substitutes the subject name into the template for code. An unknown
// code renders as the code itself so a wiring mistake is visible in the chat
// stream instead of silently dropped.
func (c *Catalog) Render(code, subject string) string {
	template, exists := c.templates[code]
	if !exists {
		return code
	}
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, subject)
	}
	return template
}
