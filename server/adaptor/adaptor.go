package adaptor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"nhooyr.io/websocket"

	"roomhub/server/auth"
	"roomhub/server/domain"
)

const outboundBuffer = 64

// ClientFrame is one inbound operation on the socket.
type ClientFrame struct {
	Type string `json:"type"` // join | leave | chat | delete
	Room string `json:"room"` // public room id
	Text string `json:"text,omitempty"`
}

// ServerFrame is one outbound notification.
type ServerFrame struct {
	Type string `json:"type"` // message | system | roomDeleted
	UID  string `json:"uid,omitempty"`
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

func toServerFrame(n domain.Notice) ServerFrame {
	return ServerFrame{
		Type: n.Kind.String(),
		UID:  n.SenderID,
		Name: n.SenderName,
		Text: n.Text,
	}
}

// frameAllowed is the role gate checked at the top of every dispatch. Any
// authenticated role may join, leave and chat; deletion needs a registered
// user or an admin.
func frameAllowed(frameType string, role domain.Role) bool {
	switch frameType {
	case "join", "leave", "chat":
		return true
	case "delete":
		return role == domain.RoleUser || role == domain.RoleAdmin
	default:
		return false
	}
}

// Hub is the websocket edge. It authenticates each socket, mints its
// connection id, pumps outbound notices and dispatches inbound frames to the
// usecase layer.
type Hub struct {
	uc     Usecase
	groups *domain.Groups
	tokens *auth.Tokens
	logger *slog.Logger
}

func NewHub(uc Usecase, groups *domain.Groups, tokens *auth.Tokens, logger *slog.Logger) *Hub {
	return &Hub{
		uc:     uc,
		groups: groups,
		tokens: tokens,
		logger: logger.With(slog.String("component", "hub")),
	}
}

// ServeWS upgrades the request, authenticates it and runs the connection
// until the socket closes. The disconnect notification fires on every exit
// path, including after an explicit leave.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokens.Verify(bearerToken(r))
	if err != nil {
		h.logger.Debug("rejected connection", slog.Any("error", err))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Error("websocket accept failed", slog.Any("error", err))
		return
	}

	connectionID := ulid.Make().String()
	out := make(chan domain.Notice, outboundBuffer)
	h.groups.Register(connectionID, out)

	h.logger.Info("connection opened",
		slog.String("connectionID", connectionID),
		slog.String("uid", identity.UserID),
		slog.String("role", identity.Role.String()))

	ctx, cancel := context.WithCancel(r.Context())
	go h.writeLoop(ctx, ws, out)

	h.readLoop(ctx, ws, identity, connectionID)
	cancel()

	h.groups.Unregister(connectionID)
	if err := h.uc.HandleDisconnect(connectionID, identity.Name); err != nil {
		h.logger.Error("error handling disconnect",
			slog.String("connectionID", connectionID), slog.Any("error", err))
	}
	ws.Close(websocket.StatusNormalClosure, "")
	h.logger.Info("connection closed", slog.String("connectionID", connectionID))
}

func (h *Hub) readLoop(ctx context.Context, ws *websocket.Conn, identity auth.Identity, connectionID string) {
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			return
		}
		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.logger.Debug("ignoring malformed frame", slog.String("connectionID", connectionID))
			continue
		}
		h.dispatch(frame, identity, connectionID)
	}
}

func (h *Hub) dispatch(frame ClientFrame, identity auth.Identity, connectionID string) {
	if !frameAllowed(frame.Type, identity.Role) {
		h.logger.Debug("frame not allowed",
			slog.String("type", frame.Type),
			slog.String("role", identity.Role.String()))
		return
	}

	var err error
	switch frame.Type {
	case "join":
		err = h.uc.HandleJoin(frame.Room, identity.UserID, identity.Name, connectionID)
	case "leave":
		err = h.uc.HandleLeave(frame.Room, identity.UserID, identity.Name, connectionID)
	case "chat":
		err = h.uc.SendMessage(frame.Room, identity.UserID, identity.Name, frame.Text)
	case "delete":
		err = h.uc.Delete(frame.Room, identity.UserID, identity.Role)
	}
	if err != nil {
		h.logger.Error("error handling frame",
			slog.String("type", frame.Type),
			slog.String("connectionID", connectionID),
			slog.Any("error", err))
	}
}

func (h *Hub) writeLoop(ctx context.Context, ws *websocket.Conn, out <-chan domain.Notice) {
	ticker := time.NewTicker(20 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case notice := <-out:
			data, err := json.Marshal(toServerFrame(notice))
			if err != nil {
				continue
			}
			if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := ws.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// bearerToken pulls the JWT from the Authorization header or, for browser
// clients that cannot set headers on websocket dials, the token query param.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
