package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"kings-valley/internal/room"
	"kings-valley/internal/shared"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// client is one websocket connection. Only writePump writes to conn.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the live connections, turns inbound frames into RoomManager calls
// and implements room.Broadcaster for the outbound side.
type Hub struct {
	mu          sync.RWMutex
	clients     map[string]*client
	roomManager RoomManager
	upgrader    websocket.Upgrader
}

func NewHub(roomManager RoomManager, allowedOrigins []string) *Hub {
	h := &Hub{
		clients:     make(map[string]*client),
		roomManager: roomManager,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // non-browser client
		}
		_, ok := set[origin]
		return ok
	}
}

// HandleWS upgrades the request and serves the connection until it closes.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("origin", c.GetHeader("Origin")).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.register(cl)
	log.Debug().Str("conn", cl.id).Str("remote", c.ClientIP()).Msg("new connection")

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[cl.id] = cl
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl.id]; ok {
		delete(h.clients, cl.id)
		close(cl.send)
	}
}

// ClientCount returns the number of open connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) readPump(cl *client) {
	defer func() {
		// Seat release must happen before the connection disappears from the hub
		// so the peer still receives playerLeft.
		h.roomManager.Leave(cl.id)
		h.unregister(cl)
		_ = cl.conn.Close()
		log.Debug().Str("conn", cl.id).Msg("connection closed")
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("conn", cl.id).Msg("read failed")
			}
			return
		}

		var msg shared.Envelope
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.reply(cl, "malformed message")
			continue
		}
		h.dispatch(cl, msg)
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Err(err).Str("conn", cl.id).Msg("write failed")
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dispatch handles one inbound action. A panic is logged and answered with an
// error to the sender; it never reaches other connections or rooms.
func (h *Hub) dispatch(cl *client, msg shared.Envelope) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("conn", cl.id).Str("action", msg.Action).Msg("recovered while handling message")
			h.reply(cl, "internal error")
		}
	}()

	switch msg.Action {
	case shared.ActionJoin:
		var code string
		if err := json.Unmarshal(msg.Data, &code); err != nil {
			h.reply(cl, room.ErrInvalidRoomCode.Error())
			return
		}
		if _, err := h.roomManager.Join(code, cl.id); err != nil {
			h.reply(cl, err.Error())
		}

	case shared.ActionMove:
		var req shared.MoveRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil || !req.Complete() {
			h.reply(cl, room.ErrIllegalMove.Error())
			return
		}
		if _, err := h.roomManager.Move(cl.id, *req.From, *req.To); err != nil {
			h.reply(cl, err.Error())
		}

	default:
		log.Debug().Str("conn", cl.id).Str("action", msg.Action).Msg("unknown action")
		h.reply(cl, "unknown action")
	}
}

// Broadcast implements room.Broadcaster. Connections that are gone are skipped.
func (h *Hub) Broadcast(connIDs []string, action string, data interface{}) {
	if h == nil {
		return
	}
	msg, err := encode(action, data)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range connIDs {
		if cl, ok := h.clients[id]; ok {
			h.enqueue(cl, msg)
		}
	}
}

// reply sends an error event to cl only. Called from cl's own read loop, so
// cl.send is still open.
func (h *Hub) reply(cl *client, message string) {
	msg, err := encode(shared.EventError, message)
	if err != nil {
		return
	}
	h.enqueue(cl, msg)
}

func (h *Hub) enqueue(cl *client, msg []byte) {
	select {
	case cl.send <- msg:
	default:
		// Full queue: drop the client, its read loop will release the seat.
		log.Warn().Str("conn", cl.id).Msg("slow consumer, closing connection")
		_ = cl.conn.Close()
	}
}

func encode(action string, data interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"action": action,
		"data":   data,
	})
}
