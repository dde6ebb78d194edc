package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"styledecor/internal/domain/user"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 64
)

const (
	actionSubscribe   = "subscribe"
	actionUnsubscribe = "unsubscribe"
	eventSubscribed   = "subscribed"
	eventError        = "error"
)

// Authorizer decides whether a principal may join a booking room.
type Authorizer func(ctx context.Context, p user.Principal, bookingID uuid.UUID) error

type clientFrame struct {
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
}

type client struct {
	principal user.Principal
	conn      *websocket.Conn
	send      chan []byte
}

// Hub fans booking events out to the clients subscribed to each room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[uuid.UUID]map[*client]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[uuid.UUID]map[*client]struct{}),
		logger: logger,
	}
}

func (h *Hub) Broadcast(bookingID uuid.UUID, ev shared.RealtimeEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Warn("failed to encode realtime event", "type", ev.Type, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[bookingID] {
		select {
		case c.send <- data:
		default:
			h.logger.Debug("dropping realtime event for slow client", "email", c.principal.Email)
		}
	}
}

// Subscribers reports how many clients are in a booking room.
func (h *Hub) Subscribers(bookingID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[bookingID])
}

// ServeWS runs the connection until the client goes away.
func (h *Hub) ServeWS(ctx context.Context, conn *websocket.Conn, p user.Principal, authorize Authorizer) {
	c := &client{principal: p, conn: conn, send: make(chan []byte, sendBuffer)}
	done := make(chan struct{})
	go h.writePump(c, done)
	h.readPump(ctx, c, authorize)
	close(done)
}

func (h *Hub) join(bookingID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[bookingID]
	if !ok {
		members = make(map[*client]struct{})
		h.rooms[bookingID] = members
	}
	members[c] = struct{}{}
}

func (h *Hub) leave(bookingID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members := h.rooms[bookingID]
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, bookingID)
	}
}

func (h *Hub) leaveAll(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, id)
		}
	}
}

func (h *Hub) readPump(ctx context.Context, c *client, authorize Authorizer) {
	defer func() {
		h.leaveAll(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed", "email", c.principal.Email, "error", err)
			}
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}
		bookingID, err := uuid.Parse(frame.BookingID)
		if err != nil {
			h.reply(c, shared.RealtimeEvent{Type: eventError, Payload: "invalid bookingId"})
			continue
		}

		switch frame.Type {
		case actionSubscribe:
			if err := authorize(ctx, c.principal, bookingID); err != nil {
				h.reply(c, shared.RealtimeEvent{Type: eventError, BookingID: bookingID, Payload: "forbidden"})
				continue
			}
			h.join(bookingID, c)
			h.reply(c, shared.RealtimeEvent{Type: eventSubscribed, BookingID: bookingID})
		case actionUnsubscribe:
			h.leave(bookingID, c)
		}
	}
}

func (h *Hub) reply(c *client, ev shared.RealtimeEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (h *Hub) writePump(c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
