//go:build unit

package realtime_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"styledecor/internal/domain/user"
	"styledecor/internal/infra/realtime"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, allowed uuid.UUID) (*realtime.Hub, string) {
	t.Helper()
	hub := realtime.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	upgrader := websocket.Upgrader{}
	authorize := func(_ context.Context, _ user.Principal, id uuid.UUID) error {
		if id != allowed {
			return errors.New("forbidden")
		}
		return nil
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		p := user.Principal{Email: "alice@example.com", Role: user.RoleCustomer}
		hub.ServeWS(context.Background(), conn, p, authorize)
	}))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev map[string]any
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	bookingID := uuid.New()
	hub, url := startHub(t, bookingID)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "subscribe", "bookingId": bookingID.String()}))
	ack := readEvent(t, conn)
	assert.Equal(t, "subscribed", ack["type"])
	assert.Equal(t, 1, hub.Subscribers(bookingID))

	hub.Broadcast(bookingID, shared.RealtimeEvent{Type: shared.RealtimeNewMessage, BookingID: bookingID, Payload: "hello"})
	ev := readEvent(t, conn)
	assert.Equal(t, shared.RealtimeNewMessage, ev["type"])
	assert.Equal(t, "hello", ev["payload"])

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "unsubscribe", "bookingId": bookingID.String()}))
	assert.Eventually(t, func() bool { return hub.Subscribers(bookingID) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_RejectsForeignRoom(t *testing.T) {
	hub, url := startHub(t, uuid.New())
	other := uuid.New()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "subscribe", "bookingId": other.String()}))
	ev := readEvent(t, conn)
	assert.Equal(t, "error", ev["type"])
	assert.Equal(t, 0, hub.Subscribers(other))
}

func TestHub_DisconnectLeavesRooms(t *testing.T) {
	bookingID := uuid.New()
	hub, url := startHub(t, bookingID)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "subscribe", "bookingId": bookingID.String()}))
	readEvent(t, conn)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Subscribers(bookingID) == 0 }, 2*time.Second, 10*time.Millisecond)
}
