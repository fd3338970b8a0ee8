package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestHub starts a hub and an HTTP server that subscribes every
// connection to the category given in the "category" query parameter.
func newTestHub(t *testing.T) (*Hub, context.CancelFunc, string) {
	t.Helper()

	hub := NewHub(discard)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		categoryID := 0
		if r.URL.Query().Get("category") == "2" {
			categoryID = 2
		}
		client := &Client{Hub: hub, Conn: conn, CategoryID: categoryID, Send: make(chan []byte, 16)}
		if !hub.Register(client) {
			conn.Close()
			return
		}
		go client.ReadPump()
		go client.WritePump()
	}))
	t.Cleanup(srv.Close)

	return hub, cancel, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastFiltersByCategory(t *testing.T) {
	hub, _, url := newTestHub(t)

	all := dial(t, url)
	art := dial(t, url+"?category=2")
	waitForClients(t, hub, 2)

	hub.Broadcast(1, MessageQuestionCreated, []byte(`{"id":1}`))
	hub.Broadcast(2, MessageQuestionDeleted, []byte(`{"id":2}`))

	var msg Message
	require.NoError(t, all.ReadJSON(&msg))
	assert.Equal(t, MessageQuestionCreated, msg.Type)
	assert.JSONEq(t, `{"id":1}`, string(msg.Payload))

	require.NoError(t, all.ReadJSON(&msg))
	assert.Equal(t, MessageQuestionDeleted, msg.Type)

	// The category 2 subscriber never sees the category 1 event
	require.NoError(t, art.ReadJSON(&msg))
	assert.Equal(t, MessageQuestionDeleted, msg.Type)
	assert.JSONEq(t, `{"id":2}`, string(msg.Payload))
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub, _, url := newTestHub(t)

	conn := dial(t, url)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub, cancel, url := newTestHub(t)

	conn := dial(t, url)
	waitForClients(t, hub, 1)

	cancel()
	waitForClients(t, hub, 0)

	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	assert.False(t, hub.Register(&Client{Hub: hub, Send: make(chan []byte)}))
}
