package realtime

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newHubServer(t *testing.T, origins ...string) (*Hub, string) {
	t.Helper()

	hub := NewHub(slogdiscard.NewDiscardLogger(), origins)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "admin")
	}))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Clients() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastsToAllClients(t *testing.T) {
	hub, url := newHubServer(t)

	a := dial(t, url, nil)
	b := dial(t, url, nil)
	waitClients(t, hub, 2)

	require.NoError(t, hub.Publish(context.Background(), events.New(events.BookingCreated, "booking", 42, nil)))

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))

		var got events.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, events.BookingCreated, got.Type)
		assert.EqualValues(t, 42, got.ResourceID)
	}
}

func TestHub_Ping(t *testing.T) {
	hub, url := newHubServer(t)

	conn := dial(t, url, nil)
	waitClients(t, hub, 1)

	require.NoError(t, conn.WriteJSON(map[string]string{"action": "PING"}))
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))

	var got map[string]any
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "system.pong", got["type"])
}

func TestHub_DetachesClosedClients(t *testing.T) {
	hub, url := newHubServer(t)

	conn := dial(t, url, nil)
	waitClients(t, hub, 1)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	waitClients(t, hub, 0)
}

func TestHub_CloseRejectsNewClients(t *testing.T) {
	hub, url := newHubServer(t)

	conn := dial(t, url, nil)
	waitClients(t, hub, 1)

	hub.Close()
	assert.Equal(t, 0, hub.Clients())

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_OriginCheck(t *testing.T) {
	_, url := newHubServer(t, "https://admin.debaren.com")

	allowed := http.Header{"Origin": []string{"https://admin.debaren.com"}}
	dial(t, url, allowed)

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestEvent_JSONShape(t *testing.T) {
	raw, err := json.Marshal(events.Changed("venues", "delete", 5))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "content.changed", m["type"])
	assert.Equal(t, "delete", m["action"])
	assert.NotContains(t, m, "data")
}
