package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forklift_tracker/internal/telemetry"
)

func (h *LiveHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func TestLiveHubBroadcastReachesSubscriber(t *testing.T) {
	hub := NewLiveHub()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.register(conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.clientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	hub.PublishUpdate(telemetry.LiveUpdate{ForkliftID: "FL-009", BatteryLevel: 77})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got telemetry.LiveUpdate
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "FL-009", got.ForkliftID)
	assert.Equal(t, 77.0, got.BatteryLevel)
}

func TestLiveHubPublishNeverBlocks(t *testing.T) {
	// No subscribers and a full broadcast channel must not stall ingest.
	hub := NewLiveHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.PublishUpdate(telemetry.LiveUpdate{ForkliftID: "FL-001"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PublishUpdate blocked")
	}
}

func TestLiveHubUnregisterIsIdempotent(t *testing.T) {
	hub := NewLiveHub()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.register(conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.clientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	var serverConn *websocket.Conn
	hub.mu.Lock()
	for c := range hub.clients {
		serverConn = c
	}
	hub.mu.Unlock()

	// The writer goroutine and the handler both unregister on teardown;
	// the second call must be a no-op, not a double close.
	hub.unregister(serverConn)
	hub.unregister(serverConn)

	assert.Equal(t, 0, hub.clientCount())
}
