package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.Done()
	})
	return hub
}

func TestHub_PushReachesEveryConnectionOfUser(t *testing.T) {
	hub := startHub(t)

	a := &Client{hub: hub, send: make(chan []byte, 4), userID: 7, logger: zerolog.Nop()}
	b := &Client{hub: hub, send: make(chan []byte, 4), userID: 7, logger: zerolog.Nop()}
	other := &Client{hub: hub, send: make(chan []byte, 4), userID: 8, logger: zerolog.Nop()}
	hub.register <- a
	hub.register <- b
	hub.register <- other

	require.Eventually(t, func() bool { return hub.GetClientsCount(7) == 2 }, time.Second, 10*time.Millisecond)
	assert.True(t, hub.PushToUser(7, EventNotification, map[string]string{"title": "Graded"}))

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.send:
			var ev Event
			require.NoError(t, json.Unmarshal(raw, &ev))
			assert.Equal(t, EventNotification, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
	assert.Len(t, other.send, 0)
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := startHub(t)

	c := &Client{hub: hub, send: make(chan []byte, 1), userID: 3, logger: zerolog.Nop()}
	hub.register <- c
	hub.unregister <- c

	require.Eventually(t, func() bool { return hub.GetClientsCount(3) == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := startHub(t)

	c := &Client{hub: hub, send: make(chan []byte, 1), userID: 5, logger: zerolog.Nop()}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.GetClientsCount(5) == 1 }, time.Second, 10*time.Millisecond)
	hub.PushToUser(5, EventNotification, "one")
	hub.PushToUser(5, EventNotification, "two")

	require.Eventually(t, func() bool { return hub.GetClientsCount(5) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PushSkipsUsersWithoutConnections(t *testing.T) {
	hub := startHub(t)
	assert.False(t, hub.PushToUser(99, EventNotification, "nobody listening"))
}

func TestHub_BroadcastReachesOnlineUserAmongManyRecipients(t *testing.T) {
	hub := startHub(t)

	online := &Client{hub: hub, send: make(chan []byte, 4), userID: 5000, logger: zerolog.Nop()}
	hub.register <- online
	require.Eventually(t, func() bool { return hub.GetClientsCount(5000) == 1 }, time.Second, 10*time.Millisecond)

	msgs := make([]Message, 0, 5000)
	for id := int64(1); id <= 5000; id++ {
		msgs = append(msgs, Message{UserID: id, Data: map[string]int64{"userId": id}})
	}
	assert.Equal(t, 1, hub.PushToUsers(EventNotification, msgs))

	select {
	case raw := <-online.send:
		var ev struct {
			Type string           `json:"type"`
			Data map[string]int64 `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, int64(5000), ev.Data["userId"])
	case <-time.After(time.Second):
		t.Fatal("online user did not receive the broadcast")
	}
}

func TestWritePump_SendsOneFramePerEvent(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &Client{hub: hub, conn: conn, send: make(chan []byte, 4), userID: 1, logger: zerolog.Nop()}
		c.send <- []byte(`{"type":"notification","data":{"title":"Graded"}}`)
		c.send <- []byte(`{"type":"notification","data":{"title":"Broadcast"}}`)
		close(c.send)
		c.writePump()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	titles := []string{}
	for i := 0; i < 2; i++ {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &ev), "frame %q", raw)
		titles = append(titles, ev.Data["title"])
	}
	assert.Equal(t, []string{"Graded", "Broadcast"}, titles)
}

func TestHandler_StreamsEventsToAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)
	handler := NewHandler(hub, nil, zerolog.Nop())

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { c.Set("userID", int64(42)) }, handler.HandleConnection)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.GetClientsCount(42) == 1 }, time.Second, 10*time.Millisecond)
	hub.PushToUser(42, EventNotification, map[string]string{"title": "hello"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, EventNotification, ev.Type)
	assert.Equal(t, "hello", ev.Data["title"])
}

func TestHandler_RequiresUserInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewHub(zerolog.Nop()), nil, zerolog.Nop())

	r := gin.New()
	r.GET("/ws", handler.HandleConnection)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/ws", nil)
	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.org")
	assert.False(t, check(req))

	req.Header.Set("Origin", "http://api.example.com")
	assert.True(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
}
