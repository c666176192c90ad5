package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/broadcast"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/internal/server"
	"live-auction/services/auction/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const adminUser = "Ocean"

// testCategories is a small catalog: Core items are 1-2, Blue item is 3
var testCategories = model.CategoryConfig{
	{Name: "Core", Count: 2},
	{Name: "Blue", Count: 1},
}

// testStack bundles the wired components of one in-memory server
type testStack struct {
	Router  *gin.Engine
	Service *bidding.AuctionService
	Hub     *broadcast.Hub
}

// SetupTestStack wires the full application the way main does, with in-memory state.
func SetupTestStack(t *testing.T) testStack {
	t.Helper()

	gin.SetMode(gin.TestMode)
	users := repository.NewMemoryUserRepo(adminUser)
	hub := broadcast.NewHub(256)
	svc := bidding.NewAuctionService(users, hub, testCategories)

	router := server.SetupRouter(server.Dependencies{
		Service:        svc,
		Hub:            hub,
		Users:          users,
		WSOptions:      ws.DefaultOptions(),
		AllowedOrigins: []string{"*"},
	})
	t.Cleanup(hub.Close)

	return testStack{Router: router, Service: svc, Hub: hub}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// DialObserver opens a websocket session against srv and consumes its init snapshot.
func DialObserver(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ReadEvent(t, conn, broadcast.EventInit)
	return conn
}

// ReadEvent reads frames until one of the given type arrives
func ReadEvent(t *testing.T, conn *websocket.Conn, eventType string) map[string]any {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		var frame map[string]any
		require.NoError(t, conn.ReadJSON(&frame), "waiting for %q", eventType)
		if frame["event"] == eventType {
			return frame
		}
	}
}

// dataOf returns the "data" object of a response or frame
func dataOf(t *testing.T, m map[string]any) map[string]any {
	t.Helper()
	data, ok := m["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", m["data"])
	return data
}
