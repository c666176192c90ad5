package integrationtests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"live-auction/internal/broadcast"
	"live-auction/services/auction/helpers"
	"live-auction/services/auction/ws"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, stack testStack, userID, password string) *httptest.ResponseRecorder {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/login", helpers.LoginRequest{UserID: userID, Password: password})
	return w
}

func bid(t *testing.T, stack testStack, itemID int, name, password string, amount int64) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, Name: name, Password: password, Amount: amount,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
}

func toggle(t *testing.T, stack testStack, userID, itemID string, active bool) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/items/"+itemID+"/toggle", map[string]any{
		"userId": userID, "active": active,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
}

func getItem(t *testing.T, stack testStack, itemID string) map[string]any {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, stack.Router, http.MethodGet, "/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return dataOf(t, resp)
}

func TestBiddingFlow(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)

	require.Equal(t, http.StatusOK, login(t, stack, adminUser, "p").Code)
	require.Equal(t, http.StatusOK, login(t, stack, "Alice", "a1").Code)
	toggle(t, stack, adminUser, "1", true)

	bid(t, stack, 1, "Alice", "a1", 100)
	item := getItem(t, stack, "1")
	require.Equal(t, 1.0, item["id"])
	require.Equal(t, 100.0, item["currentPrice"])
	require.Equal(t, "Alice", item["topBidder"])

	// too low: silently dropped
	bid(t, stack, 1, "Alice", "a1", 50)
	item = getItem(t, stack, "1")
	require.Equal(t, 100.0, item["currentPrice"])
	require.Equal(t, "Alice", item["topBidder"])

	bid(t, stack, 1, "Bob", "b1", 150)
	item = getItem(t, stack, "1")
	require.Equal(t, 150.0, item["currentPrice"])
	require.Equal(t, "Bob", item["topBidder"])

	resp, w := ExecuteRequestAndParse(t, stack.Router, http.MethodGet, "/items/1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids, ok := resp["data"].([]any)
	require.True(t, ok)
	require.Len(t, bids, 2)

	first := bids[0].(map[string]any)
	second := bids[1].(map[string]any)
	require.Equal(t, "Bob", first["name"])
	require.Equal(t, 150.0, first["amount"])
	require.Equal(t, "Alice", second["name"])
	require.Equal(t, 100.0, second["amount"])
	require.NotEqual(t, first["id"], second["id"])
}

func TestBidOnInactiveItemIsIgnored(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)
	bid(t, stack, 2, "Alice", "a1", 100)

	item := getItem(t, stack, "2")
	require.Equal(t, 0.0, item["currentPrice"])
	require.Equal(t, "", item["topBidder"])
	require.False(t, item["active"].(bool))
	require.Equal(t, 2.0, item["id"])
}

func TestNonAdminCannotStartAll(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)
	require.Equal(t, http.StatusOK, login(t, stack, "Alice", "a1").Code)

	sub := stack.Service.Connect()
	defer stack.Service.Disconnect(sub)
	<-sub.Events() // init

	_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/auctions/start", helpers.AdminRequest{UserID: "Alice"})
	require.Equal(t, http.StatusAccepted, w.Code)

	for _, item := range stack.Service.Snapshot().Items {
		require.False(t, item.Active)
	}
	select {
	case e := <-sub.Events():
		t.Fatalf("unexpected broadcast %q", e.Type)
	default:
	}
}

func TestAdminStartAndStopAll(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)

	_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/auctions/start", helpers.AdminRequest{UserID: adminUser})
	require.Equal(t, http.StatusAccepted, w.Code)
	for _, item := range stack.Service.Snapshot().Items {
		require.True(t, item.Active)
	}

	_, w = ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/auctions/stop", helpers.AdminRequest{UserID: adminUser})
	require.Equal(t, http.StatusAccepted, w.Code)
	for _, item := range stack.Service.Snapshot().Items {
		require.False(t, item.Active)
	}
}

func TestPasswordIsFixedAtFirstUse(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)

	require.Equal(t, http.StatusOK, login(t, stack, "Alice", "a1").Code)
	require.Equal(t, http.StatusUnauthorized, login(t, stack, "Alice", "other").Code)
	require.Equal(t, http.StatusOK, login(t, stack, "Alice", "a1").Code)
}

func TestLoginReportsAdmin(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)

	resp, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/login", helpers.LoginRequest{UserID: adminUser, Password: "p"})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, resp)
	require.Equal(t, true, data["success"])
	require.Equal(t, true, data["isAdmin"])

	resp, w = ExecuteRequestAndParse(t, stack.Router, http.MethodPost, "/login", helpers.LoginRequest{UserID: "Alice", Password: "a1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, dataOf(t, resp)["isAdmin"])
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		category   string
		body       any
		wantStatus int
		wantItems  int
	}{
		{
			name:       "Admin_Grows_Category",
			category:   "Blue",
			body:       map[string]any{"userId": adminUser, "count": 4},
			wantStatus: http.StatusOK,
			wantItems:  6,
		},
		{
			name:       "Admin_Adds_Category",
			category:   "Ember",
			body:       map[string]any{"userId": adminUser, "count": 1},
			wantStatus: http.StatusOK,
			wantItems:  4,
		},
		{
			name:       "Non_Admin",
			category:   "Blue",
			body:       map[string]any{"userId": "Alice", "count": 4},
			wantStatus: http.StatusForbidden,
			wantItems:  3,
		},
		{
			name:       "Count_Out_Of_Range",
			category:   "Blue",
			body:       map[string]any{"userId": adminUser, "count": 101},
			wantStatus: http.StatusBadRequest,
			wantItems:  3,
		},
		{
			name:       "Fractional_Count",
			category:   "Blue",
			body:       map[string]any{"userId": adminUser, "count": 2.5},
			wantStatus: http.StatusBadRequest,
			wantItems:  3,
		},
		{
			name:       "Non_Admin_Non_Numeric_Count",
			category:   "Blue",
			body:       map[string]any{"userId": "Alice", "count": "abc"},
			wantStatus: http.StatusForbidden,
			wantItems:  3,
		},
		{
			name:       "Missing_Count",
			category:   "Blue",
			body:       map[string]any{"userId": adminUser},
			wantStatus: http.StatusBadRequest,
			wantItems:  3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stack := SetupTestStack(t)
			_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodPut, "/categories/"+tt.category, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)

			resp, w := ExecuteRequestAndParse(t, stack.Router, http.MethodGet, "/items", nil)
			require.Equal(t, http.StatusOK, w.Code)
			items, ok := dataOf(t, resp)["items"].(map[string]any)
			require.True(t, ok)
			require.Len(t, items, tt.wantItems)
		})
	}
}

func TestReadHandlers_NotFound(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "Unknown_Item", url: "/items/99", wantStatus: http.StatusNotFound},
		{name: "Unknown_Item_Bids", url: "/items/99/bids", wantStatus: http.StatusNotFound},
		{name: "Malformed_Item_ID", url: "/items/abc", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, stack.Router, http.MethodGet, tt.url, nil)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHTTPBidReachesWebsocketObservers(t *testing.T) {
	t.Parallel()

	stack := SetupTestStack(t)
	srv := httptest.NewServer(stack.Router)
	t.Cleanup(srv.Close)

	alice := DialObserver(t, srv)
	bob := DialObserver(t, srv)

	require.NoError(t, alice.WriteJSON(map[string]any{
		"event": ws.RequestToggleAuction,
		"data":  map[string]any{"userId": adminUser, "itemId": 3, "active": true},
	}))
	toggled := ReadEvent(t, bob, broadcast.EventToggleAuction)
	require.Equal(t, 3.0, dataOf(t, toggled)["itemId"])
	require.Equal(t, true, dataOf(t, toggled)["active"])

	bid(t, stack, 3, "Carol", "c1", 42)

	for _, conn := range []*websocket.Conn{alice, bob} {
		frame := ReadEvent(t, conn, broadcast.EventUpdate)
		data := dataOf(t, frame)
		require.Equal(t, 3.0, data["itemId"])
		item := data["data"].(map[string]any)
		require.Equal(t, 42.0, item["currentPrice"])
		require.Equal(t, "Carol", item["topBidder"])
	}
}
