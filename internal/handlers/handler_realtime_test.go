package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/adapters/realtime"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/SscSPs/fx_wallet_backend/internal/handlers"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealtimeServer(t *testing.T, origins []string) (*httptest.Server, *realtime.Broker) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	broker := realtime.NewBroker()
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterRealtimeRoutes(v1, broker, origins)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, broker
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/realtime?" + query
}

func waitForSubscribers(t *testing.T, broker *realtime.Broker, table string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return broker.Subscribers(table) == n }, time.Second, 5*time.Millisecond)
}

func TestRealtime_StreamsSelectedTable(t *testing.T) {
	srv, broker := newRealtimeServer(t, nil)
	token, err := generateTestToken("user-1")
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "table=exchange_rates&access_token="+token), nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForSubscribers(t, broker, domain.TableExchangeRates, 1)
	assert.Equal(t, 0, broker.Subscribers(domain.TableWatchlist))

	// Not subscribed; must not arrive before the rate change.
	require.NoError(t, broker.Publish(context.Background(), domain.TableChange{Table: domain.TableWatchlist, Operation: domain.ChangeInsert, Audience: []string{"user-1"}}))
	require.NoError(t, broker.Publish(context.Background(), domain.TableChange{
		Table:     domain.TableExchangeRates,
		Operation: domain.ChangeUpsert,
		Key:       "EUR",
	}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got domain.TableChange
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, domain.TableExchangeRates, got.Table)
	assert.Equal(t, domain.ChangeUpsert, got.Operation)
	assert.Equal(t, "EUR", got.Key)
}

func TestRealtime_HidesOtherUsersChanges(t *testing.T) {
	srv, broker := newRealtimeServer(t, nil)
	token, err := generateTestToken("user-b")
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "table=watchlist,transactions&access_token="+token), nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForSubscribers(t, broker, domain.TableWatchlist, 1)
	waitForSubscribers(t, broker, domain.TableTransactions, 1)

	ctx := context.Background()
	require.NoError(t, broker.Publish(ctx, domain.TableChange{Table: domain.TableWatchlist, Operation: domain.ChangeInsert, Key: "USD-EUR", Audience: []string{"user-a"}}))
	require.NoError(t, broker.Publish(ctx, domain.TableChange{Table: domain.TableTransactions, Operation: domain.ChangeInsert, Key: "txn-1", Audience: []string{"user-a", "user-c"}}))
	require.NoError(t, broker.Publish(ctx, domain.TableChange{Table: domain.TableWatchlist, Operation: domain.ChangeDelete}))
	require.NoError(t, broker.Publish(ctx, domain.TableChange{Table: domain.TableTransactions, Operation: domain.ChangeInsert, Key: "txn-2", Audience: []string{"user-a", "user-b"}}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got domain.TableChange
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, domain.TableTransactions, got.Table)
	assert.Equal(t, "txn-2", got.Key)

	_ = conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	assert.Error(t, conn.ReadJSON(&got), "no further changes are visible to user-b")
}

func TestRealtime_UnsubscribesOnClose(t *testing.T) {
	srv, broker := newRealtimeServer(t, nil)
	token, err := generateTestToken("user-1")
	require.NoError(t, err)

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), header)
	require.NoError(t, err)

	for _, table := range []string{domain.TableExchangeRates, domain.TableWatchlist, domain.TableTransactions} {
		waitForSubscribers(t, broker, table, 1)
	}

	require.NoError(t, conn.Close())
	waitForSubscribers(t, broker, domain.TableExchangeRates, 0)
	waitForSubscribers(t, broker, domain.TableTransactions, 0)
}

func TestRealtime_RejectsMissingToken(t *testing.T) {
	srv, _ := newRealtimeServer(t, nil)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "table=watchlist"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRealtime_RejectsForeignOrigin(t *testing.T) {
	srv, _ := newRealtimeServer(t, []string{"https://dashboard.example.com"})
	token, err := generateTestToken("user-1")
	require.NoError(t, err)

	header := http.Header{
		"Authorization": []string{"Bearer " + token},
		"Origin":        []string{"https://evil.example.com"},
	}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
