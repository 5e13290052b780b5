package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	eventQueueSize = 32
)

var defaultRealtimeTables = []string{
	domain.TableExchangeRates,
	domain.TableWatchlist,
	domain.TableTransactions,
}

type realtimeHandler struct {
	events   portsgw.EventSource
	upgrader websocket.Upgrader
}

// RegisterRealtimeRoutes registers GET /realtime, a websocket streaming
// table changes. Clients pick tables with ?table=a,b.
func RegisterRealtimeRoutes(rg *gin.RouterGroup, events portsgw.EventSource, allowedOrigins []string) {
	h := &realtimeHandler{
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
	rg.GET("/realtime", h.stream)
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

func requestedTables(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultRealtimeTables
	}
	var tables []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(tables, t) {
			tables = append(tables, t)
		}
	}
	return tables
}

// stream godoc
// @Summary Subscribe to table changes
// @Description Upgrades to a websocket and sends one JSON message per change to the selected tables. Changes to per-user tables only reach the users they concern. Clients re-fetch over REST when notified.
// @Tags realtime
// @Param   table query string false "Comma separated tables (default exchange_rates,watchlist,transactions)"
// @Param   access_token query string false "Bearer token for clients that cannot set headers"
// @Success 101
// @Failure 400 {object} map[string]string "No tables requested"
// @Security BearerAuth
// @Router /api/v1/realtime [get]
func (h *realtimeHandler) stream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tables := requestedTables(c.Query("table"))
	if len(tables) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table is required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	queue := make(chan domain.TableChange, eventQueueSize)
	for _, table := range tables {
		unsubscribe, err := h.events.Subscribe(table, func(change domain.TableChange) {
			if !change.VisibleTo(userID) {
				return
			}
			select {
			case queue <- change:
			default:
				logger.Warn("Dropping change for slow websocket client", slog.String("table", change.Table))
			}
		})
		if err != nil {
			logger.Warn("Subscribe failed", slog.String("table", table), slog.String("error", err.Error()))
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
				time.Now().Add(writeWait))
			return
		}
		defer unsubscribe()
	}
	logger.Info("Realtime client subscribed", slog.Any("tables", tables))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			logger.Debug("Realtime client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		case change := <-queue:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(change); err != nil {
				logger.Debug("Realtime write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
