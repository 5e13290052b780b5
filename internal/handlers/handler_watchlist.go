package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/dto"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type watchlistHandler struct {
	watchlistService portssvc.WatchlistSvcFacade
}

// RegisterWatchlistRoutes registers the watchlist routes. rg must be authenticated.
func RegisterWatchlistRoutes(rg *gin.RouterGroup, watchlistService portssvc.WatchlistSvcFacade) {
	h := &watchlistHandler{watchlistService: watchlistService}

	watchlist := rg.Group("/watchlist")
	{
		watchlist.GET("", h.listWatchlist)
		watchlist.POST("", h.addToWatchlist)
		watchlist.DELETE("/:pair", h.removeFromWatchlist)
	}
}

// listWatchlist godoc
// @Summary List watched currency pairs
// @Description Lists the caller's watched pairs, newest first, with the stored rate for each pair when one exists.
// @Tags watchlist
// @Produce  json
// @Param   limit query int false "Maximum number of items"
// @Success 200 {array} dto.WatchlistItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list watchlist"
// @Security BearerAuth
// @Router /api/v1/watchlist [get]
func (h *watchlistHandler) listWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	entries, err := h.watchlistService.ListWatchlist(c.Request.Context(), userID, q.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list watchlist")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWatchlistResponse(entries))
}

// addToWatchlist godoc
// @Summary Watch a currency pair
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   request body dto.AddWatchlistRequest true "Pair such as USD-EUR"
// @Success 201 {object} dto.WatchlistItemResponse
// @Failure 400 {object} map[string]string "Invalid currency pair"
// @Failure 409 {object} map[string]string "Pair already watched"
// @Security BearerAuth
// @Router /api/v1/watchlist [post]
func (h *watchlistHandler) addToWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddToWatchlist", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	item, err := h.watchlistService.AddToWatchlist(c.Request.Context(), userID, req.CurrencyPair)
	if err != nil {
		respondError(c, logger, err, "Failed to add to watchlist")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWatchlistItemResponse(*item))
}

// removeFromWatchlist godoc
// @Summary Stop watching a currency pair
// @Tags watchlist
// @Param   pair path string true "Pair such as USD-EUR"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid currency pair"
// @Failure 404 {object} map[string]string "Pair not watched"
// @Security BearerAuth
// @Router /api/v1/watchlist/{pair} [delete]
func (h *watchlistHandler) removeFromWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.watchlistService.RemoveFromWatchlist(c.Request.Context(), userID, c.Param("pair")); err != nil {
		respondError(c, logger, err, "Failed to remove from watchlist")
		return
	}
	c.Status(http.StatusNoContent)
}
