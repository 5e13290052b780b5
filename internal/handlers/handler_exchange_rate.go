package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/dto"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// RegisterExchangeRateRoutes registers the rate synchronization routes on rg.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getExchangeRates)
		exchangeRates.POST("", h.refreshExchangeRates)
		exchangeRates.GET("/history", h.getHistory)
	}
}

// getExchangeRates godoc
// @Summary Get exchange rates for a base currency
// @Description Returns the stored rates for base, refreshing them from the provider first when none are stored or they are 24 hours old.
// @Tags exchange rates
// @Produce  json
// @Param   base query string false "Base currency code (default EUR)" minlength(3) maxlength(3)
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid base currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Provider not configured, provider failure or store failure"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.GetExchangeRatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for GetExchangeRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}
	if q.Base == "" {
		q.Base = domain.DefaultBaseCurrency
	}

	logger = logger.With(slog.String("base_currency", q.Base))
	rates, err := h.exchangeRateService.GetRates(c.Request.Context(), q.Base)
	if err != nil {
		respondError(c, logger, err, "Error handling exchange rates")
		return
	}

	logger.Debug("Exchange rates served", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// refreshExchangeRates godoc
// @Summary Force a refresh of exchange rates
// @Description Always fetches the latest rates for baseCurrency from the provider, upserts them and returns the stored set.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   request body dto.ForceRefreshRequest true "Base currency"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Base currency is required"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Provider not configured, provider failure or store failure"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForceRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ForceRefresh", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	logger = logger.With(slog.String("base_currency", req.BaseCurrency))
	logger.Info("Received request to force update exchange rates")

	rates, err := h.exchangeRateService.ForceRefresh(c.Request.Context(), req.BaseCurrency)
	if err != nil {
		respondError(c, logger, err, "Error updating exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getHistory godoc
// @Summary Get rate history for a currency
// @Description Returns one point per day for the trailing days (default 7), oldest first and ending today, quoted against EUR. A day without data has a null rate.
// @Tags exchange rates
// @Produce  json
// @Param   currency query string true "Currency code" minlength(3) maxlength(3)
// @Param   days query int false "Number of days (1-31)"
// @Success 200 {array} dto.HistoryPointResponse
// @Failure 400 {object} map[string]string "Currency parameter is required"
// @Failure 500 {object} map[string]string "Failed to fetch historical rates"
// @Router /exchange-rates/history [get]
func (h *exchangeRateHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for GetHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	logger = logger.With(slog.String("currency", q.Currency), slog.Int("days", q.Days))
	points, err := h.exchangeRateService.GetHistory(c.Request.Context(), q.Currency, q.Days)
	if err != nil {
		respondError(c, logger, err, "Error fetching historical rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListHistoryPointResponse(points))
}
