package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
	"github.com/SscSPs/currency_admin/internal/dto"
	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rg.GET("/exchange-rates", h.listExchangeRates)
}

// listExchangeRates godoc
// @Summary List exchange rate history
// @Description Observations newest first. Without page the answer is a bare array; with page it is a paginated envelope.
// @Tags exchange-rates
// @Produce  json
// @Param   start_date query string false "Earliest rate date (YYYY-MM-DD)"
// @Param   end_date query string false "Latest rate date (YYYY-MM-DD)"
// @Param   from_currency query int false "Source currency ID"
// @Param   to_currency query int false "Target currency ID"
// @Param   page query int false "Page number (1-based)"
// @Param   page_size query int false "Page size" default(50)
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListExchangeRatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid exchange rate query", slog.String("error", err.Error()))
		abortWithError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	page := query.ToPage()

	rates, total, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), filter, page)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list exchange rates")
		return
	}

	responses := dto.ToListExchangeRateResponse(rates)
	if page.IsZero() {
		c.JSON(http.StatusOK, responses)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(responses, total, page, c.Request.URL))
}
