package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
	"github.com/SscSPs/currency_admin/internal/dto"
	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies. refreshLimit
// guards the bulk refresh.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, refreshLimit gin.HandlerFunc) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/active", h.listActiveCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.POST("/update-rates", refreshLimit, h.updateRates)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.PATCH("/:id", h.patchCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

func currencyIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid currency id")
		return 0, false
	}
	return id, true
}

func subject(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all currencies ordered by code. Without page the answer is a bare array; with page it is a paginated envelope.
// @Tags currencies
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   page_size query int false "Page size" default(50)
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	h.list(c, domain.CurrencyFilter{})
}

// listActiveCurrencies godoc
// @Summary List active currencies
// @Description Same as listing currencies but only active ones.
// @Tags currencies
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   page_size query int false "Page size" default(50)
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/active [get]
func (h *currencyHandler) listActiveCurrencies(c *gin.Context) {
	h.list(c, domain.CurrencyFilter{ActiveOnly: true})
}

func (h *currencyHandler) list(c *gin.Context, filter domain.CurrencyFilter) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid pagination query", slog.String("error", err.Error()))
		abortWithError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	page := query.ToPage()

	currencies, total, err := h.currencyService.ListCurrencies(c.Request.Context(), filter, page)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}

	responses := dto.ToListCurrencyResponse(currencies)
	if page.IsZero() {
		c.JSON(http.StatusOK, responses)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(responses, total, page, c.Request.URL))
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a currency. The code is stored upper-case and must be unique; at most one currency may be the base.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Currency code already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		abortWithError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	userID, ok := subject(c)
	if !ok {
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req.ToDraft(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create currency")
		return
	}

	middleware.TrackProperty(c, "code", created.Code)
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// updateCurrency godoc
// @Summary Replace a currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.CurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		abortWithError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	userID, ok := subject(c)
	if !ok {
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req.ToDraft(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update currency")
		return
	}
	middleware.TrackProperty(c, "code", updated.Code)
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// patchCurrency godoc
// @Summary Partially update a currency
// @Description Only the fields present in the body change. Used to toggle isActive.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   patch body dto.PatchCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [patch]
func (h *currencyHandler) patchCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}
	var req dto.PatchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PatchCurrency", slog.String("error", err.Error()))
		abortWithError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	userID, ok := subject(c)
	if !ok {
		return
	}

	updated, err := h.currencyService.PatchCurrency(c.Request.Context(), id, req.ToPatch(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update currency")
		return
	}
	middleware.TrackProperty(c, "code", updated.Code)
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description The base currency cannot be deleted.
// @Tags currencies
// @Param   id path int true "Currency ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}
	userID, ok := subject(c)
	if !ok {
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete currency")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateRates godoc
// @Summary Refresh exchange rates
// @Description Records today's rate to USD of every active currency. Rate limited.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.RefreshRatesResponse
// @Failure 400 {object} ErrorResponse "No USD currency record found"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/update-rates [post]
func (h *currencyHandler) updateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := subject(c)
	if !ok {
		return
	}

	result, err := h.currencyService.RefreshRates(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update exchange rates")
		return
	}

	middleware.TrackProperty(c, "updated", result.Updated)
	c.JSON(http.StatusOK, dto.RefreshRatesResponse{
		Message:   "Exchange rates updated successfully",
		Timestamp: result.Timestamp.Truncate(time.Second),
		Updated:   result.Updated,
	})
}
