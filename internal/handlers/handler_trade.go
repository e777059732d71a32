package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

func registerTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := &tradeHandler{tradeService: tradeService}

	trades := rg.Group("/trades")
	{
		trades.POST("", h.recordTrade)
		trades.GET("", h.listTrades)
		trades.GET("/:id", h.getTrade)
		trades.POST("/:id/void", h.voidTrade)
	}
}

// recordTrade godoc
// @Summary Record a bullion trade
// @Description Prices a gold or silver buy/sell from fine weight and the day's rate and posts it to the cash book.
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade body dto.RecordTradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trades [post]
func (h *tradeHandler) recordTrade(c *gin.Context) {
	var req dto.RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	trade, err := h.tradeService.RecordTrade(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record trade")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List trades
// @Tags trades
// @Produce  json
// @Param   metal query string false "GOLD or SILVER"
// @Param   side query string false "BUY or SELL"
// @Param   customerID query string false "Customer ID"
// @Param   from query string false "From (YYYY-MM-DD)"
// @Param   to query string false "To (YYYY-MM-DD)"
// @Param   includeVoided query bool false "Include voided trades"
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTradesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	var params dto.ListTradesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	trades, err := h.tradeService.ListTrades(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list trades")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTradesResponse(trades))
}

// getTrade godoc
// @Summary Get a trade
// @Tags trades
// @Produce  json
// @Param   id path string true "Trade ID"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trades/{id} [get]
func (h *tradeHandler) getTrade(c *gin.Context) {
	trade, err := h.tradeService.GetTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve trade")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// voidTrade godoc
// @Summary Void a trade
// @Description Marks the trade voided and posts the reversing cash-book entry.
// @Tags trades
// @Produce  json
// @Param   id path string true "Trade ID"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already voided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trades/{id}/void [post]
func (h *tradeHandler) voidTrade(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	trade, err := h.tradeService.VoidTrade(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to void trade")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}
