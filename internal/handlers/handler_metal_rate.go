package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// metalRateHandler handles HTTP requests for daily gold and silver rates.
type metalRateHandler struct {
	rateService portssvc.MetalRateSvcFacade
}

func registerMetalRateRoutes(rg *gin.RouterGroup, rateService portssvc.MetalRateSvcFacade) {
	h := &metalRateHandler{rateService: rateService}

	rates := rg.Group("/metal-rates")
	{
		rates.PUT("", h.setRate)
		rates.POST("", h.setRate)
		rates.GET("", h.listRates)
		rates.GET("/latest", h.getLatestRate)
	}
}

// setRate godoc
// @Summary Set a day's metal rate
// @Description Stores the fine-metal rate per gram for a day, replacing any rate already set for that day.
// @Tags metal-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.SetMetalRateRequest true "Rate"
// @Success 200 {object} dto.MetalRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metal-rates [put]
func (h *metalRateHandler) setRate(c *gin.Context) {
	var req dto.SetMetalRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rate, err := h.rateService.SetRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to set metal rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToMetalRateResponse(rate))
}

// listRates godoc
// @Summary List metal rates
// @Description Newest first; the last 30 days when no range is given.
// @Tags metal-rates
// @Produce  json
// @Param   metal query string true "GOLD or SILVER"
// @Param   from query string false "From (YYYY-MM-DD)"
// @Param   to query string false "To (YYYY-MM-DD)"
// @Success 200 {object} dto.ListMetalRatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metal-rates [get]
func (h *metalRateHandler) listRates(c *gin.Context) {
	var params dto.ListMetalRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	rates, err := h.rateService.ListRates(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list metal rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMetalRatesResponse(rates))
}

// getLatestRate godoc
// @Summary Rate in force on a day
// @Tags metal-rates
// @Produce  json
// @Param   metal query string true "GOLD or SILVER"
// @Param   asOf query string false "Day (YYYY-MM-DD), today when omitted"
// @Success 200 {object} dto.MetalRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate on record"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metal-rates/latest [get]
func (h *metalRateHandler) getLatestRate(c *gin.Context) {
	var params dto.LatestMetalRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := dto.ParseDateOr(params.AsOf, domain.DateOnly(time.Now()))
	if err != nil {
		respondError(c, err, "Failed to get metal rate")
		return
	}
	rate, err := h.rateService.GetLatestRate(c.Request.Context(), params.Metal, asOf)
	if err != nil {
		respondError(c, err, "Failed to get metal rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToMetalRateResponse(rate))
}
