package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// udhariHandler handles HTTP requests related to udhari (IOUs).
type udhariHandler struct {
	udhariService portssvc.UdhariSvcFacade
}

func registerUdhariRoutes(rg *gin.RouterGroup, udhariService portssvc.UdhariSvcFacade) {
	h := &udhariHandler{udhariService: udhariService}

	udhari := rg.Group("/udhari")
	{
		udhari.POST("", h.createUdhari)
		udhari.GET("", h.listUdhari)
		udhari.GET("/:id", h.getUdhari)
		udhari.GET("/:id/settlements", h.listSettlements)
		udhari.POST("/:id/settlements", h.settleUdhari)
	}
}

// createUdhari godoc
// @Summary Record an udhari
// @Description GIVEN pays money out to the customer, TAKEN receives it.
// @Tags udhari
// @Accept  json
// @Produce  json
// @Param   udhari body dto.CreateUdhariRequest true "IOU details"
// @Success 201 {object} dto.UdhariResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /udhari [post]
func (h *udhariHandler) createUdhari(c *gin.Context) {
	var req dto.CreateUdhariRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	u, err := h.udhariService.CreateUdhari(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record udhari")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUdhariResponse(u, domain.DateOnly(time.Now())))
}

// listUdhari godoc
// @Summary List udhari
// @Tags udhari
// @Produce  json
// @Param   direction query string false "GIVEN or TAKEN"
// @Param   status query string false "OPEN, PARTIALLY_SETTLED or SETTLED"
// @Param   customerID query string false "Customer ID"
// @Param   open query bool false "Only unsettled"
// @Param   overdue query bool false "Only unsettled and past due"
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUdhariResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /udhari [get]
func (h *udhariHandler) listUdhari(c *gin.Context) {
	var params dto.ListUdhariParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	list, err := h.udhariService.ListUdhari(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list udhari")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUdhariResponse(list, domain.DateOnly(time.Now())))
}

// getUdhari godoc
// @Summary Get an udhari
// @Tags udhari
// @Produce  json
// @Param   id path string true "Udhari ID"
// @Success 200 {object} dto.UdhariResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /udhari/{id} [get]
func (h *udhariHandler) getUdhari(c *gin.Context) {
	u, err := h.udhariService.GetUdhari(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve udhari")
		return
	}
	c.JSON(http.StatusOK, dto.ToUdhariResponse(u, domain.DateOnly(time.Now())))
}

// listSettlements godoc
// @Summary List settlements of an udhari
// @Tags udhari
// @Produce  json
// @Param   id path string true "Udhari ID"
// @Success 200 {object} dto.ListSettlementsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /udhari/{id}/settlements [get]
func (h *udhariHandler) listSettlements(c *gin.Context) {
	list, err := h.udhariService.ListSettlements(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list settlements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSettlementsResponse(list))
}

// settleUdhari godoc
// @Summary Settle an udhari
// @Description Records a full or partial settlement and posts it to the cash book.
// @Tags udhari
// @Accept  json
// @Produce  json
// @Param   id path string true "Udhari ID"
// @Param   settlement body dto.SettleUdhariRequest true "Settlement"
// @Success 201 {object} dto.SettleUdhariResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already settled"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /udhari/{id}/settlements [post]
func (h *udhariHandler) settleUdhari(c *gin.Context) {
	var req dto.SettleUdhariRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	settlement, u, err := h.udhariService.SettleUdhari(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to settle udhari")
		return
	}
	c.JSON(http.StatusCreated, dto.SettleUdhariResponse{
		Settlement: dto.ToUdhariSettlementResponse(settlement),
		Udhari:     dto.ToUdhariResponse(u, domain.DateOnly(time.Now())),
	})
}
