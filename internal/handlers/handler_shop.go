package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type shopHandler struct {
	shopService portssvc.ShopSvcFacade
}

func registerShopRoutes(rg *gin.RouterGroup, shopService portssvc.ShopSvcFacade) {
	h := &shopHandler{shopService: shopService}

	rg.GET("/settings", h.getSettings)
	rg.PATCH("/settings", h.updateSettings)
}

// getSettings godoc
// @Summary Get shop settings
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.ShopSettingsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *shopHandler) getSettings(c *gin.Context) {
	settings, err := h.shopService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToShopSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update shop settings
// @Description Default monthly loan rates per kind and the maximum loan-to-value; omitted fields are left unchanged.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.ShopSettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [patch]
func (h *shopHandler) updateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	settings, err := h.shopService.UpdateSettings(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToShopSettingsResponse(settings))
}
