package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashBookHandler handles HTTP requests for the shop's money accounts.
type cashBookHandler struct {
	cashBookService portssvc.CashBookSvcFacade
}

func newCashBookHandler(cs portssvc.CashBookSvcFacade) *cashBookHandler {
	return &cashBookHandler{cashBookService: cs}
}

func registerCashBookRoutes(rg *gin.RouterGroup, cashBookService portssvc.CashBookSvcFacade) {
	h := newCashBookHandler(cashBookService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code", h.getAccount)
		accounts.GET("/:code/entries", h.listEntries)
		accounts.POST("/:code/adjustments", h.adjustAccount)
	}
}

func accountCode(c *gin.Context) domain.AccountCode {
	return domain.AccountCode(strings.ToUpper(c.Param("code")))
}

// listAccounts godoc
// @Summary List money accounts
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.CashAccountResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *cashBookHandler) listAccounts(c *gin.Context) {
	accounts, err := h.cashBookService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get a money account
// @Tags accounts
// @Produce  json
// @Param   code path string true "CASH or BANK"
// @Success 200 {object} dto.CashAccountResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{code} [get]
func (h *cashBookHandler) getAccount(c *gin.Context) {
	account, err := h.cashBookService.GetAccount(c.Request.Context(), accountCode(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashAccountResponse(account))
}

// listEntries godoc
// @Summary List cash-book entries
// @Description Entries oldest first. Pass the returned nextToken to fetch the following page.
// @Tags accounts
// @Produce  json
// @Param   code path string true "CASH or BANK"
// @Param   from query string false "From (YYYY-MM-DD)"
// @Param   to query string false "To (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{code}/entries [get]
func (h *cashBookHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	entries, next, err := h.cashBookService.ListEntries(c.Request.Context(), accountCode(c), params)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries, next))
}

// adjustAccount godoc
// @Summary Post an adjustment
// @Description Records an opening balance or a manual correction.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   code path string true "CASH or BANK"
// @Param   adjustment body dto.AdjustAccountRequest true "Adjustment"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{code}/adjustments [post]
func (h *cashBookHandler) adjustAccount(c *gin.Context) {
	var req dto.AdjustAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entry, err := h.cashBookService.AdjustAccount(c.Request.Context(), accountCode(c), req, userID)
	if err != nil {
		respondError(c, err, "Failed to post adjustment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account adjusted",
		slog.String("account", string(entry.AccountCode)), slog.Int64("running_balance_paise", entry.RunningBalancePaise))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}
