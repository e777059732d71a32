package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers the loan routes plus kind-scoped aliases that
// fix the loan kind for create and list.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan(""))
		loans.GET("", h.listLoans(""))
		loans.GET("/:id", h.getLoan)
		loans.PATCH("/:id", h.updateLoan)
		loans.GET("/:id/position", h.getLoanPosition)
		loans.GET("/:id/payments", h.listLoanPayments)
		loans.POST("/:id/repayments", h.repayLoan)
	}

	for path, kind := range map[string]domain.LoanKind{
		"/cash-loans":   domain.CashLoan,
		"/gold-loans":   domain.GoldLoan,
		"/silver-loans": domain.SilverLoan,
	} {
		g := rg.Group(path)
		g.POST("", h.createLoan(kind))
		g.GET("", h.listLoans(kind))
	}
}

// createLoan godoc
// @Summary Disburse a loan
// @Description Creates a cash, gold or silver loan and posts the disbursement to the cash book.
// @Description The kind comes from the body on /loans and from the path on /gold-loans, /silver-loans and /cash-loans.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(kind domain.LoanKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateLoanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if kind != "" {
			req.Kind = kind
		}
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		loan, err := h.loanService.CreateLoan(c.Request.Context(), req, userID)
		if err != nil {
			respondError(c, err, "Failed to create loan")
			return
		}

		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan created",
			slog.String("loan_id", loan.LoanID), slog.String("cfid", loan.CFID))
		c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
	}
}

// listLoans godoc
// @Summary List loans
// @Tags loans
// @Produce  json
// @Param   kind query string false "CASH, GOLD or SILVER"
// @Param   status query string false "ACTIVE, PARTIALLY_PAID or CLOSED"
// @Param   customerID query string false "Customer ID"
// @Param   open query bool false "Only loans that are not closed"
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListLoansResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(kind domain.LoanKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params dto.ListLoansParams
		if err := c.ShouldBindQuery(&params); err != nil {
			bindError(c, err)
			return
		}
		if kind != "" {
			params.Kind = kind
		}
		loans, err := h.loanService.ListLoans(c.Request.Context(), params)
		if err != nil {
			respondError(c, err, "Failed to list loans")
			return
		}
		c.JSON(http.StatusOK, dto.ToListLoansResponse(loans))
	}
}

// getLoan godoc
// @Summary Get a loan
// @Tags loans
// @Produce  json
// @Param   id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	loan, err := h.loanService.GetLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// updateLoan godoc
// @Summary Update loan notes
// @Description Only notes can change once a loan is disbursed.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   id path string true "Loan ID"
// @Param   loan body dto.UpdateLoanRequest true "New notes"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [patch]
func (h *loanHandler) updateLoan(c *gin.Context) {
	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	loan, err := h.loanService.UpdateLoan(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// getLoanPosition godoc
// @Summary Loan position
// @Description Pending interest and payoff amount as of a day, without persisting the accrual.
// @Tags loans
// @Produce  json
// @Param   id path string true "Loan ID"
// @Param   asOf query string false "Day (YYYY-MM-DD), today when omitted"
// @Success 200 {object} dto.LoanPositionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/position [get]
func (h *loanHandler) getLoanPosition(c *gin.Context) {
	var params dto.LoanPositionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := dto.ParseDateOr(params.AsOf, domain.DateOnly(time.Now()))
	if err != nil {
		respondError(c, err, "Failed to compute loan position")
		return
	}
	position, err := h.loanService.GetLoanPosition(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		respondError(c, err, "Failed to compute loan position")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanPositionResponse(position))
}

// listLoanPayments godoc
// @Summary Loan statement
// @Tags loans
// @Produce  json
// @Param   id path string true "Loan ID"
// @Success 200 {object} dto.ListLoanPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/payments [get]
func (h *loanHandler) listLoanPayments(c *gin.Context) {
	payments, err := h.loanService.ListLoanPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list loan payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoanPaymentsResponse(payments))
}

// repayLoan godoc
// @Summary Repay a loan
// @Description Accrues interest to the payment date, applies the payment and posts it to the cash book.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   id path string true "Loan ID"
// @Param   payment body dto.RepayLoanRequest true "Repayment"
// @Success 201 {object} dto.RepayLoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is closed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/repayments [post]
func (h *loanHandler) repayLoan(c *gin.Context) {
	var req dto.RepayLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, loan, err := h.loanService.RepayLoan(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record repayment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan repaid",
		slog.String("loan_id", loan.LoanID),
		slog.Int64("principal_paise", payment.PrincipalPaise),
		slog.Int64("interest_paise", payment.InterestPaise),
		slog.String("status", string(loan.Status)))
	c.JSON(http.StatusCreated, dto.RepayLoanResponse{
		Payment: dto.ToLoanPaymentResponse(payment),
		Loan:    dto.ToLoanResponse(loan),
	})
}
