package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler handles HTTP requests for reports and exports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	exportService    portssvc.ExportService
	tracker          middleware.UsageTracker
}

// newReportingHandler creates a new reporting handler
func newReportingHandler(rs portssvc.ReportingService, es portssvc.ExportService, tracker middleware.UsageTracker) *reportingHandler {
	return &reportingHandler{reportingService: rs, exportService: es, tracker: tracker}
}

// registerReportingRoutes registers the report and export routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, exportService portssvc.ExportService, tracker middleware.UsageTracker) {
	h := newReportingHandler(reportingService, exportService, tracker)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/interest-income", h.getInterestIncome)
	}
	rg.GET("/exports/:dataset", h.export)
}

// getSummary godoc
// @Summary Shop summary
// @Description Open loans per kind with pending interest, udhari outstanding and account balances.
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.SummaryReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := dto.ParseDateOr(params.AsOf, domain.DateOnly(time.Now()))
	if err != nil {
		respondError(c, err, "Failed to generate summary report")
		return
	}

	report, err := h.reportingService.Summary(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate summary report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getCashFlow godoc
// @Summary Cash flow
// @Description Cash-book totals by source and direction within a period.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.CashFlowReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	var period dto.PeriodParams
	if err := c.ShouldBindQuery(&period); err != nil {
		bindError(c, err)
		return
	}
	from, to, err := period.Parse()
	if err != nil {
		respondError(c, err, "Failed to generate cash flow report")
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate cash flow report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getInterestIncome godoc
// @Summary Interest income
// @Description Interest collected per loan kind within a period.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.InterestIncomeReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/interest-income [get]
func (h *reportingHandler) getInterestIncome(c *gin.Context) {
	var period dto.PeriodParams
	if err := c.ShouldBindQuery(&period); err != nil {
		bindError(c, err)
		return
	}
	from, to, err := period.Parse()
	if err != nil {
		respondError(c, err, "Failed to generate interest income report")
		return
	}

	report, err := h.reportingService.InterestIncome(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate interest income report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// export godoc
// @Summary Export a dataset
// @Description Downloads loans, trades, udhari, expenses or cashbook rows dated within a period as CSV or XLSX.
// @Description The period defaults to the current month up to today.
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param dataset path string true "loans, trades, udhari, expenses or cashbook"
// @Param format query string false "csv or xlsx" default(csv)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown dataset"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/{dataset} [get]
func (h *reportingHandler) export(c *gin.Context) {
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	to, err := dto.ParseDateOr(params.To, domain.DateOnly(time.Now()))
	if err != nil {
		respondError(c, err, "Failed to export")
		return
	}
	from, err := dto.ParseDateOr(params.From, time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		respondError(c, err, "Failed to export")
		return
	}

	dataset := portssvc.ExportDataset(c.Param("dataset"))
	format := portssvc.ExportFormat(params.Format)

	// Render into memory so a failure can still be answered with a JSON error.
	var buf bytes.Buffer
	if err := h.exportService.Export(c.Request.Context(), &buf, dataset, format, from, to); err != nil {
		respondError(c, err, "Failed to export")
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == portssvc.FormatXLSX {
		contentType = xlsxContentType
	}
	filename := fmt.Sprintf("%s_%s_%s.%s", dataset, dto.FormatDate(from), dto.FormatDate(to), format)

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Export generated",
		slog.String("dataset", string(dataset)), slog.String("format", string(format)), slog.Int("bytes", buf.Len()))
	middleware.PosthogEvent(c, h.tracker, "export_downloaded", map[string]any{
		"dataset": string(dataset),
		"format":  string(format),
		"from":    dto.FormatDate(from),
		"to":      dto.FormatDate(to),
		"bytes":   buf.Len(),
	})
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
