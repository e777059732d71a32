package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// ReportingService defines operations for generating shop reports
type ReportingService interface {
	// Summary is the shop's open book as of a day.
	Summary(ctx context.Context, asOf time.Time) (*domain.SummaryReport, error)

	// CashFlow totals cash-book movements in a period by source and direction.
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)

	// InterestIncome totals interest collected in a period by loan kind.
	InterestIncome(ctx context.Context, from, to time.Time) (*domain.InterestIncomeReport, error)
}

// ExportDataset names an exportable table.
type ExportDataset string

const (
	ExportLoans    ExportDataset = "loans"
	ExportTrades   ExportDataset = "trades"
	ExportUdhari   ExportDataset = "udhari"
	ExportExpenses ExportDataset = "expenses"
	ExportCashBook ExportDataset = "cashbook"
)

// ExportFormat is the file format of an export.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ExportService writes datasets as spreadsheets
type ExportService interface {
	// Export writes the dataset rows dated within [from, to] to w.
	Export(ctx context.Context, w io.Writer, dataset ExportDataset, format ExportFormat, from, to time.Time) error
}
