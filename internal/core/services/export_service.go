package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/SscSPs/jewel_ledger_app/internal/export"
	"github.com/SscSPs/jewel_ledger_app/internal/utils/money"
)

// ExportSources are the readers each dataset is built from.
type ExportSources struct {
	Loans    portsrepo.LoanReader
	Trades   portsrepo.TradeReader
	Udhari   portsrepo.UdhariReader
	Expenses portsrepo.ExpenseReader
	CashBook portsrepo.LedgerEntryReader
}

type exportService struct {
	BaseService
	src ExportSources
}

// NewExportService creates the CSV/XLSX export service.
func NewExportService(src ExportSources, opts ...BaseOption) portssvc.ExportService {
	svc := &exportService{src: src}
	svc.apply(opts)
	return svc
}

var _ portssvc.ExportService = (*exportService)(nil)

// Export writes one dataset for the inclusive period [from, to].
func (s *exportService) Export(ctx context.Context, w io.Writer, dataset portssvc.ExportDataset, format portssvc.ExportFormat, from, to time.Time) error {
	if from.After(to) {
		return domain.ErrDateRangeInvalid
	}
	if format != portssvc.FormatCSV && format != portssvc.FormatXLSX {
		return fmt.Errorf("%w: unknown export format %q", apperrors.ErrValidation, format)
	}

	var (
		table *export.Table
		err   error
	)
	switch dataset {
	case portssvc.ExportLoans:
		table, err = s.loansTable(ctx, from, to)
	case portssvc.ExportTrades:
		table, err = s.tradesTable(ctx, from, to)
	case portssvc.ExportUdhari:
		table, err = s.udhariTable(ctx, from, to)
	case portssvc.ExportExpenses:
		table, err = s.expensesTable(ctx, from, to)
	case portssvc.ExportCashBook:
		table, err = s.cashBookTable(ctx, from, to)
	default:
		return fmt.Errorf("%w: unknown dataset %q", apperrors.ErrNotFound, dataset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to build export", slog.String("dataset", string(dataset)))
		return fmt.Errorf("failed to build %s export: %w", dataset, err)
	}

	if format == portssvc.FormatXLSX {
		err = export.WriteXLSX(w, table)
	} else {
		err = export.WriteCSV(w, table)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to write export", slog.String("dataset", string(dataset)), slog.String("format", string(format)))
		return err
	}

	s.LogInfo(ctx, "Export written",
		slog.String("dataset", string(dataset)),
		slog.String("format", string(format)),
		slog.Int("rows", len(table.Rows)))
	return nil
}

func inPeriod(t, from, to time.Time) bool {
	d := domain.DateOnly(t)
	return !d.Before(from) && !d.After(to)
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func textCol(h string) export.Column   { return export.Column{Header: h} }
func amountCol(h string) export.Column { return export.Column{Header: h, Numeric: true} }

func (s *exportService) loansTable(ctx context.Context, from, to time.Time) (*export.Table, error) {
	loans, err := s.src.Loans.ListLoans(ctx, domain.LoanFilter{})
	if err != nil {
		return nil, err
	}
	t := &export.Table{
		Name: string(portssvc.ExportLoans),
		Columns: []export.Column{
			textCol("Loan No"), textCol("Kind"), textCol("Customer ID"), textCol("Start Date"), amountCol("Principal"),
			amountCol("Outstanding"), textCol("Monthly Rate %"), amountCol("Interest Paid"), amountCol("Pending Interest"),
			textCol("Status"), textCol("Closed On"), textCol("Payment Mode"), textCol("Items"), amountCol("Appraised Value"),
		},
	}
	for _, l := range loans {
		if !inPeriod(l.StartDate, from, to) {
			continue
		}
		t.AddRow(
			l.CFID, string(l.Kind), l.CustomerID, dto.FormatDate(l.StartDate), money.FormatPaise(l.PrincipalPaise),
			money.FormatPaise(l.OutstandingPaise), l.MonthlyRatePct.String(), money.FormatPaise(l.InterestPaidPaise),
			money.FormatPaise(l.AccruedInterestPaise), string(l.Status), optional(dto.FormatOptionalDate(l.ClosedOn)),
			string(l.PaymentMode), fmt.Sprint(len(l.Items)), money.FormatPaise(l.TotalAppraisedPaise()),
		)
	}
	return t, nil
}

func (s *exportService) tradesTable(ctx context.Context, from, to time.Time) (*export.Table, error) {
	trades, err := s.src.Trades.ListTrades(ctx, domain.TradeFilter{From: &from, To: &to, IncludeVoided: true})
	if err != nil {
		return nil, err
	}
	t := &export.Table{
		Name: string(portssvc.ExportTrades),
		Columns: []export.Column{
			textCol("Trade No"), textCol("Date"), textCol("Metal"), textCol("Side"), textCol("Customer ID"),
			amountCol("Weight (g)"), amountCol("Purity %"), amountCol("Fine Weight (g)"), amountCol("Rate / g"),
			amountCol("Making Charges"), amountCol("Amount"), textCol("Payment Mode"), textCol("Voided"),
		},
	}
	for _, tr := range trades {
		t.AddRow(
			tr.CFID, dto.FormatDate(tr.TradeDate), string(tr.Metal), string(tr.Side), optional(tr.CustomerID),
			tr.WeightGrams.StringFixed(3), tr.PurityPct.String(), tr.FineWeightGrams.StringFixed(3),
			money.FormatPaise(tr.RatePerGramPaise), money.FormatPaise(tr.MakingChargesPaise),
			money.FormatPaise(tr.AmountPaise), string(tr.PaymentMode), fmt.Sprint(tr.IsVoided),
		)
	}
	return t, nil
}

func (s *exportService) udhariTable(ctx context.Context, from, to time.Time) (*export.Table, error) {
	list, err := s.src.Udhari.ListUdhari(ctx, domain.UdhariFilter{})
	if err != nil {
		return nil, err
	}
	t := &export.Table{
		Name: string(portssvc.ExportUdhari),
		Columns: []export.Column{
			textCol("Udhari No"), textCol("Customer ID"), textCol("Direction"), textCol("Issued On"), textCol("Due On"),
			amountCol("Amount"), amountCol("Settled"), amountCol("Outstanding"), textCol("Status"), textCol("Payment Mode"), textCol("Notes"),
		},
	}
	for _, u := range list {
		if !inPeriod(u.IssuedOn, from, to) {
			continue
		}
		t.AddRow(
			u.CFID, u.CustomerID, string(u.Direction), dto.FormatDate(u.IssuedOn), optional(dto.FormatOptionalDate(u.DueOn)),
			money.FormatPaise(u.AmountPaise), money.FormatPaise(u.SettledPaise), money.FormatPaise(u.OutstandingPaise()),
			string(u.Status), string(u.PaymentMode), u.Notes,
		)
	}
	return t, nil
}

func (s *exportService) expensesTable(ctx context.Context, from, to time.Time) (*export.Table, error) {
	expenses, err := s.src.Expenses.ListExpenses(ctx, domain.ExpenseFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	t := &export.Table{
		Name: string(portssvc.ExportExpenses),
		Columns: []export.Column{
			textCol("Date"), textCol("Category"), amountCol("Amount"), textCol("Payment Mode"), textCol("Description"),
		},
	}
	for _, e := range expenses {
		t.AddRow(dto.FormatDate(e.ExpenseDate), string(e.Category), money.FormatPaise(e.AmountPaise), string(e.PaymentMode), e.Description)
	}
	return t, nil
}

func (s *exportService) cashBookTable(ctx context.Context, from, to time.Time) (*export.Table, error) {
	entries, err := s.src.CashBook.ListEntriesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	t := &export.Table{
		Name: string(portssvc.ExportCashBook),
		Columns: []export.Column{
			textCol("Date"), textCol("Account"), textCol("Source"), textCol("Direction"), amountCol("Amount"),
			amountCol("Balance"), textCol("Reference"), textCol("Customer ID"), textCol("Narration"),
		},
	}
	for _, e := range entries {
		t.AddRow(
			dto.FormatDate(e.EntryDate), string(e.AccountCode), string(e.Source), string(e.Direction),
			money.FormatPaise(e.AmountPaise), money.FormatPaise(e.RunningBalancePaise), e.ReferenceID,
			optional(e.CustomerID), e.Narration,
		)
	}
	return t, nil
}
