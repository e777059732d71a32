package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
	now       time.Time
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("jewel_ledger"),
		postgres.WithUsername("ledger"),
		postgres.WithPassword("ledger"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err, "failed to start postgres container")
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(dsn, "file://../../../../migrations"))

	s.pool, err = database.NewPgxPool(s.ctx, dsn, database.PoolOptions{Ping: true})
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.container.Terminate(ctx); err != nil {
			s.T().Logf("warning: failed to terminate postgres container: %v", err)
		}
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *RepositoryIntegrationSuite) newCustomer(name string) domain.Customer {
	c := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        name,
		Phone:       "98" + uuid.NewString()[:8],
		IsActive:    true,
		AuditFields: domain.NewAuditFields("tester", s.now),
	}
	s.Require().NoError(s.repos.CustomerRepo.SaveCustomer(s.ctx, c))
	return c
}

func (s *RepositoryIntegrationSuite) TestCustomer_SearchAndDeactivate() {
	c := s.newCustomer("Meera Patel")

	found, err := s.repos.CustomerRepo.ListCustomers(s.ctx, domain.CustomerFilter{Search: "meera", ActiveOnly: true})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(c.CustomerID, found[0].CustomerID)

	s.Require().NoError(s.repos.CustomerRepo.DeactivateCustomer(s.ctx, c.CustomerID, "tester", s.now))
	found, err = s.repos.CustomerRepo.ListCustomers(s.ctx, domain.CustomerFilter{Search: "meera", ActiveOnly: true})
	s.Require().NoError(err)
	s.Empty(found)

	err = s.repos.CustomerRepo.DeactivateCustomer(s.ctx, uuid.NewString(), "tester", s.now)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestLoan_SaveReleaseAndPay() {
	c := s.newCustomer("Ravi Kumar")
	start := date(2024, 3, 15)
	loan := &domain.Loan{
		LoanID:                 uuid.NewString(),
		Kind:                   domain.GoldLoan,
		CustomerID:             c.CustomerID,
		PrincipalPaise:         5000000,
		OutstandingPaise:       5000000,
		MonthlyRatePct:         decimal.RequireFromString("1.5"),
		StartDate:              start,
		InterestAccruedThrough: start,
		Status:                 domain.LoanActive,
		PaymentMode:            domain.PaymentCash,
		AuditFields:            domain.NewAuditFields("tester", s.now),
	}
	for _, desc := range []string{"Chain", "Bangle"} {
		loan.Items = append(loan.Items, domain.CollateralItem{
			ItemID:              uuid.NewString(),
			Description:         desc,
			Metal:               domain.Gold,
			GrossWeightGrams:    decimal.RequireFromString("10.5"),
			NetWeightGrams:      decimal.RequireFromString("10.25"),
			PurityPct:           decimal.RequireFromString("91.6"),
			AppraisedValuePaise: 4000000,
			Status:              domain.ItemHeld,
		})
	}

	s.Require().NoError(s.repos.LoanRepo.SaveLoan(s.ctx, loan))
	s.Regexp(`^GL-\d{6}$`, loan.CFID)

	stored, err := s.repos.LoanRepo.FindLoanByID(s.ctx, loan.LoanID)
	s.Require().NoError(err)
	s.Equal(loan.CFID, stored.CFID)
	s.True(stored.MonthlyRatePct.Equal(loan.MonthlyRatePct))
	s.True(stored.StartDate.Equal(start))
	s.Require().Len(stored.Items, 2)
	s.Equal("Chain", stored.Items[0].Description)
	s.True(stored.Items[0].NetWeightGrams.Equal(decimal.RequireFromString("10.25")))

	released := []string{loan.Items[0].ItemID}
	err = s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		locked, err := s.repos.LoanRepo.FindLoanByIDForUpdate(ctx, loan.LoanID)
		if err != nil {
			return err
		}
		if err := s.repos.LoanRepo.ReleaseItems(ctx, loan.LoanID, released, date(2024, 6, 15)); err != nil {
			return err
		}
		locked.OutstandingPaise = 3000000
		locked.PrincipalPaidPaise = 2000000
		locked.InterestPaidPaise = 225000
		locked.InterestAccruedThrough = date(2024, 6, 15)
		locked.Status = domain.LoanPartiallyPaid
		locked.LastUpdatedAt = s.now
		if err := s.repos.LoanRepo.UpdateLoanBalances(ctx, *locked); err != nil {
			return err
		}
		return s.repos.LoanRepo.SavePayment(ctx, domain.LoanPayment{
			PaymentID:       uuid.NewString(),
			LoanID:          loan.LoanID,
			PaidOn:          date(2024, 6, 15),
			PrincipalPaise:  2000000,
			InterestPaise:   225000,
			PaymentMode:     domain.PaymentCash,
			ReleasedItemIDs: released,
			CreatedAt:       s.now,
			CreatedBy:       "tester",
		})
	})
	s.Require().NoError(err)

	stored, err = s.repos.LoanRepo.FindLoanByID(s.ctx, loan.LoanID)
	s.Require().NoError(err)
	s.Equal(int64(3000000), stored.OutstandingPaise)
	s.Equal(domain.LoanPartiallyPaid, stored.Status)
	s.Equal(domain.ItemReturned, stored.Items[0].Status)
	s.Require().NotNil(stored.Items[0].ReturnedOn)
	s.Equal(domain.ItemHeld, stored.Items[1].Status)

	payments, err := s.repos.LoanRepo.ListPaymentsByLoan(s.ctx, loan.LoanID)
	s.Require().NoError(err)
	s.Require().Len(payments, 1)
	s.Equal(released, payments[0].ReleasedItemIDs)

	open, udhari, err := s.repos.CustomerRepo.CountOpenItems(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Equal(1, open)
	s.Equal(0, udhari)

	income, err := s.repos.ReportingRepo.GetInterestIncome(s.ctx, date(2024, 6, 1), date(2024, 6, 30))
	s.Require().NoError(err)
	var gold int64
	for _, l := range income {
		if l.Kind == domain.GoldLoan {
			gold += l.InterestPaise
		}
	}
	s.GreaterOrEqual(gold, int64(225000))
}

func (s *RepositoryIntegrationSuite) saveLoan(customerID string, kind domain.LoanKind, start time.Time, items ...string) *domain.Loan {
	loan := &domain.Loan{
		LoanID:                 uuid.NewString(),
		Kind:                   kind,
		CustomerID:             customerID,
		PrincipalPaise:         1000000,
		OutstandingPaise:       1000000,
		MonthlyRatePct:         decimal.NewFromInt(2),
		StartDate:              start,
		InterestAccruedThrough: start,
		Status:                 domain.LoanActive,
		PaymentMode:            domain.PaymentCash,
		AuditFields:            domain.NewAuditFields("tester", s.now),
	}
	for _, desc := range items {
		loan.Items = append(loan.Items, domain.CollateralItem{
			ItemID:              uuid.NewString(),
			Description:         desc,
			Metal:               domain.Gold,
			GrossWeightGrams:    decimal.NewFromInt(5),
			NetWeightGrams:      decimal.NewFromInt(5),
			PurityPct:           decimal.RequireFromString("91.6"),
			AppraisedValuePaise: 1500000,
			Status:              domain.ItemHeld,
		})
	}
	s.Require().NoError(s.repos.LoanRepo.SaveLoan(s.ctx, loan))
	return loan
}

func loanIDs(loans []domain.Loan, customerID string) []string {
	ids := []string{}
	for _, l := range loans {
		if l.CustomerID == customerID {
			ids = append(ids, l.LoanID)
		}
	}
	return ids
}

func (s *RepositoryIntegrationSuite) TestLoan_ListLoadsCollateral() {
	c := s.newCustomer("Kavita Joshi")
	gold := s.saveLoan(c.CustomerID, domain.GoldLoan, date(2024, 1, 10), "Ring", "Earrings")
	cash := s.saveLoan(c.CustomerID, domain.CashLoan, date(2024, 1, 12))

	loans, err := s.repos.LoanRepo.ListLoans(s.ctx, domain.LoanFilter{CustomerID: c.CustomerID})
	s.Require().NoError(err)
	s.Require().Len(loans, 2)

	byID := map[string]domain.Loan{}
	for _, l := range loans {
		byID[l.LoanID] = l
	}
	listedGold := byID[gold.LoanID]
	s.Require().Len(listedGold.Items, 2)
	s.Equal("Ring", listedGold.Items[0].Description)
	s.Equal("Earrings", listedGold.Items[1].Description)
	s.Equal(int64(3000000), listedGold.TotalAppraisedPaise())
	s.NotNil(byID[cash.LoanID].Items)
	s.Empty(byID[cash.LoanID].Items)
}

func (s *RepositoryIntegrationSuite) TestLoan_ListOpenLoansOnDate() {
	c := s.newCustomer("Suresh Nair")
	early := s.saveLoan(c.CustomerID, domain.GoldLoan, date(2023, 11, 1), "Anklet")
	closed := s.saveLoan(c.CustomerID, domain.CashLoan, date(2023, 12, 1))
	late := s.saveLoan(c.CustomerID, domain.CashLoan, date(2024, 5, 1))

	closedOn := date(2024, 2, 20)
	closed.OutstandingPaise = 0
	closed.PrincipalPaidPaise = closed.PrincipalPaise
	closed.Status = domain.LoanClosed
	closed.ClosedOn = &closedOn
	s.Require().NoError(s.repos.LoanRepo.UpdateLoanBalances(s.ctx, *closed))

	open, err := s.repos.LoanRepo.ListOpenLoans(s.ctx, date(2024, 2, 1))
	s.Require().NoError(err)
	s.ElementsMatch([]string{early.LoanID, closed.LoanID}, loanIDs(open, c.CustomerID))
	for _, l := range open {
		if l.LoanID == early.LoanID {
			s.Len(l.Items, 1)
		}
	}

	open, err = s.repos.LoanRepo.ListOpenLoans(s.ctx, closedOn)
	s.Require().NoError(err)
	s.ElementsMatch([]string{early.LoanID}, loanIDs(open, c.CustomerID))

	open, err = s.repos.LoanRepo.ListOpenLoans(s.ctx, date(2024, 6, 1))
	s.Require().NoError(err)
	s.ElementsMatch([]string{early.LoanID, late.LoanID}, loanIDs(open, c.CustomerID))

	open, err = s.repos.LoanRepo.ListOpenLoans(s.ctx, date(2023, 10, 31))
	s.Require().NoError(err)
	s.Empty(loanIDs(open, c.CustomerID))
}

func (s *RepositoryIntegrationSuite) post(ctx context.Context, code domain.AccountCode, day time.Time, dir domain.EntryDirection, amount int64) domain.LedgerEntry {
	account, err := s.repos.CashBookRepo.FindAccountByCodeForUpdate(ctx, code)
	s.Require().NoError(err)
	delta := amount
	if dir == domain.DirectionOut {
		delta = -amount
	}
	entry := domain.LedgerEntry{
		EntryID:             uuid.NewString(),
		AccountCode:         code,
		EntryDate:           day,
		Source:              domain.SourceAdjustment,
		Direction:           dir,
		AmountPaise:         amount,
		RunningBalancePaise: account.BalancePaise + delta,
		ReferenceID:         "adj",
		CreatedAt:           time.Now().UTC(),
		CreatedBy:           "tester",
	}
	s.Require().NoError(s.repos.CashBookRepo.SaveEntryAndBalance(ctx, entry, "tester", s.now))
	return entry
}

func (s *RepositoryIntegrationSuite) TestCashBook_PostAndPage() {
	before, err := s.repos.CashBookRepo.FindAccountByCode(s.ctx, domain.AccountBank)
	s.Require().NoError(err)

	err = s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		s.post(ctx, domain.AccountBank, date(2031, 1, 1), domain.DirectionIn, 10000)
		s.post(ctx, domain.AccountBank, date(2031, 1, 2), domain.DirectionOut, 2500)
		s.post(ctx, domain.AccountBank, date(2031, 1, 3), domain.DirectionIn, 700)
		return nil
	})
	s.Require().NoError(err)

	after, err := s.repos.CashBookRepo.FindAccountByCode(s.ctx, domain.AccountBank)
	s.Require().NoError(err)
	s.Equal(before.BalancePaise+8200, after.BalancePaise)

	from, to := date(2031, 1, 1), date(2031, 1, 31)
	page, next, err := s.repos.CashBookRepo.ListEntries(s.ctx, domain.LedgerFilter{AccountCode: domain.AccountBank, From: &from, To: &to, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Require().NotNil(next)
	s.Equal(int64(10000), page[0].AmountPaise)
	s.Equal(int64(2500), page[1].AmountPaise)

	page, next, err = s.repos.CashBookRepo.ListEntries(s.ctx, domain.LedgerFilter{AccountCode: domain.AccountBank, From: &from, To: &to, Limit: 2, NextToken: next})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Nil(next)
	s.Equal(after.BalancePaise, page[0].RunningBalancePaise)

	bad := "not-a-token"
	_, _, err = s.repos.CashBookRepo.ListEntries(s.ctx, domain.LedgerFilter{AccountCode: domain.AccountBank, NextToken: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)

	flow, err := s.repos.ReportingRepo.GetCashFlow(s.ctx, from, to)
	s.Require().NoError(err)
	s.ElementsMatch([]domain.CashFlowLine{
		{Source: domain.SourceAdjustment, Direction: domain.DirectionIn, AmountPaise: 10700, Count: 2},
		{Source: domain.SourceAdjustment, Direction: domain.DirectionOut, AmountPaise: 2500, Count: 1},
	}, flow)
}

func (s *RepositoryIntegrationSuite) TestTxManager_RollsBackOnError() {
	before, err := s.repos.CashBookRepo.FindAccountByCode(s.ctx, domain.AccountCash)
	s.Require().NoError(err)

	boom := errors.New("boom")
	err = s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		s.post(ctx, domain.AccountCash, date(2032, 5, 1), domain.DirectionIn, 99999)
		return boom
	})
	s.ErrorIs(err, boom)

	after, err := s.repos.CashBookRepo.FindAccountByCode(s.ctx, domain.AccountCash)
	s.Require().NoError(err)
	s.Equal(before.BalancePaise, after.BalancePaise)

	entries, err := s.repos.CashBookRepo.ListEntriesInRange(s.ctx, date(2032, 5, 1), date(2032, 5, 1))
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *RepositoryIntegrationSuite) TestMetalRate_UpsertAndLatest() {
	first := domain.MetalRate{
		RateID:           uuid.NewString(),
		Metal:            domain.Silver,
		RateDate:         date(2033, 2, 10),
		RatePerGramPaise: 9000,
		AuditFields:      domain.NewAuditFields("tester", s.now),
	}
	saved, err := s.repos.MetalRateRepo.UpsertRate(s.ctx, first)
	s.Require().NoError(err)
	s.Equal(first.RateID, saved.RateID)

	second := first
	second.RateID = uuid.NewString()
	second.RatePerGramPaise = 9100
	saved, err = s.repos.MetalRateRepo.UpsertRate(s.ctx, second)
	s.Require().NoError(err)
	s.Equal(first.RateID, saved.RateID, "the day's existing row is updated in place")
	s.Equal(int64(9100), saved.RatePerGramPaise)

	latest, err := s.repos.MetalRateRepo.FindLatestRate(s.ctx, domain.Silver, date(2033, 2, 20))
	s.Require().NoError(err)
	s.Equal(int64(9100), latest.RatePerGramPaise)

	rates, err := s.repos.MetalRateRepo.ListRates(s.ctx, domain.Silver, date(2033, 1, 1), date(2033, 12, 31))
	s.Require().NoError(err)
	s.Len(rates, 1)

	_, err = s.repos.MetalRateRepo.FindLatestRate(s.ctx, domain.Gold, date(1999, 1, 1))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestTrade_SaveAndVoid() {
	trade := &domain.Trade{
		TradeID:          uuid.NewString(),
		Metal:            domain.Gold,
		Side:             domain.Buy,
		TradeDate:        date(2034, 3, 1),
		WeightGrams:      decimal.RequireFromString("20"),
		PurityPct:        decimal.RequireFromString("99.5"),
		FineWeightGrams:  decimal.RequireFromString("19.9"),
		RatePerGramPaise: 700000,
		AmountPaise:      13930000,
		PaymentMode:      domain.PaymentBank,
		AuditFields:      domain.NewAuditFields("tester", s.now),
	}
	s.Require().NoError(s.repos.TradeRepo.SaveTrade(s.ctx, trade))
	s.Regexp(`^TR-\d{6}$`, trade.CFID)

	from, to := date(2034, 3, 1), date(2034, 3, 31)
	listed, err := s.repos.TradeRepo.ListTrades(s.ctx, domain.TradeFilter{Metal: domain.Gold, From: &from, To: &to})
	s.Require().NoError(err)
	s.Len(listed, 1)

	s.Require().NoError(s.repos.TradeRepo.MarkTradeVoided(s.ctx, trade.TradeID, "tester", s.now))
	listed, err = s.repos.TradeRepo.ListTrades(s.ctx, domain.TradeFilter{From: &from, To: &to})
	s.Require().NoError(err)
	s.Empty(listed)

	voided, err := s.repos.TradeRepo.FindTradeByID(s.ctx, trade.TradeID)
	s.Require().NoError(err)
	s.True(voided.IsVoided)
	s.Require().NotNil(voided.VoidedAt)
	s.True(voided.FineWeightGrams.Equal(decimal.RequireFromString("19.9")))
}

func (s *RepositoryIntegrationSuite) TestUdhari_SettleAndOverdue() {
	c := s.newCustomer("Anil Shah")
	due := date(2024, 6, 1)
	u := &domain.Udhari{
		UdhariID:    uuid.NewString(),
		CustomerID:  c.CustomerID,
		Direction:   domain.UdhariGiven,
		AmountPaise: 150000,
		Status:      domain.UdhariOpen,
		IssuedOn:    date(2024, 5, 1),
		DueOn:       &due,
		PaymentMode: domain.PaymentCash,
		AuditFields: domain.NewAuditFields("tester", s.now),
	}
	s.Require().NoError(s.repos.UdhariRepo.SaveUdhari(s.ctx, u))
	s.Regexp(`^UD-\d{6}$`, u.CFID)

	asOf := date(2024, 6, 15)
	overdue, err := s.repos.UdhariRepo.ListUdhari(s.ctx, domain.UdhariFilter{CustomerID: c.CustomerID, OverdueAsOf: &asOf})
	s.Require().NoError(err)
	s.Len(overdue, 1)

	err = s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		locked, err := s.repos.UdhariRepo.FindUdhariByIDForUpdate(ctx, u.UdhariID)
		if err != nil {
			return err
		}
		locked.SettledPaise = 50000
		locked.Status = domain.UdhariPartiallySettled
		if err := s.repos.UdhariRepo.UpdateUdhariSettlement(ctx, *locked); err != nil {
			return err
		}
		return s.repos.UdhariRepo.SaveSettlement(ctx, domain.UdhariSettlement{
			SettlementID: uuid.NewString(),
			UdhariID:     u.UdhariID,
			AmountPaise:  50000,
			PaidOn:       asOf,
			PaymentMode:  domain.PaymentUPI,
			CreatedAt:    s.now,
			CreatedBy:    "tester",
		})
	})
	s.Require().NoError(err)

	settlements, err := s.repos.UdhariRepo.ListSettlements(s.ctx, u.UdhariID)
	s.Require().NoError(err)
	s.Require().Len(settlements, 1)
	s.Equal(domain.PaymentUPI, settlements[0].PaymentMode)

	given, _, overdueCount, err := s.repos.ReportingRepo.GetOpenUdhariTotals(s.ctx, asOf)
	s.Require().NoError(err)
	s.GreaterOrEqual(given, int64(100000))
	s.GreaterOrEqual(overdueCount, 1)
}

func (s *RepositoryIntegrationSuite) TestExpense_SumExcludesDeleted() {
	day := date(2035, 4, 10)
	for i, amount := range []int64{120000, 30000} {
		e := domain.Expense{
			ExpenseID:   uuid.NewString(),
			Category:    domain.ExpenseRent,
			AmountPaise: amount,
			ExpenseDate: day,
			PaymentMode: domain.PaymentCash,
			AuditFields: domain.NewAuditFields("tester", s.now),
		}
		s.Require().NoError(s.repos.ExpenseRepo.SaveExpense(s.ctx, e))
		if i == 1 {
			s.Require().NoError(s.repos.ExpenseRepo.MarkExpenseDeleted(s.ctx, e.ExpenseID, "tester", s.now))
		}
	}

	totals, err := s.repos.ExpenseRepo.SumExpensesByCategory(s.ctx, day, day)
	s.Require().NoError(err)
	s.Equal([]domain.ExpenseCategoryTotal{{Category: domain.ExpenseRent, AmountPaise: 120000, Count: 1}}, totals)

	all, err := s.repos.ExpenseRepo.ListExpenses(s.ctx, domain.ExpenseFilter{From: &day, To: &day, IncludeDeleted: true})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *RepositoryIntegrationSuite) TestShopSettings_Update() {
	settings, err := s.repos.ShopRepo.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(settings.ShopName)

	settings.ShopName = "Lakshmi Jewellers"
	settings.MaxLoanToValuePct = decimal.RequireFromString("80")
	settings.LastUpdatedAt = s.now
	settings.LastUpdatedBy = "tester"
	s.Require().NoError(s.repos.ShopRepo.UpdateSettings(s.ctx, *settings))

	reloaded, err := s.repos.ShopRepo.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal("Lakshmi Jewellers", reloaded.ShopName)
	s.True(reloaded.MaxLoanToValuePct.Equal(decimal.NewFromInt(80)))
}

func (s *RepositoryIntegrationSuite) TestUser_Lifecycle() {
	t := s.T()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     "cashier-" + uuid.NewString()[:6],
		Name:         "Cashier",
		PasswordHash: "hash",
		AuditFields:  domain.NewAuditFields("tester", s.now),
	}
	require.NoError(t, s.repos.UserRepo.SaveUser(s.ctx, user))

	dup := user
	dup.UserID = uuid.NewString()
	assert.ErrorIs(t, s.repos.UserRepo.SaveUser(s.ctx, dup), apperrors.ErrDuplicate)

	expiry := s.now.Add(24 * time.Hour)
	require.NoError(t, s.repos.UserRepo.UpdateRefreshToken(s.ctx, user.UserID, "refresh-hash", expiry))
	found, err := s.repos.UserRepo.FindUserByUsername(s.ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, "refresh-hash", found.RefreshTokenHash)
	require.NotNil(t, found.RefreshTokenExpiryTime)
	assert.True(t, found.RefreshTokenExpiryTime.Equal(expiry))

	require.NoError(t, s.repos.UserRepo.ClearRefreshToken(s.ctx, user.UserID))
	found, err = s.repos.UserRepo.FindUserByID(s.ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, found.RefreshTokenHash)
	assert.Nil(t, found.RefreshTokenExpiryTime)

	require.NoError(t, s.repos.UserRepo.MarkUserDeleted(s.ctx, user.UserID, s.now, "tester"))
	_, err = s.repos.UserRepo.FindUserByID(s.ctx, user.UserID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	deleted, err := s.repos.UserRepo.FindUserByUsername(s.ctx, user.Username)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
}
