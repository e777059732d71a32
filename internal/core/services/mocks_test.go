package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockTxManager runs the callback directly, optionally failing first.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// MockCashBookPoster records postings.
type MockCashBookPoster struct {
	mock.Mock
}

func (m *MockCashBookPoster) Post(ctx context.Context, posting domain.Posting, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, posting, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountOpenItems(ctx context.Context, customerID string) (int, int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	return m.Called(ctx, customerID, userID, now).Error(0)
}

// MockLoanRepository is a mock type for the LoanRepositoryFacade
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListOpenLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan *domain.Loan) error {
	return m.Called(ctx, loan).Error(0)
}

func (m *MockLoanRepository) UpdateLoanNotes(ctx context.Context, loanID string, notes string, userID string, now time.Time) error {
	return m.Called(ctx, loanID, notes, userID, now).Error(0)
}

func (m *MockLoanRepository) FindLoanByIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanBalances(ctx context.Context, loan domain.Loan) error {
	return m.Called(ctx, loan).Error(0)
}

func (m *MockLoanRepository) ReleaseItems(ctx context.Context, loanID string, itemIDs []string, returnedOn time.Time) error {
	return m.Called(ctx, loanID, itemIDs, returnedOn).Error(0)
}

func (m *MockLoanRepository) SavePayment(ctx context.Context, payment domain.LoanPayment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockLoanRepository) ListPaymentsByLoan(ctx context.Context, loanID string) ([]domain.LoanPayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanPayment), args.Error(1)
}

// MockTradeRepository is a mock type for the TradeRepositoryFacade
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) SaveTrade(ctx context.Context, trade *domain.Trade) error {
	return m.Called(ctx, trade).Error(0)
}

func (m *MockTradeRepository) FindTradeByIDForUpdate(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) MarkTradeVoided(ctx context.Context, tradeID string, userID string, now time.Time) error {
	return m.Called(ctx, tradeID, userID, now).Error(0)
}

// MockUdhariRepository is a mock type for the UdhariRepositoryFacade
type MockUdhariRepository struct {
	mock.Mock
}

func (m *MockUdhariRepository) FindUdhariByID(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	args := m.Called(ctx, udhariID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Udhari), args.Error(1)
}

func (m *MockUdhariRepository) ListUdhari(ctx context.Context, filter domain.UdhariFilter) ([]domain.Udhari, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Udhari), args.Error(1)
}

func (m *MockUdhariRepository) ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error) {
	args := m.Called(ctx, udhariID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UdhariSettlement), args.Error(1)
}

func (m *MockUdhariRepository) SaveUdhari(ctx context.Context, udhari *domain.Udhari) error {
	return m.Called(ctx, udhari).Error(0)
}

func (m *MockUdhariRepository) FindUdhariByIDForUpdate(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	args := m.Called(ctx, udhariID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Udhari), args.Error(1)
}

func (m *MockUdhariRepository) UpdateUdhariSettlement(ctx context.Context, udhari domain.Udhari) error {
	return m.Called(ctx, udhari).Error(0)
}

func (m *MockUdhariRepository) SaveSettlement(ctx context.Context, settlement domain.UdhariSettlement) error {
	return m.Called(ctx, settlement).Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumExpensesByCategory(ctx context.Context, from, to time.Time) ([]domain.ExpenseCategoryTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategoryTotal), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseDetails(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, userID string, now time.Time) error {
	return m.Called(ctx, expenseID, userID, now).Error(0)
}

// MockCashBookRepository is a mock type for the CashBookRepositoryFacade
type MockCashBookRepository struct {
	mock.Mock
}

func (m *MockCashBookRepository) FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashAccount), args.Error(1)
}

func (m *MockCashBookRepository) ListAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashAccount), args.Error(1)
}

func (m *MockCashBookRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}

func (m *MockCashBookRepository) ListEntriesInRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockCashBookRepository) FindAccountByCodeForUpdate(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashAccount), args.Error(1)
}

func (m *MockCashBookRepository) SaveEntryAndBalance(ctx context.Context, entry domain.LedgerEntry, userID string, now time.Time) error {
	return m.Called(ctx, entry, userID, now).Error(0)
}

// MockMetalRateRepository is a mock type for the MetalRateRepositoryFacade
type MockMetalRateRepository struct {
	mock.Mock
}

func (m *MockMetalRateRepository) FindLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error) {
	args := m.Called(ctx, metal, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalRate), args.Error(1)
}

func (m *MockMetalRateRepository) ListRates(ctx context.Context, metal domain.Metal, from, to time.Time) ([]domain.MetalRate, error) {
	args := m.Called(ctx, metal, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetalRate), args.Error(1)
}

func (m *MockMetalRateRepository) UpsertRate(ctx context.Context, rate domain.MetalRate) (*domain.MetalRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalRate), args.Error(1)
}

// MockShopRepository is a mock type for the ShopRepositoryFacade
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSettings), args.Error(1)
}

func (m *MockShopRepository) UpdateSettings(ctx context.Context, settings domain.ShopSettings) error {
	return m.Called(ctx, settings).Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, expiry).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	return m.Called(ctx, userID, deletedAt, deletedBy).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetCashFlow(ctx context.Context, from, to time.Time) ([]domain.CashFlowLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowLine), args.Error(1)
}

func (m *MockReportingRepository) GetInterestIncome(ctx context.Context, from, to time.Time) ([]domain.InterestIncomeLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestIncomeLine), args.Error(1)
}

func (m *MockReportingRepository) GetOpenUdhariTotals(ctx context.Context, asOf time.Time) (int64, int64, int, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Get(1).(int64), args.Int(2), args.Error(3)
}

// fixedNow is the clock every service test runs at.
var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
