package handlers

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetLoanPosition(ctx context.Context, loanID string, asOf time.Time) (*domain.LoanPosition, error) {
	args := m.Called(ctx, loanID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanPosition), args.Error(1)
}
func (m *MockLoanService) ListLoanPayments(ctx context.Context, loanID string) ([]domain.LoanPayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanPayment), args.Error(1)
}
func (m *MockLoanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) RepayLoan(ctx context.Context, loanID string, req dto.RepayLoanRequest, userID string) (*domain.LoanPayment, *domain.Loan, error) {
	args := m.Called(ctx, loanID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.LoanPayment), args.Get(1).(*domain.Loan), args.Error(2)
}
func (m *MockLoanService) UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest, userID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Mock CashBookService ---
type MockCashBookService struct {
	mock.Mock
}

func (m *MockCashBookService) Post(ctx context.Context, posting domain.Posting, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, posting, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockCashBookService) ListAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashAccount), args.Error(1)
}
func (m *MockCashBookService) GetAccount(ctx context.Context, code domain.AccountCode) (*domain.CashAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashAccount), args.Error(1)
}
func (m *MockCashBookService) ListEntries(ctx context.Context, code domain.AccountCode, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, code, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}
func (m *MockCashBookService) AdjustAccount(ctx context.Context, code domain.AccountCode, req dto.AdjustAccountRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, code, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ portssvc.CashBookSvcFacade = (*MockCashBookService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, asOf time.Time) (*domain.SummaryReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}
func (m *MockReportingService) InterestIncome(ctx context.Context, from, to time.Time) (*domain.InterestIncomeReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestIncomeReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ExportService ---
// Writes Content to the writer when the call succeeds.
type MockExportService struct {
	mock.Mock
	Content string
}

func (m *MockExportService) Export(ctx context.Context, w io.Writer, dataset portssvc.ExportDataset, format portssvc.ExportFormat, from, to time.Time) error {
	args := m.Called(ctx, dataset, format, from, to)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := io.WriteString(w, m.Content)
	return err
}

var _ portssvc.ExportService = (*MockExportService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime).Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	return m.Called(ctx, userID, requestingUserID).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock TradeService ---
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) RecordTrade(ctx context.Context, req dto.RecordTradeRequest, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}
func (m *MockTradeService) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}
func (m *MockTradeService) ListTrades(ctx context.Context, params dto.ListTradesParams) ([]domain.Trade, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}
func (m *MockTradeService) VoidTrade(ctx context.Context, tradeID string, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

var _ portssvc.TradeSvcFacade = (*MockTradeService)(nil)

// --- Mock UdhariService ---
type MockUdhariService struct {
	mock.Mock
}

func (m *MockUdhariService) GetUdhari(ctx context.Context, udhariID string) (*domain.Udhari, error) {
	args := m.Called(ctx, udhariID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Udhari), args.Error(1)
}
func (m *MockUdhariService) ListUdhari(ctx context.Context, params dto.ListUdhariParams) ([]domain.Udhari, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Udhari), args.Error(1)
}
func (m *MockUdhariService) ListSettlements(ctx context.Context, udhariID string) ([]domain.UdhariSettlement, error) {
	args := m.Called(ctx, udhariID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UdhariSettlement), args.Error(1)
}
func (m *MockUdhariService) CreateUdhari(ctx context.Context, req dto.CreateUdhariRequest, userID string) (*domain.Udhari, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Udhari), args.Error(1)
}
func (m *MockUdhariService) SettleUdhari(ctx context.Context, udhariID string, req dto.SettleUdhariRequest, userID string) (*domain.UdhariSettlement, *domain.Udhari, error) {
	args := m.Called(ctx, udhariID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.UdhariSettlement), args.Get(1).(*domain.Udhari), args.Error(2)
}

var _ portssvc.UdhariSvcFacade = (*MockUdhariService)(nil)

// --- Mock MetalRateService ---
type MockMetalRateService struct {
	mock.Mock
}

func (m *MockMetalRateService) SetRate(ctx context.Context, req dto.SetMetalRateRequest, userID string) (*domain.MetalRate, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalRate), args.Error(1)
}
func (m *MockMetalRateService) GetLatestRate(ctx context.Context, metal domain.Metal, asOf time.Time) (*domain.MetalRate, error) {
	args := m.Called(ctx, metal, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalRate), args.Error(1)
}
func (m *MockMetalRateService) ListRates(ctx context.Context, params dto.ListMetalRatesParams) ([]domain.MetalRate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetalRate), args.Error(1)
}

var _ portssvc.MetalRateSvcFacade = (*MockMetalRateService)(nil)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerSummary(ctx context.Context, customerID string) (*domain.CustomerSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerSummary), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeactivateCustomer(ctx context.Context, customerID string, userID string) error {
	return m.Called(ctx, customerID, userID).Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) SummariseExpenses(ctx context.Context, from, to time.Time) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	return m.Called(ctx, expenseID, userID).Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// MockUsageTracker records captured analytics events.
type MockUsageTracker struct {
	Events []TrackedEvent
}

type TrackedEvent struct {
	DistinctID string
	Event      string
	Properties map[string]any
}

func (m *MockUsageTracker) Enabled() bool { return true }

func (m *MockUsageTracker) Capture(distinctID, event string, properties map[string]any) {
	m.Events = append(m.Events, TrackedEvent{DistinctID: distinctID, Event: event, Properties: properties})
}
