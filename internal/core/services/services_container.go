package services

import (
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	withEvents := WithPublisher(publisher)

	// The cash book is shared by every service that moves money.
	container.CashBook = NewCashBookService(repos.CashBookRepo, repos.TxManager)

	container.Customer = NewCustomerService(repos.CustomerRepo, repos.LoanRepo, repos.UdhariRepo)
	container.MetalRate = NewMetalRateService(repos.MetalRateRepo)
	container.Shop = NewShopService(repos.ShopRepo)

	container.Loan = NewLoanService(LoanDeps{
		LoanRepo:      repos.LoanRepo,
		CustomerRepo:  repos.CustomerRepo,
		MetalRateRepo: repos.MetalRateRepo,
		ShopRepo:      repos.ShopRepo,
		CashBook:      container.CashBook,
		TxManager:     repos.TxManager,
	}, withEvents)
	container.Trade = NewTradeService(repos.TradeRepo, repos.CustomerRepo, repos.MetalRateRepo, container.CashBook, repos.TxManager, withEvents)
	container.Udhari = NewUdhariService(repos.UdhariRepo, repos.CustomerRepo, container.CashBook, repos.TxManager, withEvents)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.CashBook, repos.TxManager, withEvents)

	container.Reporting = NewReportingService(repos.ReportingRepo, repos.LoanRepo, repos.CashBookRepo)
	container.Export = NewExportService(ExportSources{
		Loans:    repos.LoanRepo,
		Trades:   repos.TradeRepo,
		Udhari:   repos.UdhariRepo,
		Expenses: repos.ExpenseRepo,
		CashBook: repos.CashBookRepo,
	})

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
