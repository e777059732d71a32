package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager     TransactionManager
	CustomerRepo  CustomerRepositoryFacade
	LoanRepo      LoanRepositoryFacade
	TradeRepo     TradeRepositoryFacade
	UdhariRepo    UdhariRepositoryFacade
	ExpenseRepo   ExpenseRepositoryFacade
	CashBookRepo  CashBookRepositoryFacade
	MetalRateRepo MetalRateRepositoryFacade
	ShopRepo      ShopRepositoryFacade
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepository
}
