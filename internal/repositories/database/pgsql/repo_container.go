package pgsql

import (
	portsrepo "github.com/SscSPs/jewel_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     newTxManager(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		LoanRepo:      newPgxLoanRepository(dbPool),
		TradeRepo:     newPgxTradeRepository(dbPool),
		UdhariRepo:    newPgxUdhariRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		CashBookRepo:  newPgxCashBookRepository(dbPool),
		MetalRateRepo: newPgxMetalRateRepository(dbPool),
		ShopRepo:      newPgxShopRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
