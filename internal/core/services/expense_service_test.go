package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/core/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	repo      *MockExpenseRepository
	cashBook  *MockCashBookPoster
	txManager *MockTxManager
	publisher *MockEventPublisher
	service   portssvc.ExpenseSvcFacade
	ctx       context.Context
	userID    string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.repo = new(MockExpenseRepository)
	suite.cashBook = new(MockCashBookPoster)
	suite.txManager = new(MockTxManager)
	suite.publisher = new(MockEventPublisher)
	suite.service = services.NewExpenseService(suite.repo, suite.cashBook, suite.txManager,
		services.WithClock(fixedClock), services.WithPublisher(suite.publisher))
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PostsOutflow() {
	suite.txManager.On("RunInTx", mock.Anything).Return(nil).Once()
	suite.repo.On("SaveExpense", suite.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == domain.ExpenseRent && e.AmountPaise == 1500000 && e.CreatedBy == suite.userID
	})).Return(nil).Once()
	suite.cashBook.On("Post", suite.ctx, mock.MatchedBy(func(p domain.Posting) bool {
		return p.Direction == domain.DirectionOut && p.Source == domain.SourceExpense && p.PaymentMode == domain.PaymentBank
	}), suite.userID).Return(&domain.LedgerEntry{}, nil).Once()
	suite.publisher.On("Publish", suite.ctx, eventOfType(domain.EventExpenseCreated)).Return(nil).Once()

	expense, err := suite.service.CreateExpense(suite.ctx, dto.CreateExpenseRequest{
		Category: domain.ExpenseRent, AmountPaise: 1500000, ExpenseDate: "2024-06-01",
		PaymentMode: domain.PaymentBank, Description: "June rent",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("June rent", expense.Description)
	suite.repo.AssertExpectations(suite.T())
	suite.cashBook.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RollsBackOnPostingFailure() {
	suite.txManager.On("RunInTx", mock.Anything).Return(nil).Once()
	suite.repo.On("SaveExpense", suite.ctx, mock.Anything).Return(nil).Once()
	suite.cashBook.On("Post", suite.ctx, mock.Anything, suite.userID).Return(nil, errors.New("db down")).Once()

	_, err := suite.service.CreateExpense(suite.ctx, dto.CreateExpenseRequest{
		Category: domain.ExpenseSupplies, AmountPaise: 100, ExpenseDate: "2024-06-01",
	}, suite.userID)

	suite.Error(err)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidCategory() {
	_, err := suite.service.CreateExpense(suite.ctx, dto.CreateExpenseRequest{
		Category: "GIFTS", AmountPaise: 100, ExpenseDate: "2024-06-01",
	}, suite.userID)

	suite.ErrorIs(err, domain.ErrExpenseCategoryInvalid)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_ChangesDetailsOnly() {
	suite.repo.On("FindExpenseByID", suite.ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Category: domain.ExpenseOther, AmountPaise: 700,
	}, nil).Once()
	suite.repo.On("UpdateExpenseDetails", suite.ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == domain.ExpenseTransport && e.Description == "courier" && e.AmountPaise == 700 &&
			e.LastUpdatedBy == suite.userID && e.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	category := domain.ExpenseTransport
	expense, err := suite.service.UpdateExpense(suite.ctx, "exp-1", dto.UpdateExpenseRequest{
		Category: &category, Description: ptr("courier"),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseTransport, expense.Category)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_Deleted() {
	suite.repo.On("FindExpenseByID", suite.ctx, "exp-1").Return(&domain.Expense{ExpenseID: "exp-1", IsDeleted: true}, nil).Once()

	_, err := suite.service.UpdateExpense(suite.ctx, "exp-1", dto.UpdateExpenseRequest{Description: ptr("x")}, suite.userID)

	suite.ErrorIs(err, domain.ErrExpenseDeleted)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_ReversesPosting() {
	suite.txManager.On("RunInTx", mock.Anything).Return(nil).Once()
	suite.repo.On("FindExpenseByIDForUpdate", suite.ctx, "exp-1").Return(&domain.Expense{
		ExpenseID: "exp-1", Category: domain.ExpenseSalary, AmountPaise: 2000000, PaymentMode: domain.PaymentCash,
	}, nil).Once()
	suite.repo.On("MarkExpenseDeleted", suite.ctx, "exp-1", suite.userID, fixedNow).Return(nil).Once()
	suite.cashBook.On("Post", suite.ctx, mock.MatchedBy(func(p domain.Posting) bool {
		return p.Direction == domain.DirectionIn && p.Source == domain.SourceExpenseReversal &&
			p.AmountPaise == 2000000 && p.EntryDate.Equal(date(2024, 6, 15))
	}), suite.userID).Return(&domain.LedgerEntry{}, nil).Once()

	err := suite.service.DeleteExpense(suite.ctx, "exp-1", suite.userID)

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
	suite.cashBook.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Twice() {
	suite.txManager.On("RunInTx", mock.Anything).Return(nil).Once()
	suite.repo.On("FindExpenseByIDForUpdate", suite.ctx, "exp-1").Return(&domain.Expense{ExpenseID: "exp-1", IsDeleted: true}, nil).Once()

	err := suite.service.DeleteExpense(suite.ctx, "exp-1", suite.userID)

	suite.ErrorIs(err, domain.ErrExpenseDeleted)
	suite.repo.AssertNotCalled(suite.T(), "MarkExpenseDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestSummariseExpenses_Totals() {
	from, to := date(2024, 6, 1), date(2024, 6, 30)
	suite.repo.On("SumExpensesByCategory", suite.ctx, from, to).Return([]domain.ExpenseCategoryTotal{
		{Category: domain.ExpenseRent, AmountPaise: 1500000, Count: 1},
		{Category: domain.ExpenseUtilities, AmountPaise: 320000, Count: 2},
	}, nil).Once()

	summary, err := suite.service.SummariseExpenses(suite.ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(int64(1820000), summary.TotalPaise)
	suite.Len(summary.Categories, 2)

	_, err = suite.service.SummariseExpenses(suite.ctx, to, from)
	suite.ErrorIs(err, domain.ErrDateRangeInvalid)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
