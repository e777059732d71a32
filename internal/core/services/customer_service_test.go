package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/core/services"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	customerRepo *MockCustomerRepository
	loanRepo     *MockLoanRepository
	udhariRepo   *MockUdhariRepository
	service      portssvc.CustomerSvcFacade
	ctx          context.Context
	userID       string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.customerRepo = new(MockCustomerRepository)
	suite.loanRepo = new(MockLoanRepository)
	suite.udhariRepo = new(MockUdhariRepository)
	suite.service = services.NewCustomerService(suite.customerRepo, suite.loanRepo, suite.udhariRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_TrimsAndActivates() {
	suite.customerRepo.On("SaveCustomer", suite.ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Ramesh Kumar" && c.Phone == "9876543210" && c.IsActive &&
			c.CreatedBy == suite.userID && c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(suite.ctx, dto.CreateCustomerRequest{
		Name: "  Ramesh Kumar ", Phone: " 9876543210",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.customerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Duplicate() {
	suite.customerRepo.On("SaveCustomer", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCustomer(suite.ctx, dto.CreateCustomerRequest{Name: "Asha"}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_AppliesProvidedFields() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, "cust-1").Return(&domain.Customer{
		CustomerID: "cust-1", Name: "Asha", Phone: "111", Address: "Old street", IsActive: true,
	}, nil).Once()
	suite.customerRepo.On("UpdateCustomer", suite.ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Asha" && c.Phone == "222" && c.Address == "Old street" && c.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	customer, err := suite.service.UpdateCustomer(suite.ctx, "cust-1", dto.UpdateCustomerRequest{Phone: ptr(" 222 ")}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("222", customer.Phone)
	suite.customerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_BlockedByOpenItems() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, "cust-1").Return(&domain.Customer{CustomerID: "cust-1"}, nil).Once()
	suite.customerRepo.On("CountOpenItems", suite.ctx, "cust-1").Return(1, 0, nil).Once()

	err := suite.service.DeactivateCustomer(suite.ctx, "cust-1", suite.userID)

	suite.ErrorIs(err, domain.ErrCustomerHasOpenItems)
	suite.customerRepo.AssertNotCalled(suite.T(), "DeactivateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_Success() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, "cust-1").Return(&domain.Customer{CustomerID: "cust-1"}, nil).Once()
	suite.customerRepo.On("CountOpenItems", suite.ctx, "cust-1").Return(0, 0, nil).Once()
	suite.customerRepo.On("DeactivateCustomer", suite.ctx, "cust-1", suite.userID, fixedNow).Return(nil).Once()

	err := suite.service.DeactivateCustomer(suite.ctx, "cust-1", suite.userID)

	suite.NoError(err)
	suite.customerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestGetCustomerSummary_AccruesLoansAndNetsUdhari() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, "cust-1").Return(&domain.Customer{CustomerID: "cust-1", Name: "Asha"}, nil).Once()
	suite.loanRepo.On("ListLoans", suite.ctx, domain.LoanFilter{CustomerID: "cust-1", OpenOnly: true}).Return([]domain.Loan{{
		LoanID:                 "loan-1",
		Kind:                   domain.CashLoan,
		PrincipalPaise:         100000,
		OutstandingPaise:       100000,
		MonthlyRatePct:         decimal.NewFromInt(2),
		StartDate:              date(2024, 3, 15),
		InterestAccruedThrough: date(2024, 3, 15),
		Status:                 domain.LoanActive,
	}}, nil).Once()
	suite.udhariRepo.On("ListUdhari", suite.ctx, domain.UdhariFilter{CustomerID: "cust-1", OpenOnly: true}).Return([]domain.Udhari{
		{UdhariID: "u-1", Direction: domain.UdhariGiven, AmountPaise: 5000, SettledPaise: 1000},
		{UdhariID: "u-2", Direction: domain.UdhariTaken, AmountPaise: 3000},
	}, nil).Once()

	summary, err := suite.service.GetCustomerSummary(suite.ctx, "cust-1")

	suite.Require().NoError(err)
	suite.Equal("Asha", summary.Customer.Name)
	suite.Require().Len(summary.OpenLoans, 1)
	suite.Equal(3, summary.OpenLoans[0].MonthsAccrued)
	suite.Equal(int64(106000), summary.OpenLoans[0].PayoffPaise)
	suite.Equal(domain.LoanActive, summary.OpenLoans[0].Status)
	suite.Equal(int64(100000), summary.LoanOutstandingPaise)
	suite.Equal(int64(6000), summary.LoanInterestDuePaise)
	suite.Equal(int64(4000), summary.UdhariGivenOpenPaise)
	suite.Equal(int64(3000), summary.UdhariTakenOpenPaise)
	suite.Equal(2, summary.OpenUdhariCount)
}

func (suite *CustomerServiceTestSuite) TestGetCustomer_NotFound() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomer(suite.ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
