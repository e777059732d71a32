package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/SscSPs/jewel_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashBookHandlerTestSuite struct {
	handlerSuite
	mockCashBook *MockCashBookService
}

func (s *CashBookHandlerTestSuite) SetupTest() {
	s.setupRouter()
	s.mockCashBook = new(MockCashBookService)
	registerCashBookRoutes(s.v1, s.mockCashBook)
}

func (s *CashBookHandlerTestSuite) TestListEntries_PassesTokenAndReturnsNext() {
	token := "eyJjdXJzb3IiOjF9"
	next := "eyJjdXJzb3IiOjJ9"
	entries := []domain.LedgerEntry{{
		EntryID:             uuid.NewString(),
		AccountCode:         domain.AccountCash,
		EntryDate:           time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Source:              domain.SourceExpense,
		Direction:           domain.DirectionOut,
		AmountPaise:         25_000,
		RunningBalancePaise: 975_000,
		Narration:           "Tea and snacks",
	}}

	// the path code is case-insensitive
	s.mockCashBook.On("ListEntries", mock.Anything, domain.AccountCash, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Limit == 1 && p.NextToken != nil && *p.NextToken == token
	})).Return(entries, &next, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/cash/entries?limit=1&nextToken="+token, nil)

	s.assertStatus(w, http.StatusOK)
	var resp dto.ListEntriesResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Entries, 1)
	s.Equal(int64(975_000), resp.Entries[0].RunningBalancePaise)
	s.Require().NotNil(resp.NextToken)
	s.Equal(next, *resp.NextToken)
	s.mockCashBook.AssertExpectations(s.T())
}

func (s *CashBookHandlerTestSuite) TestListEntries_BadToken() {
	s.mockCashBook.On("ListEntries", mock.Anything, domain.AccountBank, mock.Anything).
		Return(nil, nil, apperrors.ErrValidation).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/BANK/entries?nextToken=garbage", nil)

	s.assertStatus(w, http.StatusBadRequest)
}

func (s *CashBookHandlerTestSuite) TestListEntries_LimitOutOfRange() {
	w := s.do(http.MethodGet, "/api/v1/accounts/CASH/entries?limit=5000", nil)

	s.assertStatus(w, http.StatusBadRequest)
	s.mockCashBook.AssertNotCalled(s.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CashBookHandlerTestSuite) TestAdjustAccount() {
	entry := &domain.LedgerEntry{
		EntryID:             uuid.NewString(),
		AccountCode:         domain.AccountCash,
		EntryDate:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Source:              domain.SourceAdjustment,
		Direction:           domain.DirectionIn,
		AmountPaise:         1_000_000,
		RunningBalancePaise: 1_000_000,
		Narration:           "Opening balance",
	}
	req := dto.AdjustAccountRequest{
		Direction:   domain.DirectionIn,
		AmountPaise: 1_000_000,
		EntryDate:   "2026-04-01",
		Narration:   "Opening balance",
	}
	s.mockCashBook.On("AdjustAccount", mock.Anything, domain.AccountCash, req, s.userID).Return(entry, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/CASH/adjustments", req)

	s.assertStatus(w, http.StatusCreated)
	s.mockCashBook.AssertExpectations(s.T())
}

func (s *CashBookHandlerTestSuite) TestGetAccount_Unknown() {
	s.mockCashBook.On("GetAccount", mock.Anything, domain.AccountCode("WALLET")).Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/wallet", nil)

	s.assertStatus(w, http.StatusNotFound)
}

func TestCashBookHandler(t *testing.T) {
	suite.Run(t, new(CashBookHandlerTestSuite))
}
