package domain

import (
	"fmt"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
)

// Loan errors.
var (
	ErrLoanClosed            = fmt.Errorf("%w: loan is closed", apperrors.ErrConflict)
	ErrLoanPrincipalInvalid  = fmt.Errorf("%w: loan principal must be positive", apperrors.ErrValidation)
	ErrLoanRateInvalid       = fmt.Errorf("%w: monthly interest rate must be between 0 and 100", apperrors.ErrValidation)
	ErrLoanKindInvalid       = fmt.Errorf("%w: unknown loan kind", apperrors.ErrValidation)
	ErrCollateralRequired    = fmt.Errorf("%w: metal loans need at least one collateral item", apperrors.ErrValidation)
	ErrCollateralNotAllowed  = fmt.Errorf("%w: cash loans cannot carry collateral items", apperrors.ErrValidation)
	ErrCollateralMetal       = fmt.Errorf("%w: collateral metal does not match loan kind", apperrors.ErrValidation)
	ErrCollateralWeight      = fmt.Errorf("%w: collateral weights must be positive and net must not exceed gross", apperrors.ErrValidation)
	ErrPurityInvalid         = fmt.Errorf("%w: purity must be greater than 0 and at most 100", apperrors.ErrValidation)
	ErrLoanToValueExceeded   = fmt.Errorf("%w: principal exceeds the allowed loan-to-value of the collateral", apperrors.ErrValidation)
	ErrRepaymentInvalid      = fmt.Errorf("%w: repayment amount must be positive", apperrors.ErrValidation)
	ErrRepaymentExceedsDue   = fmt.Errorf("%w: repayment exceeds the amount due", apperrors.ErrValidation)
	ErrInterestExceedsDue    = fmt.Errorf("%w: interest part exceeds pending interest", apperrors.ErrValidation)
	ErrPrincipalExceedsDue   = fmt.Errorf("%w: principal part exceeds outstanding principal", apperrors.ErrValidation)
	ErrRepaymentSplitInvalid = fmt.Errorf("%w: principal and interest parts must add up to the amount", apperrors.ErrValidation)
	ErrPaymentBeforeAccrual  = fmt.Errorf("%w: payment date precedes the loan's last accrual date", apperrors.ErrValidation)
	ErrItemNotHeld           = fmt.Errorf("%w: collateral item is not held against this loan", apperrors.ErrValidation)
	ErrMetalRateMissing      = fmt.Errorf("%w: no metal rate on record to appraise the collateral", apperrors.ErrValidation)
)

// Trade errors.
var (
	ErrTradeWeightInvalid   = fmt.Errorf("%w: trade weight must be positive", apperrors.ErrValidation)
	ErrTradeRateMissing     = fmt.Errorf("%w: no metal rate supplied or on record for the trade date", apperrors.ErrValidation)
	ErrMakingChargesOnBuy   = fmt.Errorf("%w: making charges only apply to sales", apperrors.ErrValidation)
	ErrTradeAlreadyVoided   = fmt.Errorf("%w: trade is already voided", apperrors.ErrConflict)
	ErrTradeSideInvalid     = fmt.Errorf("%w: unknown trade side", apperrors.ErrValidation)
	ErrMetalInvalid         = fmt.Errorf("%w: unknown metal", apperrors.ErrValidation)
	ErrPaymentModeInvalid   = fmt.Errorf("%w: unknown payment mode", apperrors.ErrValidation)
	ErrAmountInvalid        = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	ErrDateRangeInvalid     = fmt.Errorf("%w: from date must not be after to date", apperrors.ErrValidation)
	ErrCustomerInactive     = fmt.Errorf("%w: customer is inactive", apperrors.ErrValidation)
	ErrCustomerHasOpenItems = fmt.Errorf("%w: customer has open loans or udhari", apperrors.ErrConflict)
)

// Udhari errors.
var (
	ErrUdhariSettled          = fmt.Errorf("%w: udhari is already settled", apperrors.ErrConflict)
	ErrSettlementExceedsDue   = fmt.Errorf("%w: settlement exceeds the outstanding udhari amount", apperrors.ErrValidation)
	ErrUdhariDirectionInvalid = fmt.Errorf("%w: unknown udhari direction", apperrors.ErrValidation)
	ErrDueBeforeIssue         = fmt.Errorf("%w: due date precedes issue date", apperrors.ErrValidation)
)

// Expense errors.
var (
	ErrExpenseCategoryInvalid = fmt.Errorf("%w: unknown expense category", apperrors.ErrValidation)
	ErrExpenseDeleted         = fmt.Errorf("%w: expense is already deleted", apperrors.ErrConflict)
)
