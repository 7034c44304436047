package apierrors

import (
	"errors"

	referralProcessor "affiliate-server/internal/referral/processor"
	"affiliate-server/internal/store"
	withdrawalsProcessor "affiliate-server/internal/withdrawals/processor"
)

// MapError converts domain/processor errors to APIErrors.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map referral processor errors
	case errors.Is(err, referralProcessor.ErrLinkNotFound):
		return NotFound(CodeLinkNotFound, "Affiliate link not found")

	case errors.Is(err, referralProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Product not found or not open to affiliates")

	// Map withdrawal processor errors
	case errors.Is(err, withdrawalsProcessor.ErrWithdrawalNotFound):
		return NotFound(CodeWithdrawalNotFound, "Withdrawal request not found")

	case errors.Is(err, withdrawalsProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Amount must be greater than zero")

	case errors.Is(err, withdrawalsProcessor.ErrInvalidPaymentDetails):
		return BadRequest(CodeInvalidPaymentDetails, err.Error())

	case errors.Is(err, withdrawalsProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Status must be one of: paid, rejected")

	case errors.Is(err, withdrawalsProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "Withdrawal request is no longer pending")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
