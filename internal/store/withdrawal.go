package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequestParams represents parameters for creating a withdrawal request
type CreateWithdrawalRequestParams struct {
	AffiliateID    uuid.UUID
	Amount         decimal.Decimal
	PaymentMethod  string
	PaymentDetails JSONB
}

const sqlCreateWithdrawalRequest = `
INSERT INTO withdrawal_requests (affiliate_id, amount, payment_method, payment_details)
VALUES ($1, $2, $3, $4)
RETURNING id, affiliate_id, amount, payment_method, payment_details, status, requested_at, processed_at
`

// CreateWithdrawalRequest creates a new withdrawal request in the pending state
func (s *Store) CreateWithdrawalRequest(ctx context.Context, params CreateWithdrawalRequestParams) (WithdrawalRequest, error) {
	var request WithdrawalRequest
	err := s.db.GetContext(ctx, &request, sqlCreateWithdrawalRequest,
		params.AffiliateID,
		params.Amount,
		params.PaymentMethod,
		params.PaymentDetails)
	if err != nil {
		s.logger.Error(ctx, "failed to create withdrawal request", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to create withdrawal request: %w", err)
	}
	return request, nil
}

const sqlGetWithdrawalRequestByID = `
SELECT id, affiliate_id, amount, payment_method, payment_details, status, requested_at, processed_at
FROM withdrawal_requests
WHERE id = $1
`

// GetWithdrawalRequestByID retrieves a withdrawal request by ID
func (s *Store) GetWithdrawalRequestByID(ctx context.Context, requestID uuid.UUID) (WithdrawalRequest, error) {
	var request WithdrawalRequest
	err := s.db.GetContext(ctx, &request, sqlGetWithdrawalRequestByID, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WithdrawalRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get withdrawal request by id", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to get withdrawal request by id: %w", err)
	}
	return request, nil
}

const sqlTransitionWithdrawalRequest = `
UPDATE withdrawal_requests
SET status = $2,
    processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING id, affiliate_id, amount, payment_method, payment_details, status, requested_at, processed_at
`

// TransitionWithdrawalRequest moves a pending request to a terminal status.
// Returns ErrWithdrawalNotPending if the request already left pending, ErrNotFound if it does not exist.
func (s *Store) TransitionWithdrawalRequest(ctx context.Context, requestID uuid.UUID, status string) (WithdrawalRequest, error) {
	var request WithdrawalRequest
	err := s.db.GetContext(ctx, &request, sqlTransitionWithdrawalRequest, requestID, status)
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to transition withdrawal request", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to transition withdrawal request: %w", err)
	}

	if _, err := s.GetWithdrawalRequestByID(ctx, requestID); err != nil {
		return WithdrawalRequest{}, err
	}
	return WithdrawalRequest{}, ErrWithdrawalNotPending
}
