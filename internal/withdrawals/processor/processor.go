package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount         = errors.New("withdrawal amount must be positive")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrInvalidStatus         = errors.New("invalid withdrawal status")
	ErrInvalidTransition     = errors.New("withdrawal request is not pending")
	ErrWithdrawalNotFound    = errors.New("withdrawal request not found")
)

type WithdrawalProcessor struct {
	store  WithdrawalStore
	logger *observability.Logger
}

func New(store WithdrawalStore, logger *observability.Logger) WithdrawalProcessor {
	return WithdrawalProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateWithdrawalRequest represents a payout request from an affiliate
type CreateWithdrawalRequest struct {
	AffiliateID uuid.UUID
	Amount      decimal.Decimal
	Details     PaymentDetails
}

// Create records a new pending withdrawal request
func (p *WithdrawalProcessor) Create(ctx context.Context, req CreateWithdrawalRequest) (store.WithdrawalRequest, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: req.AffiliateID.String()})

	if !req.Amount.IsPositive() {
		return store.WithdrawalRequest{}, ErrInvalidAmount
	}
	if req.Details == nil {
		return store.WithdrawalRequest{}, fmt.Errorf("%w: details required", ErrInvalidPaymentDetails)
	}
	if err := req.Details.Validate(); err != nil {
		return store.WithdrawalRequest{}, err
	}

	request, err := p.store.CreateWithdrawalRequest(ctx, store.CreateWithdrawalRequestParams{
		AffiliateID:    req.AffiliateID,
		Amount:         req.Amount,
		PaymentMethod:  req.Details.Method(),
		PaymentDetails: req.Details.toJSONB(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create withdrawal request", err)
		return store.WithdrawalRequest{}, fmt.Errorf("failed to create withdrawal request: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "withdrawal_request_id", Value: request.ID.String()})
	p.logger.Info(ctx, "withdrawal requested")
	return request, nil
}

// Transition moves a pending request to paid or rejected. Terminal requests cannot move again.
func (p *WithdrawalProcessor) Transition(ctx context.Context, requestID uuid.UUID, target string) (store.WithdrawalRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "withdrawal_request_id", Value: requestID.String()},
		observability.Field{Key: "target_status", Value: target},
	)

	if target != store.WithdrawalStatusPaid && target != store.WithdrawalStatusRejected {
		return store.WithdrawalRequest{}, ErrInvalidStatus
	}

	request, err := p.store.TransitionWithdrawalRequest(ctx, requestID, target)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.WithdrawalRequest{}, ErrWithdrawalNotFound
		case errors.Is(err, store.ErrWithdrawalNotPending):
			p.logger.Warn(ctx, "rejected transition of a processed withdrawal request")
			return store.WithdrawalRequest{}, ErrInvalidTransition
		default:
			p.logger.Error(ctx, "failed to transition withdrawal request", err)
			return store.WithdrawalRequest{}, fmt.Errorf("failed to transition withdrawal request: %w", err)
		}
	}

	p.logger.Info(ctx, "withdrawal request processed")
	return request, nil
}
