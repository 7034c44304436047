package processor

import (
	"affiliate-server/internal/store"
	"context"

	"github.com/google/uuid"
)

// WithdrawalStore defines the database operations required by WithdrawalProcessor
type WithdrawalStore interface {
	CreateWithdrawalRequest(ctx context.Context, params store.CreateWithdrawalRequestParams) (store.WithdrawalRequest, error)
	TransitionWithdrawalRequest(ctx context.Context, requestID uuid.UUID, status string) (store.WithdrawalRequest, error)
}
