package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateConversionParams represents parameters for creating a conversion
type CreateConversionParams struct {
	AffiliateLinkID   uuid.UUID
	ProductID         uuid.UUID
	EndUserIdentifier string
	PayoutAmount      decimal.Decimal
	Status            string
}

// The (affiliate_link_id, end_user_identifier) unique constraint is the idempotency key.
// A conflicting insert returns no row instead of failing.
const sqlCreateConversion = `
INSERT INTO conversions (affiliate_link_id, product_id, end_user_identifier, payout_amount, status)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (affiliate_link_id, end_user_identifier) DO NOTHING
RETURNING id, affiliate_link_id, product_id, end_user_identifier, payout_amount, status, created_at, updated_at
`

// CreateConversion inserts a conversion unless one already exists for the
// same link and end user, in which case ErrDuplicateConversion is returned.
func (s *Store) CreateConversion(ctx context.Context, params CreateConversionParams) (Conversion, error) {
	var conversion Conversion
	err := s.db.GetContext(ctx, &conversion, sqlCreateConversion,
		params.AffiliateLinkID,
		params.ProductID,
		params.EndUserIdentifier,
		params.PayoutAmount,
		params.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return Conversion{}, ErrDuplicateConversion
		}
		s.logger.Error(ctx, "failed to create conversion", err)
		return Conversion{}, fmt.Errorf("failed to create conversion: %w", err)
	}
	return conversion, nil
}
