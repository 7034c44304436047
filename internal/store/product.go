package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetProductByID = `
SELECT id, name, url, payout_per_conversion, is_affiliate_enabled, created_at, updated_at
FROM products
WHERE id = $1
`

// GetProductByID retrieves a product by ID
func (s *Store) GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get product by id", err)
		return Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	return product, nil
}
