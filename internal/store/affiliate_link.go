package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateAffiliateLinkParams represents parameters for creating an affiliate link
type CreateAffiliateLinkParams struct {
	AffiliateID uuid.UUID
	ProductID   uuid.UUID
	UniqueCode  string
}

const sqlCreateAffiliateLink = `
INSERT INTO affiliate_links (affiliate_id, product_id, unique_code)
VALUES ($1, $2, $3)
ON CONFLICT (affiliate_id, product_id) DO NOTHING
RETURNING id, affiliate_id, product_id, unique_code, created_at
`

// CreateAffiliateLink inserts a link for the affiliate and product pair.
// If the pair already has a link the existing one is returned unchanged.
// A collision on the short code returns ErrUniqueCodeTaken.
func (s *Store) CreateAffiliateLink(ctx context.Context, params CreateAffiliateLinkParams) (AffiliateLink, error) {
	var link AffiliateLink
	err := s.db.GetContext(ctx, &link, sqlCreateAffiliateLink, params.AffiliateID, params.ProductID, params.UniqueCode)
	if err == nil {
		return link, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return s.GetAffiliateLinkByAffiliateAndProduct(ctx, params.AffiliateID, params.ProductID)
	}
	if isUniqueViolation(err) {
		return AffiliateLink{}, ErrUniqueCodeTaken
	}
	s.logger.Error(ctx, "failed to create affiliate link", err)
	return AffiliateLink{}, fmt.Errorf("failed to create affiliate link: %w", err)
}

const sqlGetAffiliateLinkByAffiliateAndProduct = `
SELECT id, affiliate_id, product_id, unique_code, created_at
FROM affiliate_links
WHERE affiliate_id = $1 AND product_id = $2
`

// GetAffiliateLinkByAffiliateAndProduct retrieves the link for an affiliate and product
func (s *Store) GetAffiliateLinkByAffiliateAndProduct(ctx context.Context, affiliateID, productID uuid.UUID) (AffiliateLink, error) {
	var link AffiliateLink
	err := s.db.GetContext(ctx, &link, sqlGetAffiliateLinkByAffiliateAndProduct, affiliateID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get affiliate link", err)
		return AffiliateLink{}, fmt.Errorf("failed to get affiliate link: %w", err)
	}
	return link, nil
}

const sqlGetLinkDestinationByCode = `
SELECT l.id AS link_id, l.affiliate_id, l.product_id, p.url AS product_url
FROM affiliate_links l
JOIN products p ON p.id = l.product_id
WHERE l.unique_code = $1
`

// GetLinkDestinationByCode resolves a short code to its link and product URL
func (s *Store) GetLinkDestinationByCode(ctx context.Context, code string) (LinkDestination, error) {
	var dest LinkDestination
	err := s.db.GetContext(ctx, &dest, sqlGetLinkDestinationByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LinkDestination{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link destination by code", err)
		return LinkDestination{}, fmt.Errorf("failed to get link destination by code: %w", err)
	}
	return dest, nil
}

const sqlGetLinkAttribution = `
SELECT l.id AS link_id, l.affiliate_id, l.product_id, p.payout_per_conversion, pr.email AS affiliate_email
FROM affiliate_links l
JOIN products p ON p.id = l.product_id
LEFT JOIN profiles pr ON pr.id = l.affiliate_id
WHERE l.id = $1
`

// GetLinkAttribution retrieves a link with its product payout and owner email
func (s *Store) GetLinkAttribution(ctx context.Context, linkID uuid.UUID) (LinkAttribution, error) {
	var attribution LinkAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetLinkAttribution, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LinkAttribution{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link attribution", err)
		return LinkAttribution{}, fmt.Errorf("failed to get link attribution: %w", err)
	}
	return attribution, nil
}
