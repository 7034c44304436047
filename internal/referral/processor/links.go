package processor

import (
	"affiliate-server/internal/observability"
	"affiliate-server/internal/referral/utils"
	"affiliate-server/internal/store"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// IssuedLink is an affiliate link together with its public share URL
type IssuedLink struct {
	store.AffiliateLink
	ShareURL string `json:"share_url"`
}

// GetOrCreateLink returns the affiliate's link for a product, creating it on first request
func (p *ReferralProcessor) GetOrCreateLink(ctx context.Context, affiliateID, productID uuid.UUID) (IssuedLink, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "product_id", Value: productID.String()},
	)

	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return IssuedLink{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product", err)
		return IssuedLink{}, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.IsAffiliateEnabled {
		return IssuedLink{}, ErrProductNotFound
	}

	existing, err := p.store.GetAffiliateLinkByAffiliateAndProduct(ctx, affiliateID, productID)
	if err == nil {
		return p.issued(existing), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get affiliate link", err)
		return IssuedLink{}, fmt.Errorf("failed to get affiliate link: %w", err)
	}

	for attempt := 0; attempt < maxLinkCodeAttempts; attempt++ {
		code, err := p.newCode(linkCodeLength)
		if err != nil {
			return IssuedLink{}, fmt.Errorf("failed to generate link code: %w", err)
		}

		link, err := p.store.CreateAffiliateLink(ctx, store.CreateAffiliateLinkParams{
			AffiliateID: affiliateID,
			ProductID:   productID,
			UniqueCode:  code,
		})
		if errors.Is(err, store.ErrUniqueCodeTaken) {
			p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "attempt", Value: attempt + 1}), "link code collision, retrying")
			continue
		}
		if err != nil {
			p.logger.Error(ctx, "failed to create affiliate link", err)
			return IssuedLink{}, fmt.Errorf("failed to create affiliate link: %w", err)
		}

		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "link_code", Value: link.UniqueCode}), "affiliate link issued")
		return p.issued(link), nil
	}

	p.logger.Error(ctx, "exhausted link code attempts", ErrCodeGenerationExhausted)
	return IssuedLink{}, ErrCodeGenerationExhausted
}

func (p *ReferralProcessor) issued(link store.AffiliateLink) IssuedLink {
	return IssuedLink{
		AffiliateLink: link,
		ShareURL:      utils.BuildShareLink(p.publicBaseURL, link.UniqueCode),
	}
}
