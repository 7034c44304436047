package processor

import (
	"affiliate-server/internal/store"
	"context"
	"time"

	"github.com/google/uuid"
)

// LinkStore defines the database operations required by ReferralProcessor
type LinkStore interface {
	GetLinkDestinationByCode(ctx context.Context, code string) (store.LinkDestination, error)
	CreateClick(ctx context.Context, params store.CreateClickParams) error
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	GetAffiliateLinkByAffiliateAndProduct(ctx context.Context, affiliateID, productID uuid.UUID) (store.AffiliateLink, error)
	CreateAffiliateLink(ctx context.Context, params store.CreateAffiliateLinkParams) (store.AffiliateLink, error)
}

// LinkCache is an optional read-through cache for resolved links
type LinkCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
}
