package processor

import (
	"affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/store"
	"context"

	"github.com/google/uuid"
)

// ConversionStore defines the database operations required by ConversionProcessor
type ConversionStore interface {
	GetLinkAttribution(ctx context.Context, linkID uuid.UUID) (store.LinkAttribution, error)
	CreateConversion(ctx context.Context, params store.CreateConversionParams) (store.Conversion, error)
}

// EligibilityChecker decides whether a customer may be attributed to a link
type EligibilityChecker interface {
	IsSelfReferral(customerEmail string, ownerEmail *string) bool
	IsEligibleSubscriber(ctx context.Context, customerEmail string) (bool, error)
}

// EventPublisher announces credited conversions to downstream consumers
type EventPublisher interface {
	PublishConversion(ctx context.Context, event kafka.ConversionEvent) error
}
