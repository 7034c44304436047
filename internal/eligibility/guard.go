package eligibility

//go:generate go run go.uber.org/mock/mockgen@latest -source=guard.go -destination=mocks_test.go -package=eligibility

import (
	"affiliate-server/internal/clients/subscribers"
	"affiliate-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("affiliate-server/eligibility")

// ErrEligibilityUnavailable is returned when the account system cannot be queried.
// It must never be read as "ineligible".
var ErrEligibilityUnavailable = errors.New("eligibility check unavailable")

// SubscriberDirectory looks up accounts in the external account system
type SubscriberDirectory interface {
	GetSubscriberByEmail(ctx context.Context, email string) (subscribers.Subscriber, error)
}

// Guard decides whether a purchase may be attributed to an affiliate
type Guard struct {
	directory SubscriberDirectory
	logger    *observability.Logger
}

func New(directory SubscriberDirectory, logger *observability.Logger) Guard {
	return Guard{
		directory: directory,
		logger:    logger,
	}
}

// NormalizeIdentifier lower-cases and trims an end-user identifier
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// IsSelfReferral reports whether the customer is the owner of the link.
// An owner without a known email never matches.
func (g *Guard) IsSelfReferral(customerEmail string, ownerEmail *string) bool {
	if ownerEmail == nil {
		return false
	}
	owner := NormalizeIdentifier(*ownerEmail)
	return owner != "" && owner == NormalizeIdentifier(customerEmail)
}

// IsEligibleSubscriber reports whether the customer is subscribed or onboarded in the account system.
// The email is sent as given apart from surrounding whitespace.
func (g *Guard) IsEligibleSubscriber(ctx context.Context, customerEmail string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Guard.IsEligibleSubscriber")
	defer span.End()

	email := strings.TrimSpace(customerEmail)

	subscriber, err := g.directory.GetSubscriberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, subscribers.ErrSubscriberNotFound) {
			span.SetAttributes(attribute.Bool("subscriber.found", false))
			g.logger.Info(ctx, "customer has no account, not eligible for attribution")
			return false, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "subscriber lookup failed")
		g.logger.Error(ctx, "failed to check subscriber eligibility", err)
		return false, fmt.Errorf("%w: %w", ErrEligibilityUnavailable, err)
	}

	span.SetAttributes(
		attribute.Bool("subscriber.found", true),
		attribute.Bool("subscriber.active", subscriber.Active()),
	)
	return subscriber.Active(), nil
}
