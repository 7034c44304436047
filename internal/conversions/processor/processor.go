package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"affiliate-server/internal/clients/kafka"
	"affiliate-server/internal/eligibility"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("affiliate-server/conversions")

type ConversionProcessor struct {
	store     ConversionStore
	guard     EligibilityChecker
	publisher EventPublisher
	logger    *observability.Logger
}

// New creates a conversion processor. publisher may be nil when event publishing is disabled.
func New(store ConversionStore, guard EligibilityChecker, publisher EventPublisher, logger *observability.Logger) ConversionProcessor {
	return ConversionProcessor{
		store:     store,
		guard:     guard,
		publisher: publisher,
		logger:    logger,
	}
}

// ProcessCharge classifies a payment event and credits the affiliate at most once per
// (link, customer) pair. The returned error is non-nil only for OutcomeProcessingError.
func (p *ConversionProcessor) ProcessCharge(ctx context.Context, event ChargeEvent) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "ConversionProcessor.ProcessCharge", trace.WithAttributes(
		attribute.String("payment.provider", event.Provider),
		attribute.String("payment.event", event.Type),
	))
	defer span.End()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "provider", Value: event.Provider},
		observability.Field{Key: "event", Value: event.Type},
	)

	if !event.Successful {
		return p.finish(ctx, OutcomeIgnored), nil
	}

	ref := strings.TrimSpace(event.AffiliateLinkRef)
	if ref == "" {
		return p.finish(ctx, OutcomeNoAffiliateData), nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_link_id", Value: ref})

	linkID, err := uuid.Parse(ref)
	if err != nil {
		return p.finish(ctx, OutcomeInvalidReference), nil
	}

	customer := eligibility.NormalizeIdentifier(event.CustomerEmail)
	if customer == "" {
		p.logger.Warn(ctx, "affiliate charge has no customer email")
		return p.finish(ctx, OutcomeInvalidReference), nil
	}

	attribution, err := p.store.GetLinkAttribution(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return p.finish(ctx, OutcomeInvalidReference), nil
		}
		return p.fail(ctx, "failed to load affiliate link", err)
	}

	if p.guard.IsSelfReferral(customer, attribution.AffiliateEmail) {
		return p.finish(ctx, OutcomeSelfReferral), nil
	}

	// The account system matches emails exactly, so it is queried with the address as received
	eligible, err := p.guard.IsEligibleSubscriber(ctx, strings.TrimSpace(event.CustomerEmail))
	if err != nil {
		return p.fail(ctx, "failed to verify subscriber eligibility", err)
	}
	if !eligible {
		return p.finish(ctx, OutcomeIneligibleSubscriber), nil
	}

	conversion, err := p.store.CreateConversion(ctx, store.CreateConversionParams{
		AffiliateLinkID:   attribution.LinkID,
		ProductID:         attribution.ProductID,
		EndUserIdentifier: customer,
		PayoutAmount:      attribution.PayoutPerConversion,
		Status:            store.ConversionStatusApproved,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateConversion) {
			return p.finish(ctx, OutcomeDuplicateEvent), nil
		}
		return p.fail(ctx, "failed to create conversion", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "conversion_id", Value: conversion.ID.String()},
		observability.Field{Key: "payout_amount", Value: conversion.PayoutAmount.String()},
	)
	p.publishCredited(ctx, event.Provider, attribution, conversion)

	return p.finish(ctx, OutcomeCredited), nil
}

func (p *ConversionProcessor) publishCredited(ctx context.Context, provider string, attribution store.LinkAttribution, conversion store.Conversion) {
	if p.publisher == nil {
		return
	}

	err := p.publisher.PublishConversion(ctx, kafka.ConversionEvent{
		ID:                uuid.NewString(),
		Type:              kafka.EventTypeConversionCredited,
		ConversionID:      conversion.ID.String(),
		AffiliateLinkID:   conversion.AffiliateLinkID.String(),
		AffiliateID:       attribution.AffiliateID.String(),
		ProductID:         conversion.ProductID.String(),
		EndUserIdentifier: conversion.EndUserIdentifier,
		PayoutAmount:      conversion.PayoutAmount,
		Provider:          provider,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.WarnWithError(ctx, "conversion credited but event not published", err)
	}
}

func (p *ConversionProcessor) finish(ctx context.Context, outcome Outcome) Outcome {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("conversion.outcome", outcome.String()))
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "outcome", Value: outcome.String()}), "payment event processed")
	return outcome
}

func (p *ConversionProcessor) fail(ctx context.Context, msg string, err error) (Outcome, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "outcome", Value: OutcomeProcessingError.String()})
	p.logger.Error(ctx, msg, err)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("conversion.outcome", OutcomeProcessingError.String()))
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	return OutcomeProcessingError, fmt.Errorf("%s: %w", msg, err)
}
