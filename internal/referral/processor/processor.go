package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"affiliate-server/internal/observability"
	"affiliate-server/internal/referral/utils"
	"affiliate-server/internal/store"
	"context"
	"encoding/json"
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

var tracer = otel.Tracer("affiliate-server/referral")

var (
	ErrLinkNotFound            = errors.New("affiliate link not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique link code")
)

const (
	// TrackingParam is the query parameter carrying the link id on the destination URL
	TrackingParam = "ref"

	linkCodeLength      = 8
	maxLinkCodeAttempts = 5
	unknownClickValue   = "unknown"
	linkCacheKeyPrefix  = "affiliate_link:code:"
)

type ReferralProcessor struct {
	store         LinkStore
	cache         LinkCache
	cacheTTL      time.Duration
	publicBaseURL string
	newCode       func(length int) (string, error)
	logger        *observability.Logger
}

// New creates a referral processor. cache may be nil, in which case every lookup goes to the store.
func New(store LinkStore, cache LinkCache, cacheTTL time.Duration, publicBaseURL string, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:         store,
		cache:         cache,
		cacheTTL:      cacheTTL,
		publicBaseURL: publicBaseURL,
		newCode:       utils.GenerateLinkCode,
		logger:        logger,
	}
}

// ResolvedLink is a short code resolved to its link and destination
type ResolvedLink struct {
	LinkID      uuid.UUID `json:"link_id"`
	AffiliateID uuid.UUID `json:"affiliate_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductURL  string    `json:"product_url"`
}

// ClickMetadata is the request metadata recorded for a click
type ClickMetadata struct {
	IPAddress string
	UserAgent string
	Referer   string
}

// Redirect is the outcome of following a referral link
type Redirect struct {
	LinkID   uuid.UUID
	Location string
}

// ResolveCode maps a short code to its affiliate link and product URL
func (p *ReferralProcessor) ResolveCode(ctx context.Context, code string) (ResolvedLink, error) {
	code = strings.TrimSpace(code)
	ctx = observability.WithFields(ctx, observability.Field{Key: "link_code", Value: code})

	if code == "" {
		return ResolvedLink{}, ErrLinkNotFound
	}

	if link, ok := p.getCachedLink(ctx, code); ok {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("link_cache.hit", true))
		return link, nil
	}

	dest, err := p.store.GetLinkDestinationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ResolvedLink{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to resolve link code", err)
		return ResolvedLink{}, fmt.Errorf("failed to resolve link code: %w", err)
	}

	link := ResolvedLink{
		LinkID:      dest.LinkID,
		AffiliateID: dest.AffiliateID,
		ProductID:   dest.ProductID,
		ProductURL:  dest.ProductURL,
	}
	p.cacheLink(ctx, code, link)

	return link, nil
}

// RecordClick appends a click row for the link. Missing metadata is stored as "unknown".
func (p *ReferralProcessor) RecordClick(ctx context.Context, linkID uuid.UUID, meta ClickMetadata) error {
	params := store.CreateClickParams{
		AffiliateLinkID: linkID,
		IPAddress:       valueOrUnknown(meta.IPAddress),
		UserAgent:       valueOrUnknown(meta.UserAgent),
		Referer:         valueOrUnknown(meta.Referer),
	}

	if err := p.store.CreateClick(ctx, params); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

// FollowLink resolves a code, records the click and computes the redirect target.
// Click recording failures are logged and never change the result.
func (p *ReferralProcessor) FollowLink(ctx context.Context, code string, meta ClickMetadata) (Redirect, error) {
	ctx, span := tracer.Start(ctx, "ReferralProcessor.FollowLink")
	defer span.End()

	link, err := p.ResolveCode(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrLinkNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "link resolution failed")
		}
		return Redirect{}, err
	}
	span.SetAttributes(attribute.String("affiliate_link.id", link.LinkID.String()))

	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_link_id", Value: link.LinkID.String()})

	if err := p.RecordClick(ctx, link.LinkID, meta); err != nil {
		p.logger.WarnWithError(ctx, "click not recorded", err)
	}

	location, err := utils.BuildDestinationURL(link.ProductURL, TrackingParam, link.LinkID.String())
	if err != nil {
		p.logger.Error(ctx, "failed to build destination url", err)
		return Redirect{}, fmt.Errorf("failed to build destination url: %w", err)
	}

	return Redirect{
		LinkID:   link.LinkID,
		Location: location,
	}, nil
}

func (p *ReferralProcessor) getCachedLink(ctx context.Context, code string) (ResolvedLink, bool) {
	if p.cache == nil {
		return ResolvedLink{}, false
	}

	raw, err := p.cache.Get(ctx, linkCacheKeyPrefix+code)
	if err != nil {
		return ResolvedLink{}, false
	}

	var link ResolvedLink
	if err := json.Unmarshal(raw, &link); err != nil {
		p.logger.WarnWithError(ctx, "discarding undecodable cached link", err)
		return ResolvedLink{}, false
	}
	return link, true
}

func (p *ReferralProcessor) cacheLink(ctx context.Context, code string, link ResolvedLink) {
	if p.cache == nil {
		return
	}

	raw, err := json.Marshal(link)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, linkCacheKeyPrefix+code, raw, p.cacheTTL); err != nil {
		p.logger.WarnWithError(ctx, "failed to cache resolved link", err)
	}
}

func valueOrUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return unknownClickValue
	}
	return value
}
