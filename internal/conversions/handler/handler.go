package handler

import (
	"affiliate-server/internal/config"
	"affiliate-server/internal/conversions/processor"
	"affiliate-server/internal/observability"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	maxWebhookBodyBytes     = 1 << 20
	paystackSignatureHeader = "x-paystack-signature"
)

// Stripe charges are only accepted once their signature can be verified
var errStripeNotConfigured = errors.New("stripe webhook secret is not configured")

type Handler struct {
	processor processor.ConversionProcessor
	payments  config.PaymentsConfig
	logger    *observability.Logger
}

func New(processor processor.ConversionProcessor, payments config.PaymentsConfig, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		payments:  payments,
		logger:    logger,
	}
}

// HandlePaystackWebhook handles POST /api/webhooks/paystack
func (h *Handler) HandlePaystackWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Error(ctx, "failed to read webhook body", err)
		c.String(http.StatusInternalServerError, processor.OutcomeProcessingError.Message())
		return
	}

	if h.payments.PaystackSecretKey != "" && !validPaystackSignature(payload, c.GetHeader(paystackSignatureHeader), h.payments.PaystackSecretKey) {
		h.logger.Warn(ctx, "rejected paystack webhook with invalid signature")
		c.String(http.StatusUnauthorized, "Invalid signature")
		return
	}

	event, err := processor.DecodePaystackEvent(payload)
	if err != nil {
		h.logger.WarnWithError(ctx, "rejected undecodable paystack webhook", err)
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	h.respond(c, event)
}

// HandleStripeWebhook handles POST /api/webhooks/stripe
func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Error(ctx, "failed to read webhook body", err)
		c.String(http.StatusInternalServerError, processor.OutcomeProcessingError.Message())
		return
	}

	if h.payments.StripeWebhookSecret == "" {
		h.logger.Error(ctx, "rejected stripe webhook", errStripeNotConfigured)
		c.String(http.StatusBadRequest, "Stripe webhook verification is not configured")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		c.String(http.StatusBadRequest, "Missing Stripe-Signature header")
		return
	}
	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.payments.StripeWebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		h.logger.WarnWithError(ctx, "rejected stripe webhook with invalid signature", err)
		c.String(http.StatusBadRequest, "Invalid signature")
		return
	}

	event, err := processor.ChargeEventFromStripe(stripeEvent)
	if err != nil {
		h.logger.WarnWithError(ctx, "rejected undecodable stripe charge", err)
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	h.respond(c, event)
}

func (h *Handler) respond(c *gin.Context, event processor.ChargeEvent) {
	// The processor logs its own failures; the outcome carries the status the provider retries on
	outcome, _ := h.processor.ProcessCharge(c.Request.Context(), event)
	c.String(outcome.StatusCode(), outcome.Message())
}

func validPaystackSignature(payload []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}
