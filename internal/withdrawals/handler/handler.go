package handler

import (
	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/withdrawals/processor"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor processor.WithdrawalProcessor
	logger    *observability.Logger
}

func New(processor processor.WithdrawalProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateWithdrawalRequest represents the request body for a payout request
type CreateWithdrawalRequest struct {
	AffiliateID    string          `json:"affiliate_id" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method" binding:"required,oneof=bank crypto paypal"`
	PaymentDetails json.RawMessage `json:"payment_details" binding:"required"`
}

// HandleCreateWithdrawal handles POST /api/withdrawals
func (h *Handler) HandleCreateWithdrawal(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliateID, err := uuid.Parse(req.AffiliateID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid affiliate id"))
		return
	}

	details, err := processor.DecodePaymentDetails(req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	request, err := h.processor.Create(ctx, processor.CreateWithdrawalRequest{
		AffiliateID: affiliateID,
		Amount:      req.Amount,
		Details:     details,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// UpdateStatusRequest represents the request body for an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleUpdateStatus handles POST /api/admin/withdrawals/:id/status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid withdrawal request id"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	request, err := h.processor.Transition(ctx, requestID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
